package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/storage"
)

const testKey = "swift_cart_items"

func newTestStore(t *testing.T) (*Store, *storage.FileStore) {
	t.Helper()
	blobs := storage.NewFileStore(afero.NewMemMapFs(), "/carts")
	return NewStore(blobs, testKey, nil), blobs
}

func product(id int64, price string) models.Product {
	return models.Product{
		ID:    id,
		Title: "Product",
		Price: decimal.RequireFromString(price),
		Image: "https://example.test/img.png",
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Items_EmptyWhenKeyMissing", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.Empty(t, store.Items(ctx))
		require.NotNil(t, store.Items(ctx))
		require.Zero(t, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_SameIDMergesIntoOneLine", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.AddItem(ctx, product(1, "9.99")))
		require.NoError(t, store.AddItem(ctx, product(1, "9.99")))

		items := store.Items(ctx)
		require.Len(t, items, 1)
		require.Equal(t, models.Quantity(2), items[0].Qty)
		require.Equal(t, 2, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_DistinctProductsKeepOrder", func(t *testing.T) {
		store, _ := newTestStore(t)

		for _, id := range []int64{3, 1, 2} {
			require.NoError(t, store.AddItem(ctx, product(id, "1")))
		}

		items := store.Items(ctx)
		require.Len(t, items, 3)
		require.Equal(t, int64(3), items[0].ID)
		require.Equal(t, int64(1), items[1].ID)
		require.Equal(t, int64(2), items[2].ID)
		require.Equal(t, 3, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_SnapshotsPriceAtFirstAdd", func(t *testing.T) {
		store, _ := newTestStore(t)

		require.NoError(t, store.AddItem(ctx, product(5, "10.00")))
		require.NoError(t, store.AddItem(ctx, product(5, "12.00")))

		items := store.Items(ctx)
		require.True(t, decimal.RequireFromString("10").Equal(items[0].Price))
	})

	t.Run("Items_RoundTripsThroughFreshStore", func(t *testing.T) {
		store, blobs := newTestStore(t)
		p := product(7, "109.95")
		require.NoError(t, store.AddItem(ctx, p))

		reloaded := NewStore(blobs, testKey, nil)
		items := reloaded.Items(ctx)
		require.Len(t, items, 1)
		require.Equal(t, p.ID, items[0].ID)
		require.Equal(t, p.Title, items[0].Title)
		require.True(t, p.Price.Equal(items[0].Price))
		require.Equal(t, p.Image, items[0].Image)
		require.Equal(t, models.Quantity(1), items[0].Qty)
	})

	t.Run("Items_MalformedPayloadIsEmpty", func(t *testing.T) {
		store, blobs := newTestStore(t)

		for _, payload := range []string{`{not json`, `{"id":1}`, `"cart"`, `null`} {
			require.NoError(t, blobs.Put(ctx, testKey, []byte(payload)))
			require.Empty(t, store.Items(ctx), payload)
			require.Zero(t, store.TotalQuantity(ctx), payload)
		}
	})

	t.Run("TotalQuantity_MissingOrNonNumericQtyCountsZero", func(t *testing.T) {
		store, blobs := newTestStore(t)
		payload := `[{"id":1,"price":1,"qty":2},{"id":2,"price":1},{"id":3,"price":1,"qty":"lots"},{"id":4,"price":1,"qty":"3"}]`
		require.NoError(t, blobs.Put(ctx, testKey, []byte(payload)))

		require.Len(t, store.Items(ctx), 4)
		require.Equal(t, 5, store.TotalQuantity(ctx))
	})

	t.Run("TotalQuantity_NonFiniteOrHugeQtyCountsZero", func(t *testing.T) {
		store, blobs := newTestStore(t)

		for _, qty := range []string{`"NaN"`, `"Inf"`, `"-Inf"`, `1e300`, `"1e300"`, `-2`} {
			payload := `[{"id":1,"price":1,"qty":` + qty + `},{"id":2,"price":1,"qty":3}]`
			require.NoError(t, blobs.Put(ctx, testKey, []byte(payload)))

			require.Len(t, store.Items(ctx), 2, qty)
			require.Equal(t, 3, store.TotalQuantity(ctx), qty)
		}
	})

	t.Run("Items_MismatchedFieldTypesKeepTheLine", func(t *testing.T) {
		store, blobs := newTestStore(t)
		payload := `[{"id":"1","title":"Bag","price":"abc","qty":2},{"id":2,"title":"Ring","price":5.5,"qty":3}]`
		require.NoError(t, blobs.Put(ctx, testKey, []byte(payload)))

		items := store.Items(ctx)
		require.Len(t, items, 2)
		require.Equal(t, int64(1), items[0].ID)
		require.Equal(t, "Bag", items[0].Title)
		require.True(t, items[0].Price.IsZero())
		require.Equal(t, 5, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_KeepsGoodLinesNextToABadOne", func(t *testing.T) {
		store, blobs := newTestStore(t)
		payload := `[7,null,{"id":"1","title":"Bag","price":1,"qty":2},{"id":2,"title":"Ring","price":1,"qty":3}]`
		require.NoError(t, blobs.Put(ctx, testKey, []byte(payload)))

		require.NoError(t, store.AddItem(ctx, product(1, "1")))

		items := store.Items(ctx)
		require.Len(t, items, 2)
		require.Equal(t, int64(1), items[0].ID)
		require.Equal(t, models.Quantity(3), items[0].Qty)
		require.Equal(t, int64(2), items[1].ID)
		require.Equal(t, 6, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_PersistsPriceAsNumber", func(t *testing.T) {
		store, blobs := newTestStore(t)
		require.NoError(t, store.AddItem(ctx, product(7, "109.95")))

		data, err := blobs.Get(ctx, testKey)
		require.NoError(t, err)
		require.Contains(t, string(data), `"price":109.95`)
		require.NotContains(t, string(data), `"price":"`)
	})

	t.Run("AddItem_OverwritesCorruptCart", func(t *testing.T) {
		store, blobs := newTestStore(t)
		require.NoError(t, blobs.Put(ctx, testKey, []byte(`garbage`)))

		require.NoError(t, store.AddItem(ctx, product(1, "1")))
		require.Equal(t, 1, store.TotalQuantity(ctx))
	})

	t.Run("AddItem_RefreshesEveryBadge", func(t *testing.T) {
		store, _ := newTestStore(t)
		var header, footer []int
		store.OnChange(func(total int) { header = append(header, total) })
		store.OnChange(func(total int) { footer = append(footer, total) })

		require.NoError(t, store.AddItem(ctx, product(1, "1")))
		require.NoError(t, store.AddItem(ctx, product(2, "1")))
		require.NoError(t, store.AddItem(ctx, product(1, "1")))

		require.Equal(t, []int{1, 2, 3}, header)
		require.Equal(t, header, footer)
	})

	t.Run("AddItem_StorageFailureIsReturned", func(t *testing.T) {
		blobs := storage.NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/carts")
		store := NewStore(blobs, testKey, nil)

		require.Error(t, store.AddItem(ctx, product(1, "1")))
	})
}
