package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/swiftcart/internal/models"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) (*HTTPSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source, err := NewHTTPSource(srv.URL+"/products", 2*time.Second, nil)
	require.NoError(t, err)
	return source, srv
}

func TestHTTPSource(t *testing.T) {
	ctx := context.Background()

	t.Run("ListCategories_DecodesArray", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/categories", r.URL.Path)
			_, _ = w.Write([]byte(`["electronics","men's clothing"]`))
		})

		categories, err := source.ListCategories(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"electronics", "men's clothing"}, categories)
	})

	t.Run("ListCategories_NonArrayDegradesToEmpty", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"categories":["electronics"]}`))
		})

		categories, err := source.ListCategories(ctx)
		require.NoError(t, err)
		require.NotNil(t, categories)
		require.Empty(t, categories)
	})

	t.Run("ListCategories_MalformedDegradesToEmpty", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`["electronics",`))
		})

		categories, err := source.ListCategories(ctx)
		require.NoError(t, err)
		require.Empty(t, categories)
	})

	t.Run("ListCategories_ErrorStatusIsFetchError", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := source.ListCategories(ctx)
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, OpCategories, fe.Op)
		require.Equal(t, http.StatusInternalServerError, fe.Status)
		require.Equal(t, "Unable to load product categories.", err.Error())
	})

	t.Run("ListCategories_TransportFailureIsFetchError", func(t *testing.T) {
		source, srv := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := source.ListCategories(ctx)
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		require.Zero(t, fe.Status)
		require.Error(t, errors.Unwrap(err))
	})

	t.Run("ListProducts_AllUsesCollection", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			_, _ = w.Write([]byte(`[{"id":1,"title":"Bag","price":109.95,"category":"men's clothing","rating":{"rate":3.9,"count":120}}]`))
		})

		products, err := source.ListProducts(ctx, models.CategoryAll)
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Equal(t, int64(1), products[0].ID)
		require.Equal(t, "109.95", products[0].Price.String())
		require.Equal(t, 3.9, products[0].Rating.Rate)
	})

	t.Run("ListProducts_CategoryIsEscapedPathSegment", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/category/men%27s%20clothing", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`[]`))
		})

		products, err := source.ListProducts(ctx, "men's clothing")
		require.NoError(t, err)
		require.Empty(t, products)
	})

	t.Run("ListProducts_ErrorStatusIsFetchError", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := source.ListProducts(ctx, "electronics")
		require.EqualError(t, err, "Unable to load products.")
	})

	t.Run("GetProduct_DecodesObject", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/42", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":42,"title":"Lamp","price":"12.5","image":"x.png","category":"home","description":"d"}`))
		})

		product, err := source.GetProduct(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, int64(42), product.ID)
		require.Nil(t, product.Rating)
	})

	t.Run("GetProduct_EmptyBodyIsNotFound", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := source.GetProduct(ctx, 999)
		require.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("GetProduct_ErrorStatusIsFetchError", func(t *testing.T) {
		source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := source.GetProduct(ctx, 1)
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, OpProduct, fe.Op)
		require.Equal(t, "Unable to load this product detail.", err.Error())
	})

	t.Run("NewHTTPSource_RejectsRelativeURL", func(t *testing.T) {
		_, err := NewHTTPSource("/products", time.Second, nil)
		require.Error(t, err)
	})
}
