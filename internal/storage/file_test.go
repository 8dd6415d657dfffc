package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/swiftcart/internal/config"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get_MissingKeyIsNotFound", func(t *testing.T) {
		store := NewFileStore(afero.NewMemMapFs(), "/data")

		_, err := store.Get(ctx, "swift_cart_items")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Put_ThenGetRoundTrips", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewFileStore(fs, "/data")

		require.NoError(t, store.Put(ctx, "swift_cart_items", []byte(`[1]`)))
		require.NoError(t, store.Put(ctx, "swift_cart_items", []byte(`[1,2]`)))

		got, err := store.Get(ctx, "swift_cart_items")
		require.NoError(t, err)
		require.Equal(t, `[1,2]`, string(got))

		entries, err := afero.ReadDir(fs, "/data")
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("Put_ReadOnlyFsFails", func(t *testing.T) {
		store := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")

		require.Error(t, store.Put(ctx, "k", []byte("v")))
	})

	t.Run("Get_CancelledContext", func(t *testing.T) {
		store := NewFileStore(afero.NewMemMapFs(), "/data")
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Get(cctx, "k")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := Open(ctx, &config.Config{Cart: config.CartConfig{Backend: "memory"}})
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, "k", []byte("v")))
		require.NoError(t, closeFn())
	})

	t.Run("MySQLRequiresDSN", func(t *testing.T) {
		_, _, err := Open(ctx, &config.Config{Cart: config.CartConfig{Backend: "mysql"}})
		require.Error(t, err)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, _, err := Open(ctx, &config.Config{Cart: config.CartConfig{Backend: "redis"}})
		require.Error(t, err)
	})
}
