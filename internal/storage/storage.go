package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/matthieukhl/swiftcart/internal/config"
	"github.com/matthieukhl/swiftcart/internal/database"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Open creates the blob store named by cfg.Backend. The returned close
// function releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config) (types.BlobStore, func() error, error) {
	switch cfg.Cart.Backend {
	case "file", "":
		return NewFileStore(afero.NewOsFs(), cfg.Cart.Path), func() error { return nil }, nil
	case "memory":
		return NewFileStore(afero.NewMemMapFs(), "/cart"), func() error { return nil }, nil
	case "mysql":
		db, err := database.NewConnection(ctx, &cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLStore(db.DB), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cart backend: %s", cfg.Cart.Backend)
	}
}
