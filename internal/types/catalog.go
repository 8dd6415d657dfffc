package types

import (
	"context"

	"github.com/matthieukhl/swiftcart/internal/models"
)

// CatalogSource serves the read-only catalog
type CatalogSource interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	Name() string
}

// BlobStore persists opaque values under a single key each
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
