package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/config"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// NewSource creates a catalog source based on configuration
func NewSource(cfg *config.CatalogConfig, logger *zap.Logger) (types.CatalogSource, error) {
	switch cfg.Provider {
	case "http", "":
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout, logger)
	case "mock":
		return NewMockSource(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog provider: %s", cfg.Provider)
	}
}
