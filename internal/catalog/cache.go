package catalog

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// DetailCache remembers every product fetched by id for the lifetime of a
// session. Entries are never evicted. Concurrent misses for the same id
// share a single fetch.
type DetailCache struct {
	source types.CatalogSource
	logger *zap.Logger

	mu      sync.RWMutex
	entries map[int64]*models.Product
	flight  singleflight.Group
}

func NewDetailCache(source types.CatalogSource, logger *zap.Logger) *DetailCache {
	return &DetailCache{
		source:  source,
		logger:  logging.OrNop(logger),
		entries: make(map[int64]*models.Product),
	}
}

// Get returns the cached product or fetches and caches it. Failed fetches
// are not cached.
func (c *DetailCache) Get(ctx context.Context, id int64) (*models.Product, error) {
	if p, ok := c.Peek(id); ok {
		return p, nil
	}

	v, err, shared := c.flight.Do(strconv.FormatInt(id, 10), func() (any, error) {
		if p, ok := c.Peek(id); ok {
			return p, nil
		}

		p, err := c.source.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[id] = p
		c.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("detail fetch shared", zap.Int64("id", id))
	}
	return v.(*models.Product), nil
}

// Peek looks id up without fetching.
func (c *DetailCache) Peek(id int64) (*models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[id]
	return p, ok
}

func (c *DetailCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
