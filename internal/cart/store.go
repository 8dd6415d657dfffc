package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/storage"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// BadgeFunc is told the new total quantity after every mutation.
type BadgeFunc func(total int)

// Store is the persisted cart. Nothing is held in memory between calls:
// every read goes back to the blob store and every mutation rewrites the
// whole cart under a single key.
type Store struct {
	blobs  types.BlobStore
	key    string
	logger *zap.Logger

	// serializes read-modify-write within this process only
	mu     sync.Mutex
	badges []BadgeFunc
}

func NewStore(blobs types.BlobStore, key string, logger *zap.Logger) *Store {
	return &Store{
		blobs:  blobs,
		key:    key,
		logger: logging.OrNop(logger),
	}
}

// OnChange registers a badge to refresh after each mutation.
func (s *Store) OnChange(fn BadgeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badges = append(s.badges, fn)
}

// AddItem adds one unit of product: an existing line with the same ID has
// its qty incremented, otherwise a new line is appended with qty 1.
func (s *Store) AddItem(ctx context.Context, product models.Product) error {
	s.mu.Lock()

	lines := s.read(ctx)
	found := false
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.NewCartLine(product))
	}

	data, err := json.Marshal(lines)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.blobs.Put(ctx, s.key, data); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to save cart: %w", err)
	}

	badges := append([]BadgeFunc(nil), s.badges...)
	s.mu.Unlock()

	s.logger.Debug("cart item added", zap.Int64("id", product.ID), zap.Bool("merged", found))

	total := sumQuantity(lines)
	for _, badge := range badges {
		badge(total)
	}
	return nil
}

// Items returns the persisted lines. Any read or decode failure yields an
// empty cart.
func (s *Store) Items(ctx context.Context) []models.CartLine {
	return s.read(ctx)
}

// TotalQuantity sums qty across all lines.
func (s *Store) TotalQuantity(ctx context.Context) int {
	return sumQuantity(s.read(ctx))
}

func (s *Store) read(ctx context.Context) []models.CartLine {
	data, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("cart read failed, treating as empty", zap.Error(err))
		}
		return []models.CartLine{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Debug("cart payload undecodable, treating as empty", zap.Error(err))
		return []models.CartLine{}
	}

	// a bad line is dropped on its own so the next write keeps the rest
	lines := make([]models.CartLine, 0, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var line models.CartLine
		if err := json.Unmarshal(item, &line); err != nil {
			s.logger.Debug("cart line undecodable, skipping", zap.Int("index", i), zap.Error(err))
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func sumQuantity(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += int(line.Qty)
	}
	return total
}
