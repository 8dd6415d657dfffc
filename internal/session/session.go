// Package session holds the state of one browsing session: the active
// category, the products currently listed, the detail cache and the open
// detail panel. Page flows run strictly in sequence.
package session

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/cart"
	"github.com/matthieukhl/swiftcart/internal/catalog"
	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/types"
	"github.com/matthieukhl/swiftcart/internal/view"
)

// TrendingSize is how many top-rated products the home page shows.
const TrendingSize = 3

type Session struct {
	ID uuid.UUID

	source types.CatalogSource
	cache  *catalog.DetailCache
	cart   *cart.Store
	logger *zap.Logger

	mu             sync.Mutex
	activeCategory string
	categories     []string
	products       []models.Product
	grid           view.Grid
	listErr        error
	trending       view.Grid
	detail         *view.Detail
	location       Location

	// bumped by every listing/detail request; results from an older
	// request are dropped
	listGen   uint64
	detailGen uint64
}

func New(source types.CatalogSource, store *cart.Store, logger *zap.Logger) *Session {
	id := uuid.New()
	logger = logging.OrNop(logger).With(zap.String("session", id.String()))

	return &Session{
		ID:             id,
		source:         source,
		cache:          catalog.NewDetailCache(source, logger),
		cart:           store,
		logger:         logger,
		activeCategory: models.CategoryAll,
		grid:           view.LoadingGrid(),
		trending:       view.LoadingTrending(),
		location:       ParseLocation(""),
	}
}

// ActiveCategory is the category the user last asked for.
func (s *Session) ActiveCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory
}

// Products returns the currently listed products.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

func (s *Session) Location() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

func (s *Session) Cart() *cart.Store {
	return s.cart
}

// SetCategory makes category active and lists its products. The active
// category changes even when the listing fails; on failure the grid is
// cleared, the error is kept for the banner and the previous products stay
// available to FindProductByID.
func (s *Session) SetCategory(ctx context.Context, category string) error {
	s.mu.Lock()
	s.listGen++
	gen := s.listGen
	s.activeCategory = category
	s.listErr = nil
	s.grid = view.LoadingGrid()
	s.mu.Unlock()

	products, err := s.source.ListProducts(ctx, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.listGen {
		s.logger.Debug("dropping stale product listing", zap.String("category", category))
		return err
	}

	if err != nil {
		s.listErr = err
		s.grid = view.Grid{}
		s.logger.Warn("product listing failed", zap.String("category", category), zap.Error(err))
		return err
	}

	s.products = products
	s.grid = view.ProductGrid(products)
	return nil
}

// FindProductByID looks in the listed products first, then in products
// already fetched for detail. It never fetches.
func (s *Session) FindProductByID(id int64) *models.Product {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			s.mu.Unlock()
			return &p
		}
	}
	s.mu.Unlock()

	if p, ok := s.cache.Peek(id); ok {
		return p
	}
	return nil
}

// OpenDetail shows the detail panel for id, fetching through the detail
// cache. A failure stays inline in the panel; it is also returned.
func (s *Session) OpenDetail(ctx context.Context, id int64) (*models.Product, error) {
	s.mu.Lock()
	s.detailGen++
	gen := s.detailGen
	s.detail = view.DetailLoading(id)
	s.mu.Unlock()

	product, err := s.cache.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.detailGen {
		if err != nil {
			s.detail = view.DetailFailed(id, err)
		} else {
			s.detail = view.DetailView(*product)
		}
	}
	if err != nil {
		s.logger.Warn("product detail failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}

// CloseDetail dismisses the detail panel.
func (s *Session) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailGen++
	s.detail = nil
}

// AddToCart adds a product that is already known to the session. It
// reports false when the id is not found, which is not an error.
func (s *Session) AddToCart(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	product := s.FindProductByID(id)
	if product == nil {
		s.logger.Debug("add to cart ignored, product not loaded", zap.Int64("id", id))
		return false, nil
	}

	if err := s.cart.AddItem(ctx, *product); err != nil {
		return false, err
	}
	return true, nil
}

// LoadProductsPage runs the products page flow in order: categories, the
// initial category (from loc when it is a known category, else "all"), its
// products, then the detail named by loc if any. A categories failure stops
// the flow. A listing failure is returned after the detail step; detail
// failures only show inline.
func (s *Session) LoadProductsPage(ctx context.Context, loc Location) error {
	s.mu.Lock()
	s.location = loc
	s.grid = view.LoadingGrid()
	s.listErr = nil
	// a detail left open by an earlier page load no longer matches loc
	s.detailGen++
	s.detail = nil
	s.mu.Unlock()

	categories, err := s.source.ListCategories(ctx)
	if err != nil {
		s.mu.Lock()
		s.listErr = err
		s.grid = view.Grid{}
		s.mu.Unlock()
		s.logger.Warn("category listing failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()

	initial := models.CategoryAll
	if requested := loc.Category(); slices.Contains(categories, requested) {
		initial = requested
	}

	listErr := s.SetCategory(ctx, initial)

	if id := loc.ProductID(); id > 0 {
		_, _ = s.OpenDetail(ctx, id)
	}
	return listErr
}

// LoadHomePage lists every product and keeps the top rated ones for the
// trending strip. The full list stays loaded so cards can be added to the
// cart.
func (s *Session) LoadHomePage(ctx context.Context) error {
	s.mu.Lock()
	s.trending = view.LoadingTrending()
	s.mu.Unlock()

	products, err := s.source.ListProducts(ctx, models.CategoryAll)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.trending = view.ErrorGrid(err, view.MsgTrendingError)
		s.logger.Warn("trending listing failed", zap.Error(err))
		return err
	}

	s.products = products
	s.trending = view.TrendingGrid(TopRated(products, TrendingSize))
	return nil
}

// TopRated returns up to n products by descending rating rate. Products
// without a rating count as 0; ties keep listing order.
func TopRated(products []models.Product, n int) []models.Product {
	sorted := slices.Clone(products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RatingRate() > sorted[j].RatingRate()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ProductsScreen renders the products page from the current state.
func (s *Session) ProductsScreen(ctx context.Context) view.ProductsScreen {
	total := s.cart.TotalQuantity(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	screen := view.ProductsScreen{
		Categories:     view.CategoryButtons(s.categories, s.activeCategory),
		ActiveCategory: s.activeCategory,
		Grid:           s.grid,
		Detail:         s.detail,
		Badge:          view.CartBadge(total),
		Location:       s.location.Encode(),
	}
	if s.listErr != nil {
		screen.Error = &view.Banner{Kind: view.BannerKindError, Message: view.ErrorMessage(s.listErr, view.MsgGenericError)}
	}
	return screen
}

func (s *Session) HomeScreen(ctx context.Context) view.HomeScreen {
	total := s.cart.TotalQuantity(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return view.HomeScreen{Trending: s.trending, Badge: view.CartBadge(total)}
}

func (s *Session) CartScreen(ctx context.Context) view.CartScreen {
	lines := s.cart.Items(ctx)
	total := 0
	for _, l := range lines {
		total += int(l.Qty)
	}
	return view.Cart(lines, total)
}
