package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// MockSource serves a small built-in catalog, for offline use and demos
type MockSource struct {
	categories []string
	products   []models.Product
}

func NewMockSource() *MockSource {
	return &MockSource{
		categories: []string{"electronics", "jewelery", "men's clothing", "women's clothing"},
		products:   mockProducts(),
	}
}

func (s *MockSource) ListCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: OpCategories, URL: "mock://categories", Err: err}
	}
	return append([]string(nil), s.categories...), nil
}

func (s *MockSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: OpProducts, URL: "mock://products", Err: err}
	}

	products := []models.Product{}
	for _, p := range s.products {
		if category == models.CategoryAll || p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *MockSource) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: OpProduct, URL: fmt.Sprintf("mock://products/%d", id), Err: err}
	}

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
}

func (s *MockSource) Name() string {
	return "mock"
}

func mockProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Title:       "Fjallraven Foldsack No. 1 Backpack",
			Price:       decimal.RequireFromString("109.95"),
			Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
			Category:    "men's clothing",
			Description: "Your perfect pack for everyday use and walks in the forest.",
			Rating:      &models.Rating{Rate: 3.9, Count: 120},
		},
		{
			ID:          2,
			Title:       "Mens Casual Premium Slim Fit T-Shirts",
			Price:       decimal.RequireFromString("22.3"),
			Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
			Category:    "men's clothing",
			Description: "Slim-fitting style, contrast raglan long sleeve.",
			Rating:      &models.Rating{Rate: 4.1, Count: 259},
		},
		{
			ID:          5,
			Title:       "John Hardy Women's Legends Naga Bracelet",
			Price:       decimal.RequireFromString("695"),
			Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
			Category:    "jewelery",
			Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon.",
			Rating:      &models.Rating{Rate: 4.6, Count: 400},
		},
		{
			ID:          9,
			Title:       "WD 2TB Elements Portable External Hard Drive",
			Price:       decimal.RequireFromString("64"),
			Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
			Category:    "electronics",
			Description: "USB 3.0 and USB 2.0 compatibility, fast data transfers.",
			Rating:      &models.Rating{Rate: 3.3, Count: 203},
		},
		{
			ID:          14,
			Title:       "Samsung 49-Inch CHG90 144Hz Curved Gaming Monitor",
			Price:       decimal.RequireFromString("999.99"),
			Image:       "https://fakestoreapi.com/img/81Zt42ioCgL._AC_SX679_.jpg",
			Category:    "electronics",
			Description: "49 inch super ultrawide 32:9 curved gaming monitor.",
			Rating:      &models.Rating{Rate: 2.2, Count: 140},
		},
		{
			ID:          18,
			Title:       "MBJ Women's Solid Short Sleeve Boat Neck V",
			Price:       decimal.RequireFromString("9.85"),
			Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
			Category:    "women's clothing",
			Description: "Lightweight fabric with great stretch for comfort.",
		},
	}
}

// Compile-time interface check
var _ types.CatalogSource = (*MockSource)(nil)
