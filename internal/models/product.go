package models

import (
	"github.com/shopspring/decimal"
)

// CategoryAll is the synthetic "no filter" category. The catalog never
// returns it; it is always prepended locally.
const CategoryAll = "all"

// Product is a catalog entry as served by the remote API
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Rating      *Rating         `json:"rating,omitempty"`
}

// Rating is the optional review summary of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// RatingRate returns the rating's rate, or 0 when the product has none.
func (p Product) RatingRate() float64 {
	if p.Rating == nil {
		return 0
	}
	return p.Rating.Rate
}
