// Package view maps session state to screen descriptions. Everything here
// is pure: no network, no storage.
package view

import (
	"strconv"

	"github.com/matthieukhl/swiftcart/internal/models"
)

const (
	GridSkeletons     = 8
	TrendingSkeletons = 3

	MsgNoProducts       = "No products found in this category."
	MsgNoTrending       = "No products available right now."
	MsgGenericError     = "Something went wrong."
	MsgTrendingError    = "Unable to load trending products."
	MsgDetailLoading    = "Loading product details..."
	MsgDetailError      = "Unable to load details."
	MsgCartEmpty        = "Your cart is empty."
	ShapeGridCard       = "grid-card"
	ShapeTrendingCard   = "trending-card"
	BannerKindError     = "error"
	BannerKindEmptyInfo = "empty"
)

// Skeleton is a placeholder card shown while products load
type Skeleton struct {
	Shape string `json:"shape"`
	Bars  int    `json:"bars"`
}

// Banner is a full-width message replacing grid content
type Banner struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type CategoryButton struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Active   bool   `json:"active"`
}

type ProductCard struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	CategoryLabel string `json:"category_label"`
	Rating        string `json:"rating"`
	Price         string `json:"price"`
	// DetailLink is set on trending cards, which link to the products page.
	DetailLink string `json:"detail_link,omitempty"`
}

// Grid is exactly one of: loading skeletons, cards, or a banner.
type Grid struct {
	Loading []Skeleton    `json:"loading,omitempty"`
	Cards   []ProductCard `json:"cards,omitempty"`
	Banner  *Banner       `json:"banner,omitempty"`
}

type DetailContent struct {
	ID          int64  `json:"id"`
	Image       string `json:"image"`
	Alt         string `json:"alt"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	AddToCartID int64  `json:"add_to_cart_id"`
}

// Detail is the product detail panel. While loading or after a failure
// Content is nil and Status carries the text to show in place.
type Detail struct {
	ProductID int64          `json:"product_id"`
	Status    string         `json:"status,omitempty"`
	Failed    bool           `json:"failed,omitempty"`
	Content   *DetailContent `json:"content,omitempty"`
}

// Badge is the cart count indicator. All badges show the same value.
type Badge struct {
	Count  int    `json:"count"`
	Text   string `json:"text"`
	Hidden bool   `json:"hidden"`
}

func gridSkeletons(n int, shape string, bars int) []Skeleton {
	s := make([]Skeleton, n)
	for i := range s {
		s[i] = Skeleton{Shape: shape, Bars: bars}
	}
	return s
}

// LoadingGrid is the products grid while a listing is in flight.
func LoadingGrid() Grid {
	return Grid{Loading: gridSkeletons(GridSkeletons, ShapeGridCard, 4)}
}

// LoadingTrending is the home trending strip while loading.
func LoadingTrending() Grid {
	return Grid{Loading: gridSkeletons(TrendingSkeletons, ShapeTrendingCard, 3)}
}

func card(p models.Product) ProductCard {
	return ProductCard{
		ID:            p.ID,
		Title:         p.Title,
		Image:         p.Image,
		CategoryLabel: CategoryLabel(p.Category),
		Rating:        FormatRating(p.Rating),
		Price:         FormatPrice(p.Price),
	}
}

func ProductGrid(products []models.Product) Grid {
	if len(products) == 0 {
		return Grid{Banner: &Banner{Kind: BannerKindEmptyInfo, Message: MsgNoProducts}}
	}

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, card(p))
	}
	return Grid{Cards: cards}
}

func TrendingGrid(products []models.Product) Grid {
	if len(products) == 0 {
		return Grid{Banner: &Banner{Kind: BannerKindEmptyInfo, Message: MsgNoTrending}}
	}

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		c := card(p)
		c.DetailLink = "/products?product=" + strconv.FormatInt(p.ID, 10)
		cards = append(cards, c)
	}
	return Grid{Cards: cards}
}

// ErrorGrid clears the grid and shows err.
func ErrorGrid(err error, fallback string) Grid {
	return Grid{Banner: &Banner{Kind: BannerKindError, Message: ErrorMessage(err, fallback)}}
}

// CategoryButtons prepends "all" and marks the one equal to active.
func CategoryButtons(categories []string, active string) []CategoryButton {
	all := append([]string{models.CategoryAll}, categories...)
	buttons := make([]CategoryButton, 0, len(all))
	for _, c := range all {
		buttons = append(buttons, CategoryButton{
			Category: c,
			Label:    CategoryLabel(c),
			Active:   c == active,
		})
	}
	return buttons
}

func DetailLoading(id int64) *Detail {
	return &Detail{ProductID: id, Status: MsgDetailLoading}
}

// DetailFailed keeps the panel open with the error in place of content.
func DetailFailed(id int64, err error) *Detail {
	return &Detail{ProductID: id, Status: ErrorMessage(err, MsgDetailError), Failed: true}
}

func DetailView(p models.Product) *Detail {
	return &Detail{
		ProductID: p.ID,
		Content: &DetailContent{
			ID:          p.ID,
			Image:       p.Image,
			Alt:         p.Title,
			Category:    CategoryLabel(p.Category),
			Title:       p.Title,
			Price:       FormatPrice(p.Price),
			Rating:      FormatDetailRating(p.Rating),
			Description: p.Description,
			AddToCartID: p.ID,
		},
	}
}

func CartBadge(total int) Badge {
	return Badge{Count: total, Text: strconv.Itoa(total), Hidden: total == 0}
}

// CartSummary is the one-line answer to the cart button.
func CartSummary(total int) string {
	if total == 0 {
		return MsgCartEmpty
	}
	return "Cart items: " + strconv.Itoa(total)
}
