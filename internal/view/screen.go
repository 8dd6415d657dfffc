package view

import "github.com/matthieukhl/swiftcart/internal/models"

// ProductsScreen is the catalog page: filters, grid, optional detail panel.
type ProductsScreen struct {
	Categories     []CategoryButton `json:"categories"`
	ActiveCategory string           `json:"active_category"`
	Grid           Grid             `json:"grid"`
	Error          *Banner          `json:"error,omitempty"`
	Detail         *Detail          `json:"detail,omitempty"`
	Badge          Badge            `json:"badge"`
	Location       string           `json:"location"`
}

// HomeScreen is the landing page with the trending strip.
type HomeScreen struct {
	Trending Grid  `json:"trending"`
	Badge    Badge `json:"badge"`
}

type CartLineView struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}

type CartScreen struct {
	Lines   []CartLineView `json:"lines"`
	Summary string         `json:"summary"`
	Badge   Badge          `json:"badge"`
}

func Cart(lines []models.CartLine, total int) CartScreen {
	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			ID:    l.ID,
			Title: l.Title,
			Image: l.Image,
			Price: FormatPrice(l.Price),
			Qty:   int(l.Qty),
		})
	}
	return CartScreen{
		Lines:   views,
		Summary: CartSummary(total),
		Badge:   CartBadge(total),
	}
}
