package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matthieukhl/swiftcart/internal/models"
)

// FormatPrice renders an amount as US dollars with two decimals and
// thousands grouping, e.g. "$1,234.50".
func FormatPrice(price decimal.Decimal) string {
	sign := ""
	if price.IsNegative() {
		sign = "-"
		price = price.Neg()
	}

	fixed := price.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// too large for int64 grouping; print ungrouped
		return sign + "$" + fixed
	}
	return sign + message.NewPrinter(language.AmericanEnglish).Sprintf("$%d.%s", n, cents)
}

// FormatRating is the compact rating shown on product cards.
func FormatRating(r *models.Rating) string {
	if r == nil {
		return "No ratings"
	}
	return fmt.Sprintf("* %.1f (%d)", r.Rate, r.Count)
}

// FormatDetailRating is the rating line of the detail view.
func FormatDetailRating(r *models.Rating) string {
	if r == nil {
		return "Rating: Not available"
	}
	return fmt.Sprintf("Rating: %.1f (%d reviews)", r.Rate, r.Count)
}

// CategoryLabel title-cases each space-separated word of a category. Only
// the first character of a word changes; "men's clothing" becomes
// "Men's Clothing".
func CategoryLabel(category string) string {
	if category == models.CategoryAll {
		return "All"
	}

	// Casers are stateful; one per call
	upper := cases.Upper(language.Und)
	words := strings.Split(category, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}

// ErrorMessage prefers the error's own message and falls back otherwise.
func ErrorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
