package session

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matthieukhl/swiftcart/internal/models"
)

const (
	paramCategory = "category"
	paramProduct  = "product"
)

// Location mirrors the current view in query parameters so it can be shared
// or bookmarked. Parameters it does not own are preserved.
type Location struct {
	values url.Values
}

// ParseLocation reads a raw query string such as "category=jewelery&product=5".
func ParseLocation(rawQuery string) Location {
	// malformed pairs are skipped; the rest still parse
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return Location{values: values}
}

func LocationFrom(values url.Values) Location {
	copied := url.Values{}
	for k, v := range values {
		copied[k] = append([]string(nil), v...)
	}
	return Location{values: copied}
}

// Category is the requested category, "" when absent.
func (l Location) Category() string {
	return l.values.Get(paramCategory)
}

// ProductID is the requested product, 0 when absent or not a positive
// integer.
func (l Location) ProductID() int64 {
	return CoerceID(l.values.Get(paramProduct))
}

// WithCategory records a category change: "all" drops the parameter and any
// open product is cleared.
func (l Location) WithCategory(category string) Location {
	next := LocationFrom(l.values)
	if category == models.CategoryAll {
		next.values.Del(paramCategory)
	} else {
		next.values.Set(paramCategory, category)
	}
	next.values.Del(paramProduct)
	return next
}

func (l Location) WithProduct(id int64) Location {
	next := LocationFrom(l.values)
	next.values.Set(paramProduct, strconv.FormatInt(id, 10))
	return next
}

// Encode returns the query string without a leading "?".
func (l Location) Encode() string {
	return l.values.Encode()
}

// CoerceID turns user text into a product id. Anything that is not a
// positive whole number is 0.
func CoerceID(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		if id > 0 {
			return id
		}
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f != float64(int64(f)) {
		return 0
	}
	return int64(f)
}
