package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// maxQuantity caps a stored qty; anything larger is treated as corrupt.
const maxQuantity = math.MaxInt32

// CartLine is one entry of the cart, unique by product ID
type CartLine struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Qty   Quantity        `json:"qty"`
}

// storedLine is the persisted shape: price is a plain JSON number.
type storedLine struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Price json.Number `json:"price"`
	Image string      `json:"image"`
	Qty   Quantity    `json:"qty"`
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(storedLine{
		ID:    l.ID,
		Title: l.Title,
		Price: json.Number(l.Price.String()),
		Image: l.Image,
		Qty:   l.Qty,
	})
}

// UnmarshalJSON accepts an object whose fields may carry the wrong JSON
// type: numeric strings are read as numbers, anything else unusable
// becomes the zero value. Only a non-object line is an error.
func (l *CartLine) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    json.RawMessage `json:"id"`
		Title json.RawMessage `json:"title"`
		Price json.RawMessage `json:"price"`
		Image json.RawMessage `json:"image"`
		Qty   Quantity        `json:"qty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = CartLine{
		Title: lenientString(raw.Title),
		Image: lenientString(raw.Image),
		Qty:   raw.Qty,
	}
	if f, ok := lenientNumber(raw.ID); ok && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		l.ID = int64(f)
	}
	if s, ok := numberText(raw.Price); ok {
		if d, err := decimal.NewFromString(s); err == nil {
			l.Price = d
		}
	}
	return nil
}

// Quantity decodes leniently: a missing, null, non-numeric, negative or
// out of range value is 0.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	f, ok := lenientNumber(data)
	if !ok || f < 0 || f > maxQuantity {
		*q = 0
		return nil
	}
	*q = Quantity(f)
	return nil
}

// numberText returns the text of a JSON number or of a string holding one.
func numberText(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(data), true
}

// lenientNumber parses a JSON number or numeric string into a finite float.
func lenientNumber(data []byte) (float64, bool) {
	s, ok := numberText(data)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func lenientString(data []byte) string {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}
	return s
}

// NewCartLine snapshots the product fields kept in the cart.
func NewCartLine(p Product) CartLine {
	return CartLine{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.Image,
		Qty:   1,
	}
}
