package catalog

import (
	"errors"
	"fmt"
)

// Op names the catalog call that failed
type Op string

const (
	OpCategories Op = "categories"
	OpProducts   Op = "products"
	OpProduct    Op = "product"
)

// ErrProductNotFound is returned when the API answers a single-product
// request successfully but with no product in the body.
var ErrProductNotFound = errors.New("product not found")

// FetchError reports a failed catalog call: either a transport failure
// (Err set, Status 0) or a non-success HTTP status.
type FetchError struct {
	Op     Op
	URL    string
	Status int
	Err    error
}

// Error returns the user-facing message for the failed operation.
func (e *FetchError) Error() string {
	switch e.Op {
	case OpCategories:
		return "Unable to load product categories."
	case OpProducts:
		return "Unable to load products."
	case OpProduct:
		return "Unable to load this product detail."
	default:
		return fmt.Sprintf("Unable to load %s.", e.Op)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Detail describes the underlying cause, for logs.
func (e *FetchError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.Status)
}
