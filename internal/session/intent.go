package session

import (
	"context"
	"fmt"

	"github.com/matthieukhl/swiftcart/internal/view"
)

type IntentKind int

const (
	IntentSelectCategory IntentKind = iota + 1
	IntentOpenDetail
	IntentCloseDetail
	IntentAddToCart
	IntentShowCart
)

var intentNames = map[IntentKind]string{
	IntentSelectCategory: "select_category",
	IntentOpenDetail:     "open_detail",
	IntentCloseDetail:    "close_detail",
	IntentAddToCart:      "add_to_cart",
	IntentShowCart:       "show_cart",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// ParseIntentKind maps a wire name such as "add_to_cart" to its kind.
func ParseIntentKind(name string) (IntentKind, error) {
	for k, n := range intentNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", name)
}

// Intent is a user action aimed at the session
type Intent struct {
	Kind      IntentKind
	Category  string
	ProductID int64
}

// Result tells the UI what happened. Handled is false when the intent was a
// no-op (already active category, unknown product).
type Result struct {
	Handled bool
	Message string
}

type intentHandler func(s *Session, ctx context.Context, in Intent) (Result, error)

var intentHandlers = map[IntentKind]intentHandler{
	IntentSelectCategory: handleSelectCategory,
	IntentOpenDetail:     handleOpenDetail,
	IntentCloseDetail:    handleCloseDetail,
	IntentAddToCart:      handleAddToCart,
	IntentShowCart:       handleShowCart,
}

// Dispatch routes an intent to its handler.
func (s *Session) Dispatch(ctx context.Context, in Intent) (Result, error) {
	handler, ok := intentHandlers[in.Kind]
	if !ok {
		return Result{}, fmt.Errorf("no handler for %s", in.Kind)
	}
	return handler(s, ctx, in)
}

func handleSelectCategory(s *Session, ctx context.Context, in Intent) (Result, error) {
	if in.Category == s.ActiveCategory() {
		return Result{}, nil
	}

	err := s.SetCategory(ctx, in.Category)

	// the location follows intent even when the listing failed
	s.mu.Lock()
	s.location = s.location.WithCategory(in.Category)
	s.mu.Unlock()

	if err != nil {
		return Result{Handled: true, Message: view.ErrorMessage(err, view.MsgGenericError)}, err
	}
	return Result{Handled: true}, nil
}

func handleOpenDetail(s *Session, ctx context.Context, in Intent) (Result, error) {
	if in.ProductID <= 0 {
		return Result{}, nil
	}

	_, err := s.OpenDetail(ctx, in.ProductID)

	s.mu.Lock()
	s.location = s.location.WithProduct(in.ProductID)
	s.mu.Unlock()

	if err != nil {
		return Result{Handled: true, Message: view.ErrorMessage(err, view.MsgDetailError)}, err
	}
	return Result{Handled: true}, nil
}

func handleCloseDetail(s *Session, ctx context.Context, in Intent) (Result, error) {
	s.CloseDetail()
	return Result{Handled: true}, nil
}

func handleAddToCart(s *Session, ctx context.Context, in Intent) (Result, error) {
	added, err := s.AddToCart(ctx, in.ProductID)
	if err != nil {
		return Result{}, err
	}
	if !added {
		return Result{}, nil
	}
	return Result{Handled: true, Message: "Added"}, nil
}

func handleShowCart(s *Session, ctx context.Context, in Intent) (Result, error) {
	return Result{Handled: true, Message: view.CartSummary(s.cart.TotalQuantity(ctx))}, nil
}
