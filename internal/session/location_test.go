package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		loc := ParseLocation("?category=men%27s+clothing&product=12")
		require.Equal(t, "men's clothing", loc.Category())
		require.Equal(t, int64(12), loc.ProductID())
	})

	t.Run("Empty", func(t *testing.T) {
		loc := ParseLocation("")
		require.Empty(t, loc.Category())
		require.Zero(t, loc.ProductID())
		require.Empty(t, loc.Encode())
	})

	t.Run("WithCategoryDropsProduct", func(t *testing.T) {
		loc := ParseLocation("product=3&utm=x").WithCategory("jewelery")
		require.Equal(t, "category=jewelery&utm=x", loc.Encode())
	})

	t.Run("WithCategoryAllDropsParam", func(t *testing.T) {
		loc := ParseLocation("category=jewelery").WithCategory("all")
		require.Empty(t, loc.Encode())
	})

	t.Run("WithProductDoesNotMutateOriginal", func(t *testing.T) {
		orig := ParseLocation("category=jewelery")
		next := orig.WithProduct(5)
		require.Equal(t, "category=jewelery&product=5", next.Encode())
		require.Equal(t, "category=jewelery", orig.Encode())
	})
}

func TestCoerceID(t *testing.T) {
	cases := map[string]int64{
		"42":   42,
		" 7 ":  7,
		"3.0":  3,
		"3.5":  0,
		"0":    0,
		"-4":   0,
		"abc":  0,
		"":     0,
		"1e2":  100,
		"NaN":  0,
	}
	for in, want := range cases {
		require.Equal(t, want, CoerceID(in), in)
	}
}
