package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	t.Run("Valid_EnablesParseTime", func(t *testing.T) {
		mc, err := ParseDSN("shop:secret@tcp(127.0.0.1:3306)/swiftcart")
		require.NoError(t, err)
		require.Equal(t, "swiftcart", mc.DBName)
		require.Equal(t, "127.0.0.1:3306", mc.Addr)
		require.True(t, mc.ParseTime)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDSN("")
		require.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseDSN("shop:secret@tcp(127.0.0.1:3306")
		require.Error(t, err)
	})
}
