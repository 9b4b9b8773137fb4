package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateHexCode(t *testing.T) {
	t.Parallel()

	t.Run("produces valid hex of requested length", func(t *testing.T) {
		code, err := GenerateHexCode(8)
		require.NoError(t, err)
		require.Len(t, code, 8)

		_, err = hex.DecodeString(code)
		require.NoError(t, err)
	})

	t.Run("rejects odd and non-positive lengths", func(t *testing.T) {
		_, err := GenerateHexCode(7)
		require.Error(t, err)
		_, err = GenerateHexCode(0)
		require.Error(t, err)
		_, err = GenerateHexCode(-2)
		require.Error(t, err)
	})

	t.Run("codes are not repeated", func(t *testing.T) {
		seen := make(map[string]struct{}, 100)
		for range 100 {
			code, err := GenerateHexCode(16)
			require.NoError(t, err)
			require.NotContains(t, seen, code)
			seen[code] = struct{}{}
		}
	})
}

func TestGenerateAlphanumericCode(t *testing.T) {
	t.Parallel()

	t.Run("produces only alphanumeric characters", func(t *testing.T) {
		code, err := GenerateAlphanumericCode(5)
		require.NoError(t, err)
		require.Len(t, code, 5)
		for _, c := range code {
			require.True(t, strings.ContainsRune(alphanumeric, c), "unexpected character %q", c)
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		_, err := GenerateAlphanumericCode(0)
		require.Error(t, err)
	})
}
