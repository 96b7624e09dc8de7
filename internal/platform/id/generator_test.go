package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_PrefixedUniqueTokens(t *testing.T) {
	gen := NewTokenGenerator("ses_")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := gen.NewID()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(token, "ses_"))
		require.False(t, seen[token], "duplicate token %s", token)
		seen[token] = true

		parsed, err := uuid.Parse(strings.TrimPrefix(token, "ses_"))
		require.NoError(t, err)
		require.Equal(t, uuid.Version(4), parsed.Version())
	}
}
