package user

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIssuer_Issue(t *testing.T) {
	issuer := NewRandomIssuer()

	token, err := issuer.Issue()
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenBytes)
}

func TestRandomIssuer_TokensAreUnique(t *testing.T) {
	issuer := NewRandomIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := issuer.Issue()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token")
		seen[token] = true
	}
}
