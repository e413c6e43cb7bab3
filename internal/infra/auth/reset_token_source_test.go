package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenSource_Format(t *testing.T) {
	source := NewResetTokenSource()

	token, err := source.NewToken()
	require.NoError(t, err)

	assert.Len(t, token, resetTokenBytes*2)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestResetTokenSource_Uniqueness(t *testing.T) {
	source := NewResetTokenSource()

	seen := make(map[string]struct{})
	for range 100 {
		token, err := source.NewToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token minted twice")
		seen[token] = struct{}{}
	}
}
