package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectFromToken(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice@example.com"}).
		SignedString([]byte("server-secret"))
	require.NoError(t, err)

	sub, ok := SubjectFromToken(tok)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", sub)
}

func TestSubjectFromToken_Invalid(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, ok := SubjectFromToken(tok)
		assert.Falsef(t, ok, "token %q", tok)
	}

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "x"}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok := SubjectFromToken(noSub)
	assert.False(t, ok)
}
