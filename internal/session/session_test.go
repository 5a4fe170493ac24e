package session

import (
	"testing"
	"time"

	"callboard/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, build func(*jwt.Builder) *jwt.Builder) string {
	t.Helper()
	tok, err := build(jwt.NewBuilder()).Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), []byte("test-signing-key")))
	require.NoError(t, err)
	return string(signed)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	future := signedToken(t, func(b *jwt.Builder) *jwt.Builder {
		return b.Expiration(now.Add(time.Hour))
	})
	assert.False(t, Expired(future, now))

	past := signedToken(t, func(b *jwt.Builder) *jwt.Builder {
		return b.Expiration(now.Add(-time.Hour))
	})
	assert.True(t, Expired(past, now))
}

func TestExpired_NoExpClaim(t *testing.T) {
	token := signedToken(t, func(b *jwt.Builder) *jwt.Builder {
		return b.Subject("user-1")
	})
	assert.False(t, Expired(token, time.Now()), "tokens without exp never expire locally")
}

func TestExpired_UnparseableToken(t *testing.T) {
	assert.True(t, Expired("not-a-jwt", time.Now()))
	assert.True(t, Expired("", time.Now()))
}

func TestStaticProvider(t *testing.T) {
	signedIn := Static{
		AccessToken: "tok",
		User:        &types.SessionUser{ID: "u1", Username: "ada"},
	}
	token, ok := signedIn.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
	user, ok := signedIn.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)

	var signedOut Static
	_, ok = signedOut.Token()
	assert.False(t, ok)
	_, ok = signedOut.CurrentUser()
	assert.False(t, ok)
}
