package session

import (
	"time"

	"callboard/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Provider exposes the signed-in state the fetch and mutation layers need.
// The web layer backs it with encrypted cookies; tests back it with Static.
type Provider interface {
	// Token returns the backend session token, or false when signed out.
	Token() (string, bool)
	// CurrentUser returns the signed-in user, or false when signed out.
	CurrentUser() (*types.SessionUser, bool)
}

// Static is a fixed-value Provider for tests and one-shot CLI calls.
type Static struct {
	AccessToken string
	User        *types.SessionUser
}

func (s Static) Token() (string, bool) {
	if s.AccessToken == "" {
		return "", false
	}
	return s.AccessToken, true
}

func (s Static) CurrentUser() (*types.SessionUser, bool) {
	if s.User == nil {
		return nil, false
	}
	return s.User, true
}

// Expired reports whether the token carries an exp claim in the past. Tokens
// that fail to parse are treated as expired; the backend is still the
// authority either way.
func Expired(token string, now time.Time) bool {
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return true
	}
	exp, ok := parsed.Expiration()
	if !ok {
		return false
	}
	return exp.Before(now)
}
