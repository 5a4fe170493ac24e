package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"callboard/internal"
	"callboard/internal/session"
	"callboard/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeySession contextKey = "session"

// sessionState is what the cookies yielded for this request. Token and User
// come straight from the backend at login time; callboard never mints either.
type sessionState struct {
	Token string
	User  *types.SessionUser
}

func (st *sessionState) Provider() session.Provider {
	if st == nil {
		return session.Static{}
	}
	return session.Static{AccessToken: st.Token, User: st.User}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// WithSession decodes the session cookies, drops anything expired or
// unverifiable, and attaches the result to the request context. It never
// blocks a request; RequireAuth does that.
func (s *Service) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := s.sessionFromRequest(r)
		if state != nil {
			ctx := context.WithValue(r.Context(), contextKeySession, state)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) sessionFromRequest(r *http.Request) *sessionState {
	cookie, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME)
	if err != nil {
		return nil
	}

	var accessToken string
	if err := s.cookie.Decode(internal.COOKIE_ACCESS_TOKEN_NAME, cookie.Value, &accessToken); err != nil {
		s.logger.WithError(err).Debug("failed to decrypt access token")
		return nil
	}

	if session.Expired(accessToken, time.Now()) {
		s.logger.Debug("session token expired")
		return nil
	}

	if s.jwksURL != "" {
		set, err := s.jwksCache.Lookup(r.Context(), s.jwksURL)
		if err != nil {
			s.logger.WithError(err).Error("failed to fetch JWKS")
			return nil
		}
		if _, err := jwt.Parse([]byte(accessToken), jwt.WithKeySet(set), jwt.WithValidate(true)); err != nil {
			s.logger.WithError(err).Error("failed to verify JWT")
			return nil
		}
	}

	state := &sessionState{Token: accessToken}

	userCookie, err := r.Cookie(internal.COOKIE_USER_NAME)
	if err == nil {
		var user types.SessionUser
		if err := s.cookie.Decode(internal.COOKIE_USER_NAME, userCookie.Value, &user); err != nil {
			s.logger.WithError(err).Debug("failed to decrypt user cookie")
		} else {
			state.User = &user
		}
	}

	if s.debug {
		pp.Println(state.User)
	}

	return state
}

// RequireAuth redirects signed-out requests to the login entry point,
// remembering where they were headed.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := sessionFromContext(r.Context())
		if state == nil {
			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)
			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		s.logger.WithFields(logrus.Fields{
			"user_id": state.userID(),
		}).Debug("authenticated user")

		next.ServeHTTP(w, r)
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			// Preserve query string
			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionFromContext(ctx context.Context) *sessionState {
	state, _ := ctx.Value(contextKeySession).(*sessionState)
	return state
}

func (st *sessionState) userID() string {
	if st == nil || st.User == nil {
		return ""
	}
	return st.User.ID
}
