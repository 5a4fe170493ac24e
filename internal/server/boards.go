package server

import (
	"net/http"
	"sync"

	"callboard/internal/community"
	"callboard/pkg/types"
)

// One community.Board per signed-in user, plus a shared board for anonymous
// browsing. A board is the sole owner of that user's normalized collections
// and survives across requests so role selections and the applied set behave
// like page state.

type boardRegistry struct {
	mu      sync.Mutex
	entries map[string]*boardEntry
}

type boardEntry struct {
	board *community.Board
	sess  *rebindableSession
}

func newBoardRegistry() *boardRegistry {
	return &boardRegistry{entries: make(map[string]*boardEntry)}
}

// rebindableSession keeps a board's API client pointed at the user's latest
// token. Logging in again replaces the token without discarding board state.
type rebindableSession struct {
	mu    sync.RWMutex
	token string
	user  *types.SessionUser
}

func (p *rebindableSession) Token() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.token == "" {
		return "", false
	}
	return p.token, true
}

func (p *rebindableSession) CurrentUser() (*types.SessionUser, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return nil, false
	}
	return p.user, true
}

func (p *rebindableSession) update(state *sessionState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if state == nil {
		p.token, p.user = "", nil
		return
	}
	p.token, p.user = state.Token, state.User
}

// boardFor returns the board backing the request's user, creating it on
// first sight and refreshing its session token on every call.
func (s *Service) boardFor(r *http.Request) *community.Board {
	state := sessionFromContext(r.Context())

	key := "anonymous"
	if id := state.userID(); id != "" {
		key = id
	}

	s.boards.mu.Lock()
	entry, ok := s.boards.entries[key]
	if !ok {
		sess := &rebindableSession{}
		entry = &boardEntry{
			board: community.NewBoard(s.client.WithSession(sess), s.logger),
			sess:  sess,
		}
		s.boards.entries[key] = entry
	}
	s.boards.mu.Unlock()

	entry.sess.update(state)
	return entry.board
}
