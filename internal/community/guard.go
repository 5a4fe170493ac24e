package community

import "sync"

// inflight tracks which entity ids have a mutation in progress. At most one
// operation per id may be active; a second Begin for the same id is refused
// until End runs.
type inflight struct {
	mu  sync.Mutex
	ids map[string]bool
}

func newInflight() *inflight {
	return &inflight{ids: make(map[string]bool)}
}

// TryBegin claims the id. It returns false when an operation for that id is
// already running.
func (g *inflight) TryBegin(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ids[id] {
		return false
	}
	g.ids[id] = true
	return true
}

// End releases the id. Safe to call for ids that were never claimed.
func (g *inflight) End(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.ids, id)
}

// Active reports whether an operation for the id is running.
func (g *inflight) Active(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ids[id]
}
