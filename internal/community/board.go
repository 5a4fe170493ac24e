package community

import (
	"context"
	"errors"
	"sync"

	"callboard/internal/api"
	"callboard/pkg/types"

	"github.com/sirupsen/logrus"
)

// ErrNotSignedIn means a mutation was attempted without a session token. The
// caller is expected to send the user to the login entry point; no request
// has been made.
var ErrNotSignedIn = errors.New("not signed in")

// ValidationError carries a user-facing reason a mutation was refused
// locally, before any request went out.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Board owns the normalized community collections for one signed-in user and
// is their sole writer. Reads hand out snapshots; every mutation flows
// through the coordinator methods below.
//
// Collections are replaced wholesale on Refresh, never merged. A Refresh
// racing an in-flight mutation can therefore overwrite local state with a
// response that predates the mutation server-side; that window is accepted.
type Board struct {
	client *api.Client
	logger logrus.FieldLogger

	mu            sync.Mutex
	posts         []*types.CommunityPost
	gigs          []*types.CommunityGig
	stats         types.CommunityStats
	applied       map[string]bool
	selectedRoles map[string]string // gig id -> role id

	liking   *inflight
	applying *inflight
}

func NewBoard(client *api.Client, logger logrus.FieldLogger) *Board {
	return &Board{
		client:        client,
		logger:        logger,
		applied:       make(map[string]bool),
		selectedRoles: make(map[string]string),
		liking:        newInflight(),
		applying:      newInflight(),
	}
}

type RefreshParams struct {
	PostLimit  int
	PostOffset int
	GigLimit   int
	GigOffset  int
}

// Refresh refetches every collection. Read failures degrade: the affected
// collection is set to empty and logged, never left stale and never
// propagated. Stale role selections are pruned against the new gig lists.
func (b *Board) Refresh(ctx context.Context, params RefreshParams) {
	if params.PostLimit <= 0 {
		params.PostLimit = 20
	}
	if params.GigLimit <= 0 {
		params.GigLimit = 20
	}

	rawPosts, err := b.client.ListPosts(ctx, api.ListPostsParams{
		Limit:  params.PostLimit,
		Offset: params.PostOffset,
		Status: "published",
		Sort:   "recent",
	})
	if err != nil {
		b.logger.WithError(err).Warn("failed to fetch community posts")
		rawPosts = nil
	}

	rawGigs, err := b.client.ListGigs(ctx, api.ListGigsParams{
		Limit:  params.GigLimit,
		Offset: params.GigOffset,
		Status: "open",
	})
	if err != nil {
		b.logger.WithError(err).Warn("failed to fetch community gigs")
		rawGigs = nil
	}

	stats, err := b.client.CommunityStats(ctx)
	if err != nil {
		b.logger.WithError(err).Warn("failed to fetch community stats")
		stats = types.CommunityStats{}
	}

	rawApps, err := b.client.ListApplications(ctx)
	if err != nil {
		b.logger.WithError(err).Warn("failed to fetch gig applications")
		rawApps = nil
	}

	posts := make([]*types.CommunityPost, 0, len(rawPosts))
	for _, raw := range rawPosts {
		posts = append(posts, NormalizePost(raw))
	}

	gigs := make([]*types.CommunityGig, 0, len(rawGigs))
	for _, raw := range rawGigs {
		gigs = append(gigs, NormalizeGig(raw))
	}

	applied := make(map[string]bool, len(rawApps))
	for _, raw := range rawApps {
		app := NormalizeApplication(raw)
		if app.GigID != "" {
			applied[app.GigID] = true
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.posts = posts
	b.gigs = gigs
	b.stats = stats
	b.applied = applied
	PruneSelections(b.selectedRoles, b.gigs)
}

// Posts returns the current post collection filtered by query. The unfiltered
// slice is handed out as-is; callers treat it as read-only.
func (b *Board) Posts(query string) []*types.CommunityPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	return FilterPosts(b.posts, query)
}

// Gigs returns the current gig collection filtered by query.
func (b *Board) Gigs(query string) []*types.CommunityGig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return FilterGigs(b.gigs, query)
}

func (b *Board) Stats() types.CommunityStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// AppliedGigIDs returns a copy of the applied-gig set.
func (b *Board) AppliedGigIDs() map[string]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]bool, len(b.applied))
	for id := range b.applied {
		out[id] = true
	}
	return out
}

// SelectRole records the user's role choice for a gig. Unknown gig or role
// ids are refused so the selection map can never dangle.
func (b *Board) SelectRole(gigID, roleID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	gig := b.gigByID(gigID)
	if gig == nil {
		return &ValidationError{Reason: "Gig not found"}
	}
	if !ValidSelection(gig, roleID) {
		return &ValidationError{Reason: "That role is no longer available"}
	}
	b.selectedRoles[gigID] = roleID
	return nil
}

// SelectedRole returns the chosen role id for a gig, or "".
func (b *Board) SelectedRole(gigID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedRoles[gigID]
}

// ToggleLike flips the like state of a post. The local view model is updated
// only after the backend accepts the toggle, so a failure leaves prior state
// untouched and needs no rollback. A toggle already in flight for the same
// post id makes this a no-op.
func (b *Board) ToggleLike(ctx context.Context, postID string) error {
	if _, ok := b.client.Token(); !ok {
		return ErrNotSignedIn
	}

	if !b.liking.TryBegin(postID) {
		return nil
	}
	defer b.liking.End(postID)

	if err := b.client.ToggleLike(ctx, postID); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, post := range b.posts {
		if post.ID != postID {
			continue
		}
		if post.IsLiked {
			post.IsLiked = false
			if post.Likes > 0 {
				post.Likes--
			}
		} else {
			post.IsLiked = true
			post.Likes++
		}
		break
	}
	return nil
}

// Apply submits a gig application with the selected role, marks the gig as
// applied, then refetches the authoritative applications list to reconcile
// server-derived state. Gigs with roles require a selection; the check runs
// before any request is issued.
func (b *Board) Apply(ctx context.Context, gigID string) error {
	if _, ok := b.client.Token(); !ok {
		return ErrNotSignedIn
	}

	b.mu.Lock()
	gig := b.gigByID(gigID)
	if gig == nil {
		b.mu.Unlock()
		return &ValidationError{Reason: "Gig not found"}
	}
	roleID := b.selectedRoles[gigID]
	if ok, reason := CanApply(gig, roleID); !ok {
		b.mu.Unlock()
		return &ValidationError{Reason: reason}
	}

	input := api.ApplyInput{Status: "pending"}
	if role, ok := RoleByID(gig, roleID); ok {
		input.RoleID = &role.ID
		input.RoleName = &role.Name
	}
	b.mu.Unlock()

	if !b.applying.TryBegin(gigID) {
		return nil
	}
	defer b.applying.End(gigID)

	if err := b.client.ApplyToGig(ctx, gigID, input); err != nil {
		return err
	}

	b.mu.Lock()
	b.applied[gigID] = true
	b.mu.Unlock()

	rawApps, err := b.client.ListApplications(ctx)
	if err != nil {
		// Keep the optimistic entry; the next Refresh reconciles.
		b.logger.WithError(err).Warn("failed to reconcile applications after apply")
		return nil
	}

	applied := make(map[string]bool, len(rawApps)+1)
	for _, raw := range rawApps {
		app := NormalizeApplication(raw)
		if app.GigID != "" {
			applied[app.GigID] = true
		}
	}
	applied[gigID] = true

	b.mu.Lock()
	b.applied = applied
	b.mu.Unlock()
	return nil
}

// gigByID must be called with b.mu held.
func (b *Board) gigByID(gigID string) *types.CommunityGig {
	for _, gig := range b.gigs {
		if gig.ID == gigID {
			return gig
		}
	}
	return nil
}
