package server

import (
	"net/http"

	"callboard/internal/community"
	"callboard/pkg/types"
)

// handleProfile renders a creator's portfolio: their stats plus their posts
// and gigs picked out of the community collections.
func (s *Service) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := flowParam(r, "id")
	if userID == "" {
		http.NotFound(w, r)
		return
	}

	state := sessionFromContext(r.Context())
	client := s.client.WithSession(state.Provider())

	userStats, err := client.UserStats(r.Context(), userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("failed to fetch user stats")
	}

	board := s.boardFor(r)
	board.Refresh(r.Context(), community.RefreshParams{PostLimit: 50, GigLimit: 50})

	var posts []*types.CommunityPost
	for _, post := range board.Posts("") {
		if post.AuthorID == userID {
			posts = append(posts, post)
		}
	}

	var gigs []*types.CommunityGig
	for _, gig := range board.Gigs("") {
		if gig.OwnerID == userID {
			gigs = append(gigs, gig)
		}
	}

	data := &types.ProfilePageData{
		BasePageData: types.BasePageData{Title: "Portfolio"},
		UserID:       userID,
		UserStats:    userStats,
		Posts:        posts,
		Gigs:         gigs,
	}

	if err := s.renderTemplate(w, r, "page.profile", data); err != nil {
		s.logger.WithError(err).Error("failed to render profile page")
		s.internalServerError(w)
	}
}
