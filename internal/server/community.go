package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"callboard/internal/api"
	"callboard/internal/community"
	"callboard/internal/imaging"
	"callboard/pkg/types"
)

var postCategories = []string{
	"General", "Showcase", "Collab", "Events", "Resources", "Questions",
}

type communityQuery struct {
	Query  string `form:"q"`
	Tab    string `form:"tab"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (s *Service) handleCommunity(w http.ResponseWriter, r *http.Request) {
	var params communityQuery
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.logger.WithError(err).Debug("bad community query")
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.Tab != "gigs" {
		params.Tab = "posts"
	}

	board := s.boardFor(r)
	board.Refresh(r.Context(), community.RefreshParams{
		PostLimit:  params.Limit,
		PostOffset: params.Offset,
		GigLimit:   params.Limit,
		GigOffset:  params.Offset,
	})

	posts := board.Posts(params.Query)
	gigs := board.Gigs(params.Query)
	applied := board.AppliedGigIDs()

	cards := make([]types.GigCard, 0, len(gigs))
	for _, gig := range gigs {
		card := types.GigCard{
			Gig:          gig,
			SelectedRole: board.SelectedRole(gig.ID),
			Applied:      applied[gig.ID],
		}
		for _, role := range gig.Roles {
			card.RoleLabels = append(card.RoleLabels, types.RoleSlotLabel{
				RoleID:    role.ID,
				RoleName:  role.Name,
				Spots:     community.SpotsLabel(role),
				Approvals: community.ApprovalsLabel(role),
			})
		}
		cards = append(cards, card)
	}

	data := &types.CommunityPageData{
		BasePageData:  types.BasePageData{Title: "Community"},
		Notice:        r.URL.Query().Get("notice"),
		Error:         r.URL.Query().Get("error"),
		Query:         params.Query,
		Tab:           params.Tab,
		Posts:         posts,
		Gigs:          gigs,
		GigCards:      cards,
		Stats:         board.Stats(),
		AppliedGigIDs: applied,
		Limit:         params.Limit,
		Offset:        params.Offset,
		HasMore:       len(posts) == params.Limit || len(gigs) == params.Limit,
	}

	if err := s.renderTemplate(w, r, "page.community", data); err != nil {
		s.logger.WithError(err).Error("failed to render community page")
		s.internalServerError(w)
	}
}

func (s *Service) handleGetNewPost(w http.ResponseWriter, r *http.Request) {
	data := &types.NewPostPageData{
		BasePageData: types.BasePageData{Title: "New Post"},
		Error:        r.URL.Query().Get("error"),
		Categories:   postCategories,
		Presets:      imaging.Presets(),
	}
	if err := s.renderTemplate(w, r, "page.post-new", data); err != nil {
		s.logger.WithError(err).Error("failed to render new post page")
		s.internalServerError(w)
	}
}

func (s *Service) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		s.redirectCommunityError(w, r, "invalid form payload")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	category := strings.TrimSpace(r.FormValue("category"))
	preset := r.FormValue("crop_preset")

	if title == "" || content == "" {
		http.Redirect(w, r, "/community/posts/new?"+url.Values{"error": {"title and content are required"}}.Encode(), http.StatusSeeOther)
		return
	}
	if category == "" {
		category = "General"
	}

	input := api.CreatePostInput{
		Title:    title,
		Content:  content,
		Category: category,
		Status:   "published",
	}

	file, _, err := r.FormFile("featured_image")
	if err == nil {
		defer file.Close()
		raw, err := io.ReadAll(file)
		if err == nil && len(raw) > 0 {
			if !imaging.ValidPreset(preset) {
				preset = string(imaging.PresetWide)
			}
			dataURL, err := imaging.CropToDataURL(raw, imaging.Preset(preset))
			if err != nil {
				s.logger.WithError(err).Warn("failed to crop featured image")
			} else {
				input.FeaturedImage = &dataURL
			}
		}
	}

	client := s.client.WithSession(sessionFromContext(r.Context()).Provider())
	if err := client.CreatePost(r.Context(), input); err != nil {
		s.logger.WithError(err).Error("failed to create post")
		s.redirectCommunityError(w, r, writeFailureMessage(err, "Unable to share your post right now"))
		return
	}

	s.redirectCommunityNotice(w, r, "Post shared with the community")
}

func (s *Service) handleLikePost(w http.ResponseWriter, r *http.Request) {
	postID := flowParam(r, "id")

	board := s.boardFor(r)
	if err := board.ToggleLike(r.Context(), postID); err != nil {
		if errors.Is(err, community.ErrNotSignedIn) {
			s.redirectToLogin(w, r)
			return
		}
		s.logger.WithError(err).WithField("post_id", postID).Error("failed to toggle like")
		s.redirectCommunityError(w, r, writeFailureMessage(err, "Unable to update your like right now"))
		return
	}

	http.Redirect(w, r, communityReturnPath(r), http.StatusSeeOther)
}

func (s *Service) handleSelectRole(w http.ResponseWriter, r *http.Request) {
	gigID := flowParam(r, "id")
	roleID := r.FormValue("role_id")

	board := s.boardFor(r)
	if err := board.SelectRole(gigID, roleID); err != nil {
		var validationErr *community.ValidationError
		if errors.As(err, &validationErr) {
			s.redirectCommunityError(w, r, validationErr.Reason)
			return
		}
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, communityReturnPath(r), http.StatusSeeOther)
}

func (s *Service) handleApplyToGig(w http.ResponseWriter, r *http.Request) {
	gigID := flowParam(r, "id")

	board := s.boardFor(r)
	if err := board.Apply(r.Context(), gigID); err != nil {
		switch {
		case errors.Is(err, community.ErrNotSignedIn):
			s.redirectToLogin(w, r)
		default:
			var validationErr *community.ValidationError
			if errors.As(err, &validationErr) {
				s.redirectCommunityError(w, r, validationErr.Reason)
				return
			}
			s.logger.WithError(err).WithField("gig_id", gigID).Error("failed to apply to gig")
			s.redirectCommunityError(w, r, writeFailureMessage(err, "Unable to submit your application right now"))
		}
		return
	}

	s.redirectCommunityNotice(w, r, "Application submitted")
}

// writeFailureMessage prefers the backend's reason when one was extracted.
func writeFailureMessage(err error, fallback string) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.UserMessage(fallback)
	}
	return fallback
}

// communityReturnPath echoes the query/tab state a mutation came from so the
// redirect lands back on the same filtered view.
func communityReturnPath(r *http.Request) string {
	v := url.Values{}
	if q := r.FormValue("q"); q != "" {
		v.Set("q", q)
	}
	if tab := r.FormValue("tab"); tab != "" {
		v.Set("tab", tab)
	}
	if len(v) == 0 {
		return "/community"
	}
	return "/community?" + v.Encode()
}

func (s *Service) redirectCommunityNotice(w http.ResponseWriter, r *http.Request, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, "/community?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectCommunityError(w http.ResponseWriter, r *http.Request, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, "/community?"+v.Encode(), http.StatusSeeOther)
}
