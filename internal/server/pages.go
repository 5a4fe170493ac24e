package server

import (
	"net/http"

	"callboard/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	client := s.client.WithSession(sessionFromContext(r.Context()).Provider())

	stats, err := client.CommunityStats(r.Context())
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch community stats")
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "callboard"},
		Notice:       r.URL.Query().Get("notice"),
		Error:        r.URL.Query().Get("error"),
		Stats:        stats,
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
	}
}
