package server

import (
	"net/http"

	"callboard/pkg/types"
)

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	client := s.client.WithSession(state.Provider())

	stats, err := client.CommunityStats(r.Context())
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch community stats")
	}

	var userStats types.UserStats
	if id := state.userID(); id != "" {
		userStats, err = client.UserStats(r.Context(), id)
		if err != nil {
			s.logger.WithError(err).Warn("failed to fetch user stats")
		}
	}

	cart, err := client.Cart(r.Context())
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch cart")
	}

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{Title: "Dashboard"},
		Stats:        stats,
		UserStats:    userStats,
		Cart:         cart,
		Leads:        s.simulator.Recent(10),
	}

	if err := s.renderTemplate(w, r, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard")
		s.internalServerError(w)
	}
}

// handleDashboardLeads serves the polled leads fragment.
func (s *Service) handleDashboardLeads(w http.ResponseWriter, r *http.Request) {
	data := &types.DashboardPageData{
		Leads: s.simulator.Recent(10),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "fragment.leads", data); err != nil {
		s.logger.WithError(err).Error("failed to render leads fragment")
		s.internalServerError(w)
	}
}
