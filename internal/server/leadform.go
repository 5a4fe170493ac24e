package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// handleLeadSubmit captures a "work with me" form submission into the lead
// stream. Leads are a local affordance; nothing is sent to the backend.
func (s *Service) handleLeadSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectHomeError(w, r, "invalid form payload")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	interest := strings.TrimSpace(r.FormValue("interest"))
	channel := strings.TrimSpace(r.FormValue("channel"))

	if name == "" || interest == "" {
		s.redirectHomeError(w, r, "name and interest are required")
		return
	}
	if channel == "" {
		channel = "website"
	}

	budgetCents := 0
	if budget, err := strconv.Atoi(r.FormValue("budget")); err == nil && budget > 0 {
		budgetCents = budget * 100
	}

	lead := s.simulator.Capture(name, channel, interest, budgetCents)
	s.logger.WithField("lead_id", lead.ID).Info("captured lead")

	s.redirectHomeNotice(w, r, "Thanks! We'll be in touch")
}

func (s *Service) redirectHomeNotice(w http.ResponseWriter, r *http.Request, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectHomeError(w http.ResponseWriter, r *http.Request, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}
