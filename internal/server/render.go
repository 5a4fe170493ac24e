package server

import (
	"net/http"

	"callboard/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	state := sessionFromContext(r.Context())

	if setter, ok := data.(types.NavbarDataSetter); ok {
		navbar := types.NavbarData{}
		if state != nil && state.User != nil {
			navbar.IsAuthenticated = true
			navbar.UserID = state.User.ID
			navbar.UserName = state.User.DisplayName
			navbar.AvatarURL = state.User.AvatarURL
		}
		setter.SetNavbarData(navbar)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
