package server

import (
	"net/http"

	"github.com/alexedwards/flow"
)

func (s *Service) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func flowParam(r *http.Request, name string) string {
	return flow.Param(r.Context(), name)
}
