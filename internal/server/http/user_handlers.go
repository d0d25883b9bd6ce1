package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listUsers handles GET /api/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.board.ListUsers(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	resp := listUsersResponse{Users: make([]userResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = domainUserToResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}

// getUser handles GET /api/users/{username}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.board.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userEnvelope{User: domainUserToResponse(user)})
}
