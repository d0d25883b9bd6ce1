package httpserver

import "net/http"

// voteComment handles PATCH /api/comments/{comment_id}.
func (s *Server) voteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "comment_id")
	if !ok {
		return
	}
	var req voteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	comment, err := s.board.VoteComment(r.Context(), id, *req.IncVotes)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commentEnvelope{Comment: domainCommentToResponse(comment)})
}

// deleteComment handles DELETE /api/comments/{comment_id}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "comment_id")
	if !ok {
		return
	}

	if err := s.board.DeleteComment(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
