package httpserver

import (
	_ "embed"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxRequestBodySize limits request bodies to 1 MB.
const maxRequestBodySize = 1 << 20

//go:embed endpoints.json
var endpointsCatalog []byte

// getEndpoints handles GET /api with the static endpoint catalog.
func (s *Server) getEndpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]json.RawMessage{"endpoints": endpointsCatalog})
}

// decodeBody reads a size-limited JSON body into dst and runs its validate tags.
// It writes a 400 and returns false on any failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeMsg(w, http.StatusBadRequest, msgBadRequest)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeMsg(w, http.StatusBadRequest, msgBadRequest)
		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		writeMsg(w, http.StatusBadRequest, msgBadRequest)
		return false
	}
	return true
}

// parseID reads a numeric path parameter. Ids are 32-bit serials, so
// anything that does not fit is rejected like a non-numeric id.
func parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 32)
	if err != nil {
		writeMsg(w, http.StatusBadRequest, msgBadRequest)
		return 0, false
	}
	return id, true
}

// voteRequest is the JSON body of both PATCH vote endpoints.
type voteRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}
