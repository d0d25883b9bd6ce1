package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/helixir/news-board-service/internal/domain"
	"github.com/helixir/news-board-service/internal/observability"
)

// Client-facing error messages.
const (
	msgBadRequest    = "Bad request"
	msgInvalidURL    = "Invalid url"
	msgNotFound      = "Not found"
	msgResourceGone  = "Resource not found"
	msgAlreadyExists = "Value already exists"
	msgInternal      = "Internal server error"
)

// writeDomainError maps an error to a status code and {"msg"} body.
// Errors that do not map to a domain error are logged and answered with a
// generic 500 so driver details never reach the client.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	var (
		nf  *domain.NotFoundError
		rnf *domain.ResourceNotFoundError
		ref *domain.ReferenceError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeMsg(w, http.StatusBadRequest, msgBadRequest)
	case errors.As(err, &nf):
		writeMsg(w, http.StatusNotFound, entityNotFoundMessage(nf.Entity))
	case errors.As(err, &rnf):
		writeMsg(w, http.StatusNotFound, msgResourceGone)
	case errors.As(err, &ref):
		writeMsg(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrNotFound):
		writeMsg(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeMsg(w, http.StatusNotFound, msgAlreadyExists)
	default:
		logger := observability.WithContext(s.logger, r.Context())
		logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeMsg(w, http.StatusInternalServerError, msgInternal)
	}
}

// entityNotFoundMessage renders "Article not found" for entity "article".
func entityNotFoundMessage(entity string) string {
	if entity == "" {
		return msgNotFound
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " not found"
}
