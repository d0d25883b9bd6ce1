package httpserver

import (
	"net/http"

	"github.com/helixir/news-board-service/internal/domain"
)

type createTopicRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// listTopics handles GET /api/topics.
func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.board.ListTopics(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	resp := listTopicsResponse{Topics: make([]topicResponse, len(topics))}
	for i, t := range topics {
		resp.Topics[i] = domainTopicToResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createTopic handles POST /api/topics.
func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	topic, err := s.board.CreateTopic(r.Context(), domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, topicEnvelope{Topic: domainTopicToResponse(topic)})
}
