package httpserver

import (
	"net/http"

	"github.com/helixir/news-board-service/internal/domain"
)

type createArticleRequest struct {
	Title         string `json:"title" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Body          string `json:"body" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

type addCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// listArticles handles GET /api/articles.
func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := s.board.ListArticles(r.Context(), domain.ArticleListQuery{
		Topic:  q.Get("topic"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Page:   q.Get("p"),
		Limit:  q.Get("limit"),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	resp := listArticlesResponse{
		TotalCount: page.TotalCount,
		Articles:   make([]articleSummaryResponse, len(page.Articles)),
	}
	for i, a := range page.Articles {
		resp.Articles[i] = domainArticleToSummary(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createArticle handles POST /api/articles.
func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	article, err := s.board.CreateArticle(r.Context(), domain.NewArticle{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, articleEnvelope{Article: domainArticleToResponse(article)})
}

// getArticle handles GET /api/articles/{article_id}.
func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "article_id")
	if !ok {
		return
	}

	article, err := s.board.GetArticle(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articleEnvelope{Article: domainArticleToResponse(article)})
}

// voteArticle handles PATCH /api/articles/{article_id}.
func (s *Server) voteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "article_id")
	if !ok {
		return
	}
	var req voteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	article, err := s.board.VoteArticle(r.Context(), id, *req.IncVotes)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, articleEnvelope{Article: domainArticleToResponse(article)})
}

// deleteArticle handles DELETE /api/articles/{article_id}.
// Success is a 200 with an empty body.
func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "article_id")
	if !ok {
		return
	}

	if err := s.board.DeleteArticle(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// listArticleComments handles GET /api/articles/{article_id}/comments.
func (s *Server) listArticleComments(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "article_id")
	if !ok {
		return
	}

	q := r.URL.Query()
	comments, err := s.board.ListArticleComments(r.Context(), id, q.Get("p"), q.Get("limit"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	resp := listCommentsResponse{Comments: make([]commentResponse, len(comments))}
	for i, c := range comments {
		resp.Comments[i] = domainCommentToResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// addComment handles POST /api/articles/{article_id}/comments.
func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "article_id")
	if !ok {
		return
	}
	var req addCommentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	comment, err := s.board.AddComment(r.Context(), id, domain.NewComment{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, commentEnvelope{Comment: domainCommentToResponse(comment)})
}
