package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helixir/news-board-service/internal/domain"
)

func TestVoteComment(t *testing.T) {
	t.Run("applies the delta", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			voteCommentFn: func(_ context.Context, id int64, delta int) (*domain.Comment, error) {
				return &domain.Comment{ID: id, ArticleID: 9, Votes: 16 + delta}, nil
			},
		})

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/comments/1", strings.NewReader(`{"inc_votes":3}`)))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
		var resp commentEnvelope
		decodeJSON(t, rr, &resp)
		if resp.Comment.CommentID != 1 || resp.Comment.Votes != 19 {
			t.Errorf("unexpected comment: %+v", resp.Comment)
		}
	})

	t.Run("missing inc_votes", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/comments/1", strings.NewReader(`{"votes":3}`)))
		expectMsg(t, rr, http.StatusBadRequest, "Bad request")
	})

	t.Run("malformed id", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/comments/abc", strings.NewReader(`{"inc_votes":3}`)))
		expectMsg(t, rr, http.StatusBadRequest, "Bad request")
	})

	t.Run("missing comment", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			voteCommentFn: func(_ context.Context, id int64, _ int) (*domain.Comment, error) {
				return nil, domain.NewResourceNotFoundError(domain.ResourceComments, domain.KeyCommentID, id)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/comments/999", strings.NewReader(`{"inc_votes":3}`)))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		var gotID int64
		srv := newTestHTTPServer(&mockBoard{
			deleteCommentFn: func(_ context.Context, id int64) error {
				gotID = id
				return nil
			},
		})

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodDelete, "/api/comments/7", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Errorf("expected an empty body, got %q", rr.Body.String())
		}
		if gotID != 7 {
			t.Errorf("expected comment 7, got %d", gotID)
		}
	})

	t.Run("missing", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			deleteCommentFn: func(_ context.Context, id int64) error {
				return domain.NewResourceNotFoundError(domain.ResourceComments, domain.KeyCommentID, id)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodDelete, "/api/comments/999", nil))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})
}
