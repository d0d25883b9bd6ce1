package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/helixir/news-board-service/internal/domain"
)

func sampleArticle(id int64) *domain.Article {
	return &domain.Article{
		ID:            id,
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		Votes:         100,
		ArticleImgURL: domain.DefaultArticleImageURL,
		CreatedAt:     time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
		CommentCount:  11,
	}
}

func TestListArticles(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		var captured domain.ArticleListQuery
		srv := newTestHTTPServer(&mockBoard{
			listArticlesFn: func(_ context.Context, q domain.ArticleListQuery) (*domain.ArticlePage, error) {
				captured = q
				return &domain.ArticlePage{TotalCount: 13, Articles: []*domain.Article{sampleArticle(1)}}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/articles?topic=mitch&sort_by=votes&order=ASC&p=2&limit=5", nil)
		rr := serveHTTP(srv, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}

		want := domain.ArticleListQuery{Topic: "mitch", SortBy: "votes", Order: "ASC", Page: "2", Limit: "5"}
		if captured != want {
			t.Errorf("expected query %+v, got %+v", want, captured)
		}

		var resp listArticlesResponse
		decodeJSON(t, rr, &resp)
		if resp.TotalCount != 13 {
			t.Errorf("expected total_count 13, got %d", resp.TotalCount)
		}
		if len(resp.Articles) != 1 || resp.Articles[0].CommentCount != 11 {
			t.Errorf("unexpected articles: %+v", resp.Articles)
		}
	})

	t.Run("listing omits the body", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			listArticlesFn: func(context.Context, domain.ArticleListQuery) (*domain.ArticlePage, error) {
				return &domain.ArticlePage{TotalCount: 1, Articles: []*domain.Article{sampleArticle(1)}}, nil
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
		if strings.Contains(rr.Body.String(), `"body"`) {
			t.Errorf("listing must not include article bodies: %s", rr.Body.String())
		}
	})

	t.Run("empty topic listing is an empty array", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles?topic=paper", nil))
		if !strings.Contains(rr.Body.String(), `"articles":[]`) {
			t.Errorf("expected an empty articles array, got %s", rr.Body.String())
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			listArticlesFn: func(context.Context, domain.ArticleListQuery) (*domain.ArticlePage, error) {
				return nil, domain.NewValidationError("sort_by", "unsupported column")
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles?sort_by=body", nil))
		expectMsg(t, rr, http.StatusBadRequest, "Bad request")
	})

	t.Run("unknown topic", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			listArticlesFn: func(_ context.Context, q domain.ArticleListQuery) (*domain.ArticlePage, error) {
				return nil, domain.NewResourceNotFoundError(domain.ResourceTopics, domain.KeySlug, q.Topic)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles?topic=dogs", nil))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})
}

func TestGetArticle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			getArticleFn: func(_ context.Context, id int64) (*domain.Article, error) {
				return sampleArticle(id), nil
			},
		})

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/1", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var resp articleEnvelope
		decodeJSON(t, rr, &resp)
		if resp.Article.ArticleID != 1 || resp.Article.Body == "" || resp.Article.CommentCount != 11 {
			t.Errorf("unexpected article: %+v", resp.Article)
		}
	})

	t.Run("missing", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/999", nil))
		expectMsg(t, rr, http.StatusNotFound, "Article not found")
	})

	t.Run("malformed ids", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			getArticleFn: func(context.Context, int64) (*domain.Article, error) {
				t.Fatal("service must not be called for a malformed id")
				return nil, nil
			},
		})
		for _, id := range []string{"banana", "1.5", "99999999999", "-"} {
			rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/"+id, nil))
			expectMsg(t, rr, http.StatusBadRequest, "Bad request")
		}
	})
}

func TestCreateArticle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var captured domain.NewArticle
		srv := newTestHTTPServer(&mockBoard{
			createArticleFn: func(_ context.Context, a domain.NewArticle) (*domain.Article, error) {
				captured = a
				created := sampleArticle(14)
				created.Votes = 0
				created.CommentCount = 0
				return created, nil
			},
		})

		body := `{"title":"t","topic":"mitch","author":"butter_bridge","body":"b","article_img_url":"https://example.com/x.jpg"}`
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		if captured.ArticleImgURL != "https://example.com/x.jpg" || captured.Author != "butter_bridge" {
			t.Errorf("unexpected input passed to service: %+v", captured)
		}
		var resp articleEnvelope
		decodeJSON(t, rr, &resp)
		if resp.Article.ArticleID != 14 || resp.Article.CommentCount != 0 {
			t.Errorf("unexpected article: %+v", resp.Article)
		}
	})

	t.Run("bad bodies", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		for _, body := range []string{
			`{"topic":"mitch","author":"butter_bridge","body":"b"}`,
			`[]`,
		} {
			rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
			expectMsg(t, rr, http.StatusBadRequest, "Bad request")
		}
	})

	t.Run("image url is stored as given", func(t *testing.T) {
		var captured domain.NewArticle
		srv := newTestHTTPServer(&mockBoard{
			createArticleFn: func(_ context.Context, a domain.NewArticle) (*domain.Article, error) {
				captured = a
				return sampleArticle(15), nil
			},
		})
		body := `{"title":"t","topic":"mitch","author":"butter_bridge","body":"b","article_img_url":"cat.jpg"}`
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		if captured.ArticleImgURL != "cat.jpg" {
			t.Errorf("expected image url passed through, got %q", captured.ArticleImgURL)
		}
	})

	t.Run("unknown author", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			createArticleFn: func(context.Context, domain.NewArticle) (*domain.Article, error) {
				return nil, domain.NewReferenceError("article", "articles_author_fkey")
			},
		})
		body := `{"title":"t","topic":"mitch","author":"ghost","body":"b"}`
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
		expectMsg(t, rr, http.StatusNotFound, "Not found")
	})
}

func TestVoteArticle(t *testing.T) {
	t.Run("applies the delta", func(t *testing.T) {
		var gotID int64
		var gotDelta int
		srv := newTestHTTPServer(&mockBoard{
			voteArticleFn: func(_ context.Context, id int64, delta int) (*domain.Article, error) {
				gotID, gotDelta = id, delta
				a := sampleArticle(id)
				a.Votes += delta
				return a, nil
			},
		})

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/articles/1", strings.NewReader(`{"inc_votes":-100}`)))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
		if gotID != 1 || gotDelta != -100 {
			t.Errorf("expected vote(1, -100), got vote(%d, %d)", gotID, gotDelta)
		}
		var resp articleEnvelope
		decodeJSON(t, rr, &resp)
		if resp.Article.Votes != 0 {
			t.Errorf("expected 0 votes, got %d", resp.Article.Votes)
		}
	})

	t.Run("zero is a valid delta", func(t *testing.T) {
		called := false
		srv := newTestHTTPServer(&mockBoard{
			voteArticleFn: func(_ context.Context, id int64, _ int) (*domain.Article, error) {
				called = true
				return sampleArticle(id), nil
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/articles/1", strings.NewReader(`{"inc_votes":0}`)))
		if rr.Code != http.StatusOK || !called {
			t.Errorf("expected 200 and a service call, got %d (called=%v)", rr.Code, called)
		}
	})

	t.Run("bad bodies", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		for _, body := range []string{`{}`, `{"inc_votes":"ten"}`, `{"inc_votes":1.5}`, `{`} {
			rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/articles/1", strings.NewReader(body)))
			expectMsg(t, rr, http.StatusBadRequest, "Bad request")
		}
	})

	t.Run("missing article", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			voteArticleFn: func(_ context.Context, id int64, _ int) (*domain.Article, error) {
				return nil, domain.NewResourceNotFoundError(domain.ResourceArticles, domain.KeyArticleID, id)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPatch, "/api/articles/999", strings.NewReader(`{"inc_votes":1}`)))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})
}

func TestDeleteArticle(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodDelete, "/api/articles/1", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Errorf("expected an empty body, got %q", rr.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			deleteArticleFn: func(_ context.Context, id int64) error {
				return domain.NewResourceNotFoundError(domain.ResourceArticles, domain.KeyArticleID, id)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodDelete, "/api/articles/999", nil))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			deleteArticleFn: func(context.Context, int64) error {
				return errors.New("tx commit: conn closed")
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodDelete, "/api/articles/1", nil))
		expectMsg(t, rr, http.StatusInternalServerError, "Internal server error")
	})
}

func TestListArticleComments(t *testing.T) {
	t.Run("lists comments", func(t *testing.T) {
		var gotP, gotLimit string
		srv := newTestHTTPServer(&mockBoard{
			listArticleCommentsFn: func(_ context.Context, id int64, p, limit string) ([]*domain.Comment, error) {
				gotP, gotLimit = p, limit
				return []*domain.Comment{{ID: 5, ArticleID: id, Author: "icellusedkars", Body: "I hate streaming noses"}}, nil
			},
		})

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/1/comments?p=2&limit=3", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if gotP != "2" || gotLimit != "3" {
			t.Errorf("expected p=2 limit=3, got p=%q limit=%q", gotP, gotLimit)
		}
		var resp listCommentsResponse
		decodeJSON(t, rr, &resp)
		if len(resp.Comments) != 1 || resp.Comments[0].ArticleID != 1 {
			t.Errorf("unexpected comments: %+v", resp.Comments)
		}
	})

	t.Run("article without comments", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/2/comments", nil))
		if !strings.Contains(rr.Body.String(), `"comments":[]`) {
			t.Errorf("expected an empty comments array, got %s", rr.Body.String())
		}
	})

	t.Run("missing article", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			listArticleCommentsFn: func(_ context.Context, id int64, _, _ string) ([]*domain.Comment, error) {
				return nil, domain.NewResourceNotFoundError(domain.ResourceArticles, domain.KeyArticleID, id)
			},
		})
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/api/articles/999/comments", nil))
		expectMsg(t, rr, http.StatusNotFound, "Resource not found")
	})
}

func TestAddComment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var captured domain.NewComment
		srv := newTestHTTPServer(&mockBoard{
			addCommentFn: func(_ context.Context, articleID int64, c domain.NewComment) (*domain.Comment, error) {
				captured = c
				return &domain.Comment{ID: 19, ArticleID: articleID, Author: c.Username, Body: c.Body}, nil
			},
		})

		body := `{"username":"lurker","body":"first!"}`
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles/2/comments", strings.NewReader(body)))
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		if captured.Username != "lurker" || captured.Body != "first!" {
			t.Errorf("unexpected comment passed to service: %+v", captured)
		}
		var resp commentEnvelope
		decodeJSON(t, rr, &resp)
		if resp.Comment.CommentID != 19 || resp.Comment.Author != "lurker" {
			t.Errorf("unexpected comment: %+v", resp.Comment)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{})
		for _, body := range []string{`{"username":"lurker"}`, `{"body":"x"}`, `{}`} {
			rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles/2/comments", strings.NewReader(body)))
			expectMsg(t, rr, http.StatusBadRequest, "Bad request")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		srv := newTestHTTPServer(&mockBoard{
			addCommentFn: func(context.Context, int64, domain.NewComment) (*domain.Comment, error) {
				return nil, domain.NewReferenceError("comment", "comments_author_fkey")
			},
		})
		body := `{"username":"ghost","body":"boo"}`
		rr := serveHTTP(srv, httptest.NewRequest(http.MethodPost, "/api/articles/2/comments", strings.NewReader(body)))
		expectMsg(t, rr, http.StatusNotFound, "Not found")
	})
}
