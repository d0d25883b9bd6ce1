package httpserver

import (
	"time"

	"github.com/helixir/news-board-service/internal/domain"
)

// Response types for JSON serialization.

type topicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type userResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// articleSummaryResponse is an article as it appears in a listing: no body.
type articleSummaryResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

type articleResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

type commentResponse struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	ArticleID int64     `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type listTopicsResponse struct {
	Topics []topicResponse `json:"topics"`
}

type topicEnvelope struct {
	Topic topicResponse `json:"topic"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type listArticlesResponse struct {
	TotalCount int                      `json:"total_count"`
	Articles   []articleSummaryResponse `json:"articles"`
}

type articleEnvelope struct {
	Article articleResponse `json:"article"`
}

type listCommentsResponse struct {
	Comments []commentResponse `json:"comments"`
}

type commentEnvelope struct {
	Comment commentResponse `json:"comment"`
}

// Converter functions

func domainTopicToResponse(t *domain.Topic) topicResponse {
	return topicResponse{Slug: t.Slug, Description: t.Description}
}

func domainUserToResponse(u *domain.User) userResponse {
	return userResponse{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

func domainArticleToSummary(a *domain.Article) articleSummaryResponse {
	return articleSummaryResponse{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func domainArticleToResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func domainCommentToResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		CommentID: c.ID,
		Body:      c.Body,
		Author:    c.Author,
		ArticleID: c.ArticleID,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}
