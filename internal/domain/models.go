// Package domain provides domain models and business logic for the News Board Service.
package domain

import (
	"strings"
	"time"
)

// DefaultArticleImageURL is stored when an article is created without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a category articles are filed under. Slug is the primary key.
type Topic struct {
	Slug        string
	Description string
}

// User is a registered author of articles and comments.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}

// Article is a single article with its live comment count.
// Body is empty for articles loaded by a listing query.
type Article struct {
	ID            int64
	Title         string
	Topic         string
	Author        string
	Body          string
	Votes         int
	ArticleImgURL string
	CreatedAt     time.Time
	CommentCount  int
}

// Comment is a comment posted under an article.
type Comment struct {
	ID        int64
	Body      string
	Author    string
	ArticleID int64
	Votes     int
	CreatedAt time.Time
}

// NewArticle carries the client-supplied fields of an article to create.
type NewArticle struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	ArticleImgURL string
}

// Validate checks the required fields and fills in the image default.
func (a *NewArticle) Validate() error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return NewValidationError("title", "is required")
	case strings.TrimSpace(a.Topic) == "":
		return NewValidationError("topic", "is required")
	case strings.TrimSpace(a.Author) == "":
		return NewValidationError("author", "is required")
	case strings.TrimSpace(a.Body) == "":
		return NewValidationError("body", "is required")
	}
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = DefaultArticleImageURL
	}
	return nil
}

// NewComment carries the client-supplied fields of a comment to create.
type NewComment struct {
	Username string
	Body     string
}

// Validate checks the required fields.
func (c NewComment) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return NewValidationError("username", "is required")
	}
	if strings.TrimSpace(c.Body) == "" {
		return NewValidationError("body", "is required")
	}
	return nil
}

// Validate checks that both topic fields are present.
func (t Topic) Validate() error {
	if strings.TrimSpace(t.Slug) == "" {
		return NewValidationError("slug", "is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return NewValidationError("description", "is required")
	}
	return nil
}

// ArticlePage is one page of an article listing together with the number
// of articles matching the filter across all pages.
type ArticlePage struct {
	TotalCount int
	Articles   []*Article
}
