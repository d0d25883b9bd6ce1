package domain

import (
	"strconv"
	"strings"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// SortColumn is a column an article listing can be ordered by.
// Only the values declared below are accepted.
type SortColumn string

const (
	SortByTitle        SortColumn = "title"
	SortByCreatedAt    SortColumn = "created_at"
	SortByAuthor       SortColumn = "author"
	SortByArticleID    SortColumn = "article_id"
	SortByVotes        SortColumn = "votes"
	SortByCommentCount SortColumn = "comment_count"
)

// DefaultSortColumn is used when the client does not pick one.
const DefaultSortColumn = SortByCreatedAt

var sortColumns = map[SortColumn]struct{}{
	SortByTitle:        {},
	SortByCreatedAt:    {},
	SortByAuthor:       {},
	SortByArticleID:    {},
	SortByVotes:        {},
	SortByCommentCount: {},
}

// IsValid reports whether c is one of the declared sort columns.
func (c SortColumn) IsValid() bool {
	_, ok := sortColumns[c]
	return ok
}

// SortOrder is the direction of an article listing.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// DefaultSortOrder is used when the client does not pick one.
const DefaultSortOrder = SortDesc

// IsValid reports whether o is ASC or DESC.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Page is a validated 1-based page number and page size.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ArticleListQuery holds the raw query-string values of an article listing.
// Empty strings mean the parameter was not supplied.
type ArticleListQuery struct {
	Topic  string
	SortBy string
	Order  string
	Page   string
	Limit  string
}

// ArticleListParams is an ArticleListQuery that passed validation.
type ArticleListParams struct {
	Topic  string
	SortBy SortColumn
	Order  SortOrder
	Page   Page
}

// ParseArticleListQuery validates q against the sort allow-lists and the
// pagination rules. Values are never coerced: anything outside the allowed
// sets is a ValidationError.
func ParseArticleListQuery(q ArticleListQuery) (ArticleListParams, error) {
	params := ArticleListParams{
		Topic:  q.Topic,
		SortBy: DefaultSortColumn,
		Order:  DefaultSortOrder,
	}

	if q.SortBy != "" {
		col := SortColumn(q.SortBy)
		if !col.IsValid() {
			return ArticleListParams{}, NewValidationError("sort_by", "unsupported sort column")
		}
		params.SortBy = col
	}

	if q.Order != "" {
		order := SortOrder(strings.ToUpper(q.Order))
		if !order.IsValid() {
			return ArticleListParams{}, NewValidationError("order", "must be ASC or DESC")
		}
		params.Order = order
	}

	page, err := ParsePage(q.Page, q.Limit)
	if err != nil {
		return ArticleListParams{}, err
	}
	params.Page = page

	return params, nil
}

// ParsePage validates the p and limit query parameters.
func ParsePage(p, limit string) (Page, error) {
	page := Page{Number: DefaultPage, Limit: DefaultLimit}

	if p != "" {
		n, err := parsePositiveInt(p)
		if err != nil {
			return Page{}, NewValidationError("p", "must be a positive integer")
		}
		page.Number = n
	}

	if limit != "" {
		n, err := parsePositiveInt(limit)
		if err != nil {
			return Page{}, NewValidationError("limit", "must be a positive integer")
		}
		page.Limit = n
	}

	return page, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}
