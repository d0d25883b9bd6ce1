package repository

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/helixir/news-board-service/internal/domain"
)

// sortExpressions maps each allowed sort column to the SQL expression it
// orders by. comment_count is the aggregate alias, the rest are article columns.
var sortExpressions = map[domain.SortColumn]string{
	domain.SortByTitle:        "a.title",
	domain.SortByCreatedAt:    "a.created_at",
	domain.SortByAuthor:       "a.author",
	domain.SortByArticleID:    "a.article_id",
	domain.SortByVotes:        "a.votes",
	domain.SortByCommentCount: "comment_count",
}

const articleSummaryColumns = "a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url"

const articleDetailColumns = "a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url"

const commentColumns = "comment_id, body, author, article_id, votes, created_at"

// buildExistsQuery returns the lookup used by the existence checker. kind and
// field must already be validated against the resource allow-list; they are
// quoted as identifiers and the value is always bound as $1.
func buildExistsQuery(kind domain.ResourceKind, field string) string {
	return fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1 LIMIT 1",
		pq.QuoteIdentifier(string(kind)), pq.QuoteIdentifier(field))
}

// buildArticleListQueries builds the count and page queries for an article
// listing. Both share the same WHERE clause and argument list. Sort column,
// direction and paging come from validated params and are the only values
// written into the SQL text.
func buildArticleListQueries(params domain.ArticleListParams) (countSQL, pageSQL string, args []any) {
	var where string
	if params.Topic != "" {
		where = " WHERE a.topic = $1"
		args = append(args, params.Topic)
	}

	countSQL = "SELECT CAST(COUNT(*) AS INTEGER) AS total_count FROM articles AS a" + where

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(articleSummaryColumns)
	b.WriteString(", CAST(COUNT(c.comment_id) AS INTEGER) AS comment_count")
	b.WriteString(" FROM articles AS a LEFT JOIN comments AS c ON a.article_id = c.article_id")
	b.WriteString(where)
	b.WriteString(" GROUP BY a.article_id")
	b.WriteString(" ORDER BY ")
	b.WriteString(orderByClause(params.SortBy, params.Order))
	fmt.Fprintf(&b, " LIMIT %d OFFSET %d", params.Page.Limit, params.Page.Offset())

	return countSQL, b.String(), args
}

// orderByClause renders the sort expression and direction, with article_id
// as a tie-breaker so pages never overlap when the sort key repeats.
func orderByClause(col domain.SortColumn, order domain.SortOrder) string {
	expr, ok := sortExpressions[col]
	if !ok {
		expr = sortExpressions[domain.DefaultSortColumn]
	}
	if !order.IsValid() {
		order = domain.DefaultSortOrder
	}

	clause := expr + " " + string(order)
	if col != domain.SortByArticleID {
		clause += ", a.article_id " + string(order)
	}
	return clause
}

// buildArticleCommentsQuery builds the newest-first comment page for one article.
func buildArticleCommentsQuery(articleID int64, page domain.Page) (string, []any) {
	query := fmt.Sprintf("SELECT %s FROM comments WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC LIMIT %d OFFSET %d",
		commentColumns, page.Limit, page.Offset())
	return query, []any{articleID}
}

// articleByIDQuery fetches one article with its derived comment count.
var articleByIDQuery = "SELECT " + articleDetailColumns +
	", CAST(COUNT(c.comment_id) AS INTEGER) AS comment_count" +
	" FROM articles AS a LEFT JOIN comments AS c ON a.article_id = c.article_id" +
	" WHERE a.article_id = $1 GROUP BY a.article_id"

// articleVoteQuery adjusts votes and returns the updated article with its
// comment count in one round trip. No row comes back for an unknown id.
const articleVoteQuery = `
	WITH updated AS (
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	)
	SELECT u.article_id, u.title, u.topic, u.author, u.body, u.created_at, u.votes, u.article_img_url,
		(SELECT CAST(COUNT(*) AS INTEGER) FROM comments AS c WHERE c.article_id = u.article_id) AS comment_count
	FROM updated AS u`
