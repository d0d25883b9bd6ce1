package domain

// ResourceKind names a table the existence checker may look rows up in.
type ResourceKind string

const (
	ResourceArticles ResourceKind = "articles"
	ResourceComments ResourceKind = "comments"
	ResourceTopics   ResourceKind = "topics"
	ResourceUsers    ResourceKind = "users"
)

// Key columns each resource kind may be looked up by.
const (
	KeyArticleID = "article_id"
	KeyCommentID = "comment_id"
	KeySlug      = "slug"
	KeyUsername  = "username"
)

var resourceKeys = map[ResourceKind][]string{
	ResourceArticles: {KeyArticleID},
	ResourceComments: {KeyCommentID},
	ResourceTopics:   {KeySlug},
	ResourceUsers:    {KeyUsername},
}

// IsValid reports whether k is a known resource kind.
func (k ResourceKind) IsValid() bool {
	_, ok := resourceKeys[k]
	return ok
}

// HasKey reports whether field is an allowed lookup column for k.
func (k ResourceKind) HasKey(field string) bool {
	for _, f := range resourceKeys[k] {
		if f == field {
			return true
		}
	}
	return false
}
