package service

// Event payloads, serialized into domain.Event.Payload.

type topicPayload struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type articlePayload struct {
	ArticleID int64  `json:"article_id"`
	Title     string `json:"title"`
	Topic     string `json:"topic"`
	Author    string `json:"author"`
}

type commentPayload struct {
	CommentID int64  `json:"comment_id"`
	ArticleID int64  `json:"article_id"`
	Author    string `json:"author"`
}

type votePayload struct {
	ID    int64 `json:"id"`
	Delta int   `json:"inc_votes"`
	Votes int   `json:"votes"`
}

type deletePayload struct {
	ID int64 `json:"id"`
}
