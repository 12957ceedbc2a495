package model

import "time"

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	MediaKeys []string  `json:"media_keys"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID              string    `json:"id"`
	PostID          string    `json:"post_id"`
	Body            string    `json:"body"`
	AuthorID        string    `json:"author_id"`
	ParentCommentID *string   `json:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"`
}
