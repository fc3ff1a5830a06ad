package model

import (
	"errors"
	"strings"
	"time"
)

// Post represents a blog post with its author summary.
type Post struct {
	ID        int64       `db:"id" json:"id"`
	AuthorID  int64       `db:"author_id" json:"-"`
	Title     string      `db:"title" json:"title"`
	Content   string      `db:"content" json:"content"`
	IsPublic  bool        `db:"is_public" json:"isPublic"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
	Author    UserSummary `db:"author" json:"author"`
}

// PostRequest carries the post form fields for create and edit.
// IsPublic defaults to false: a post is private unless explicitly opted in.
type PostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"isPublic"`
}

// Post errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")
	ErrPostPrivate  = errors.New("post is private")
	ErrUserPrivate  = errors.New("user account is private")
)

// ValidationError collects user-correctable form problems. The messages are
// shown inline on the originating form or returned in the API error envelope.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
