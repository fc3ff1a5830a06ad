package repository

import (
	"context"

	"miniblog/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, bio string, isPrivate bool) (*model.User, error)
	// ListPublicIDs returns the IDs of all non-private accounts. Feed and
	// public-timeline queries take this list instead of embedding the
	// privacy filter in their own SQL.
	ListPublicIDs(ctx context.Context) ([]int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, title, content string, isPublic bool) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	// ListByAuthor returns the author's posts newest first. limit <= 0
	// means no limit.
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Post, error)
	// ListPublicByAuthors returns public posts by the given authors,
	// newest first. limit <= 0 means no limit.
	ListPublicByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Post, error)
	// ListFeed returns the union of public posts by the given authors and
	// all posts by the viewer, newest first.
	ListFeed(ctx context.Context, publicAuthorIDs []int64, viewerID int64) ([]model.Post, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}
