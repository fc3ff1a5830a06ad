package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"miniblog/internal/model"
)

// postColumns selects post fields plus the author summary. The "author.*"
// aliases scan into the nested model.UserSummary.
const postColumns = `
	p.id, p.author_id, p.title, p.content, p.is_public, p.created_at, p.updated_at,
	u.id AS "author.id", u.username AS "author.username"
`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post. Caller fills AuthorID, Title, Content and
// IsPublic; ID and timestamps come back from the database.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (author_id, title, content, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		post.AuthorID,
		post.Title,
		post.Content,
		post.IsPublic,
	)

	if err := row.Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a single post with its author summary.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post model.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// Update rewrites the mutable post fields and refreshes updated_at.
func (r *postRepository) Update(ctx context.Context, id int64, title, content string, isPublic bool) (*model.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, content = $2, is_public = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, title, content, isPublic, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, model.ErrPostNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a post permanently. Ownership is checked by the caller.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// ListByAuthor returns the author's posts newest first.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`
	args := []interface{}{authorID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return posts, nil
}

// ListPublicByAuthors returns public posts by the given authors, newest first.
func (r *postRepository) ListPublicByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, nil
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.is_public AND p.author_id = ANY($1)
		ORDER BY p.created_at DESC, p.id DESC
	`
	args := []interface{}{pq.Array(authorIDs)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list public posts: %w", err)
	}

	return posts, nil
}

// ListFeed returns the union of public posts by the given authors and all of
// the viewer's own posts, newest first. The two branches can only overlap on
// the viewer's own public posts, which the OR keeps as a single row.
func (r *postRepository) ListFeed(ctx context.Context, publicAuthorIDs []int64, viewerID int64) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE (p.is_public AND p.author_id = ANY($1)) OR p.author_id = $2
		ORDER BY p.created_at DESC, p.id DESC
	`

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, pq.Array(publicAuthorIDs), viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}

	return posts, nil
}

// CountByAuthor returns the author's total post count.
func (r *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
