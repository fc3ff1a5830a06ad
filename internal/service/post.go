package service

import (
	"context"
	"fmt"
	"strings"

	"miniblog/internal/model"
	"miniblog/internal/policy"
	"miniblog/internal/repository"
)

// PostService handles post CRUD with the visibility policy applied at every
// read and write boundary.
type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create validates and stores a new post for the author. IsPublic is only
// honored on explicit opt-in; an untouched flag leaves the post private.
func (s *PostService) Create(ctx context.Context, authorID int64, req *model.PostRequest) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		IsPublic: req.IsPublic,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post author: %w", err)
	}
	post.Author = model.UserSummary{ID: author.ID, Username: author.Username}

	return post, nil
}

// Get loads a post and applies the read-visibility policy for the viewer.
// viewerID is nil for anonymous requests. Returns ErrPostPrivate when the
// post itself is private and ErrUserPrivate when the author's account is,
// so the API can report which rule blocked the read.
func (s *PostService) Get(ctx context.Context, viewerID *int64, id int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post author: %w", err)
	}

	if !policy.CanReadPost(viewerID, post, author) {
		if !post.IsPublic {
			return nil, model.ErrPostPrivate
		}
		return nil, model.ErrUserPrivate
	}

	return post, nil
}

// GetForEdit loads a post for mutation by the viewer. Ownership is checked
// before validation so a non-owner learns nothing about field rules.
func (s *PostService) GetForEdit(ctx context.Context, viewerID, id int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutatePost(viewerID, post) {
		return nil, model.ErrNotPostOwner
	}

	return post, nil
}

// Update rewrites a post's fields. Only the owner may update.
func (s *PostService) Update(ctx context.Context, viewerID, id int64, req *model.PostRequest) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutatePost(viewerID, post) {
		return nil, model.ErrNotPostOwner
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	return s.posts.Update(ctx, id, title, content, req.IsPublic)
}

// Delete removes a post. Only the owner may delete.
func (s *PostService) Delete(ctx context.Context, viewerID, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanMutatePost(viewerID, post) {
		return model.ErrNotPostOwner
	}

	return s.posts.Delete(ctx, id)
}

// ListByAuthor returns the author's own posts, newest first. limit <= 0
// returns everything.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID, limit)
}

// ListPublicByAuthor returns only the author's public posts, newest first.
// Used on the public profile page for visitors who are not the owner.
func (s *PostService) ListPublicByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	return s.posts.ListPublicByAuthors(ctx, []int64{authorID}, 0)
}

// CountByAuthor returns the author's total post count.
func (s *PostService) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	return s.posts.CountByAuthor(ctx, authorID)
}

func validatePostFields(title, content string) error {
	var messages []string
	if title == "" {
		messages = append(messages, "Title is required")
	}
	if content == "" {
		messages = append(messages, "Content is required")
	}
	if len(messages) > 0 {
		return &model.ValidationError{Messages: messages}
	}
	return nil
}
