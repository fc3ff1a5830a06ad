package service

import (
	"context"
	"fmt"

	"miniblog/internal/model"
	"miniblog/internal/repository"
)

// HomeRecentLimit caps the recent-posts list on the landing page.
const HomeRecentLimit = 5

// FeedService assembles the post lists that span multiple authors: the
// logged-in feed and the public timeline.
type FeedService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewFeedService(posts repository.PostRepository, users repository.UserRepository) *FeedService {
	return &FeedService{posts: posts, users: users}
}

// Feed returns the viewer's feed: the union of public posts by non-private
// authors and all of the viewer's own posts, newest first. The two sets can
// only overlap on the viewer's own public posts, which stay a single row.
func (s *FeedService) Feed(ctx context.Context, viewerID int64) ([]model.Post, error) {
	publicIDs, err := s.users.ListPublicIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public authors: %w", err)
	}

	return s.posts.ListFeed(ctx, publicIDs, viewerID)
}

// PublicTimeline returns public posts by non-private authors, newest first.
// Serves the anonymous landing page and GET /api/posts. limit <= 0 returns
// everything.
func (s *FeedService) PublicTimeline(ctx context.Context, limit int) ([]model.Post, error) {
	publicIDs, err := s.users.ListPublicIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public authors: %w", err)
	}

	return s.posts.ListPublicByAuthors(ctx, publicIDs, limit)
}
