package service

import (
	"context"

	"miniblog/internal/model"
)

// Hand-rolled mocks: each test assigns only the functions it needs and the
// zero value behaves like an empty store.

type mockUserRepository struct {
	createFn                  func(ctx context.Context, user *model.User) error
	getByIDFn                 func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn           func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameOrEmailFn func(ctx context.Context, username, email string) (bool, error)
	updateProfileFn           func(ctx context.Context, id int64, bio string, isPrivate bool) (*model.User, error)
	listPublicIDsFn           func(ctx context.Context) ([]int64, error)

	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.existsByUsernameOrEmailFn != nil {
		return m.existsByUsernameOrEmailFn(ctx, username, email)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id int64, bio string, isPrivate bool) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, bio, isPrivate)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ListPublicIDs(ctx context.Context) ([]int64, error) {
	if m.listPublicIDsFn != nil {
		return m.listPublicIDsFn(ctx)
	}
	return []int64{}, nil
}

type mockPostRepository struct {
	createFn              func(ctx context.Context, post *model.Post) error
	getByIDFn             func(ctx context.Context, id int64) (*model.Post, error)
	updateFn              func(ctx context.Context, id int64, title, content string, isPublic bool) (*model.Post, error)
	deleteFn              func(ctx context.Context, id int64) error
	listByAuthorFn        func(ctx context.Context, authorID int64, limit int) ([]model.Post, error)
	listPublicByAuthorsFn func(ctx context.Context, authorIDs []int64, limit int) ([]model.Post, error)
	listFeedFn            func(ctx context.Context, publicAuthorIDs []int64, viewerID int64) ([]model.Post, error)
	countByAuthorFn       func(ctx context.Context, authorID int64) (int, error)

	updateCalls int
	deleteCalls int
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Update(ctx context.Context, id int64, title, content string, isPublic bool) (*model.Post, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title, content, isPublic)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return model.ErrPostNotFound
}

func (m *mockPostRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Post, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListPublicByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Post, error) {
	if m.listPublicByAuthorsFn != nil {
		return m.listPublicByAuthorsFn(ctx, authorIDs, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListFeed(ctx context.Context, publicAuthorIDs []int64, viewerID int64) ([]model.Post, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, publicAuthorIDs, viewerID)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	if m.countByAuthorFn != nil {
		return m.countByAuthorFn(ctx, authorID)
	}
	return 0, nil
}
