package handler_test

import (
	"context"
	"sort"
	"time"

	"miniblog/internal/model"
)

// In-memory repositories backing the end-to-end handler tests. They mirror
// the SQL semantics closely enough for routing and policy behavior.

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return model.ErrUserExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, bio string, isPrivate bool) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u.Bio = bio
	u.IsPrivate = isPrivate
	return u, nil
}

func (f *fakeUserRepo) ListPublicIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	for _, u := range f.users {
		if !u.IsPrivate {
			ids = append(ids, u.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakePostRepo struct {
	users  *fakeUserRepo
	posts  map[int64]*model.Post
	nextID int64
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{users: users, posts: make(map[int64]*model.Post), nextID: 1}
}

func (f *fakePostRepo) Create(ctx context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	f.posts[stored.ID] = &stored
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return f.withAuthor(p), nil
}

func (f *fakePostRepo) Update(ctx context.Context, id int64, title, content string, isPublic bool) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	p.Title = title
	p.Content = content
	p.IsPublic = isPublic
	p.UpdatedAt = time.Now()
	return f.withAuthor(p), nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Post, error) {
	return f.list(func(p *model.Post) bool { return p.AuthorID == authorID }, limit), nil
}

func (f *fakePostRepo) ListPublicByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Post, error) {
	allowed := make(map[int64]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	return f.list(func(p *model.Post) bool { return p.IsPublic && allowed[p.AuthorID] }, limit), nil
}

func (f *fakePostRepo) ListFeed(ctx context.Context, publicAuthorIDs []int64, viewerID int64) ([]model.Post, error) {
	allowed := make(map[int64]bool, len(publicAuthorIDs))
	for _, id := range publicAuthorIDs {
		allowed[id] = true
	}
	return f.list(func(p *model.Post) bool {
		return (p.IsPublic && allowed[p.AuthorID]) || p.AuthorID == viewerID
	}, 0), nil
}

func (f *fakePostRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	count := 0
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (f *fakePostRepo) list(keep func(*model.Post) bool, limit int) []model.Post {
	out := []model.Post{}
	for _, p := range f.posts {
		if keep(p) {
			out = append(out, *f.withAuthor(p))
		}
	}
	// newest first, same tiebreak as the SQL ordering
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakePostRepo) withAuthor(p *model.Post) *model.Post {
	copied := *p
	if u, ok := f.users.users[p.AuthorID]; ok {
		copied.Author = model.UserSummary{ID: u.ID, Username: u.Username}
	}
	return &copied
}
