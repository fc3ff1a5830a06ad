package policy

import (
	"testing"

	"miniblog/internal/model"
)

func ptr(id int64) *int64 { return &id }

func TestCanReadPost(t *testing.T) {
	owner := &model.User{ID: 1}
	privateOwner := &model.User{ID: 2, IsPrivate: true}

	tests := []struct {
		name     string
		viewerID *int64
		post     *model.Post
		author   *model.User
		want     bool
	}{
		{
			name:     "anonymous reads public post by public author",
			viewerID: nil,
			post:     &model.Post{AuthorID: 1, IsPublic: true},
			author:   owner,
			want:     true,
		},
		{
			name:     "anonymous blocked from private post",
			viewerID: nil,
			post:     &model.Post{AuthorID: 1, IsPublic: false},
			author:   owner,
			want:     false,
		},
		{
			name:     "anonymous blocked from public post by private author",
			viewerID: nil,
			post:     &model.Post{AuthorID: 2, IsPublic: true},
			author:   privateOwner,
			want:     false,
		},
		{
			name:     "stranger blocked from private post",
			viewerID: ptr(99),
			post:     &model.Post{AuthorID: 1, IsPublic: false},
			author:   owner,
			want:     false,
		},
		{
			name:     "stranger blocked from public post by private author",
			viewerID: ptr(99),
			post:     &model.Post{AuthorID: 2, IsPublic: true},
			author:   privateOwner,
			want:     false,
		},
		{
			name:     "owner reads own private post",
			viewerID: ptr(1),
			post:     &model.Post{AuthorID: 1, IsPublic: false},
			author:   owner,
			want:     true,
		},
		{
			name:     "private owner reads own public post",
			viewerID: ptr(2),
			post:     &model.Post{AuthorID: 2, IsPublic: true},
			author:   privateOwner,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanReadPost(tt.viewerID, tt.post, tt.author)
			if got != tt.want {
				t.Errorf("CanReadPost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanReadProfile(t *testing.T) {
	public := &model.User{ID: 1}
	private := &model.User{ID: 2, IsPrivate: true}

	if !CanReadProfile(nil, public) {
		t.Error("anonymous should read a public profile")
	}
	if CanReadProfile(nil, private) {
		t.Error("anonymous should not read a private profile")
	}
	if CanReadProfile(ptr(99), private) {
		t.Error("stranger should not read a private profile")
	}
	if !CanReadProfile(ptr(2), private) {
		t.Error("owner should read their own private profile")
	}
}

func TestCanMutatePost(t *testing.T) {
	post := &model.Post{ID: 10, AuthorID: 1}

	if !CanMutatePost(1, post) {
		t.Error("owner should be allowed to mutate")
	}
	if CanMutatePost(2, post) {
		t.Error("non-owner should not be allowed to mutate")
	}
}
