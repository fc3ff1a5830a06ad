// Package policy holds the visibility and ownership rules for posts and
// profiles. The functions here are pure: they look only at their arguments
// and perform no I/O, so every read/write boundary in the application can
// apply the same rules without duplicating them.
package policy

import "miniblog/internal/model"

// CanReadPost reports whether the viewer may read the given post.
// A post is readable by anyone when it is public and its author's account is
// not private. The owner can always read their own posts, whatever the flags
// say. viewerID is nil for anonymous requests.
func CanReadPost(viewerID *int64, post *model.Post, author *model.User) bool {
	if post.IsPublic && !author.IsPrivate {
		return true
	}
	return viewerID != nil && *viewerID == post.AuthorID
}

// CanReadProfile reports whether the viewer may see the given profile.
// Private accounts are visible only to themselves.
func CanReadProfile(viewerID *int64, profileUser *model.User) bool {
	if !profileUser.IsPrivate {
		return true
	}
	return viewerID != nil && *viewerID == profileUser.ID
}

// CanMutatePost reports whether the viewer may edit or delete the given
// post. Only the owner can; the same rule applies to update and delete.
func CanMutatePost(viewerID int64, post *model.Post) bool {
	return viewerID == post.AuthorID
}
