// Package service implements the application's business rules on top of the
// repository layer: post visibility, authorship checks, and the use-case
// services the HTTP handlers call into.
package service

import (
	"time"

	"blogicum/internal/models"
)

// IsVisible reports whether a post may be shown to the given viewer.
// A post is publicly visible when it is published, belongs to a published
// category, and its publication date has passed. The author always sees
// their own posts, scheduled and unpublished ones included.
//
// A post whose category reference is NULL (category deleted) is treated as
// not publicly visible.
func IsVisible(post *models.Post, viewerID uint, now time.Time) bool {
	if viewerID != 0 && viewerID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if post.Category == nil || !post.Category.IsPublished {
		return false
	}
	return !post.PubDate.After(now)
}

// CanEditPost reports whether the actor may update the post. Editing is
// reserved to the author; staff have no override here.
func CanEditPost(post *models.Post, actorID uint) bool {
	return actorID != 0 && actorID == post.AuthorID
}

// CanDeletePost reports whether the actor may delete the post. The author
// may always delete their own post; staff may delete any post.
func CanDeletePost(post *models.Post, actorID uint, isStaff bool) bool {
	if actorID != 0 && actorID == post.AuthorID {
		return true
	}
	return isStaff
}

// CanModifyComment reports whether the actor may update or delete the
// comment. Comments belong to their author alone.
func CanModifyComment(comment *models.Comment, actorID uint) bool {
	return actorID != 0 && actorID == comment.AuthorID
}
