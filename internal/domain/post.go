package domain

import (
	"context"
	"time"
)

// Post is a short text entry published by a user.
type Post struct {
	ID        int64
	Content   string
	AuthorID  int64
	CreatedAt time.Time
}

// PostFilter narrows a post query. The zero value matches all posts.
type PostFilter struct {
	AuthorID int64 // 0 means any author
}

// PostRepository defines persistence operations for posts.
// List returns posts newest first (ties broken by descending id) and a
// successful Create is visible to an immediately following List or Count.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
	Delete(ctx context.Context, id int64) error
}
