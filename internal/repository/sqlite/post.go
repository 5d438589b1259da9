package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmcvie/minifeed/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (content, author_id, created_at) VALUES (?, ?, ?)`,
		post.Content, post.AuthorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, content, author_id, created_at FROM posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.Content, &post.AuthorID, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

// List returns posts newest first. Ties on created_at are broken by
// descending id so the ordering is stable for a fixed dataset.
func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	where, args := buildPostFilter(filter)
	query := `SELECT id, content, author_id, created_at FROM posts` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context, filter domain.PostFilter) (int, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	where, args := buildPostFilter(filter)
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildPostFilter(filter domain.PostFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.AuthorID != 0 {
		clauses = append(clauses, "author_id = ?")
		args = append(args, filter.AuthorID)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
