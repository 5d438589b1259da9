package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmcvie/minifeed/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PostAuthor is the author profile denormalized into a feed post for
// immediate display.
type PostAuthor struct {
	ID    int64
	Name  string
	Email string
	Bio   string
}

// FeedPost is a post with its author resolved.
type FeedPost struct {
	ID        int64
	Content   string
	Author    PostAuthor
	CreatedAt time.Time
}

// FeedPage is one page of the feed plus its pagination metadata.
type FeedPage struct {
	Posts      []FeedPost
	Pagination domain.Pagination
}

// FeedService orchestrates pagination, author denormalization, and
// ownership-gated mutation over the post store.
type FeedService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(posts domain.PostRepository, users domain.UserRepository) *FeedService {
	return &FeedService{posts: posts, users: users}
}

// CreatePost validates and persists a post, returning it with the author
// resolved. Content is trimmed before the length checks.
func (s *FeedService) CreatePost(ctx context.Context, authorID int64, content string) (*FeedPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > domain.MaxPostLength {
		return nil, domain.ErrContentTooLong
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	post := &domain.Post{
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	fp := toFeedPost(*post, author)
	return &fp, nil
}

// ListFeed returns one page of the global feed, newest first. Non-positive
// page or limit fall back to the defaults; a page past the end returns an
// empty list with correct pagination flags.
func (s *FeedService) ListFeed(ctx context.Context, page, limit int) (*FeedPage, error) {
	page, limit = normalizePaging(page, limit)
	return s.loadPage(ctx, domain.PostFilter{}, page, limit)
}

// ListByAuthor returns one page of a single author's posts plus the author
// profile. Fails with ErrNotFound when the author does not exist.
func (s *FeedService) ListByAuthor(ctx context.Context, authorID int64, page, limit int) (*FeedPage, *domain.User, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, nil, err
	}

	page, limit = normalizePaging(page, limit)
	feedPage, err := s.loadPage(ctx, domain.PostFilter{AuthorID: authorID}, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return feedPage, author, nil
}

// DeletePost removes a post if and only if the requester authored it.
// A missing post is ErrNotFound even when the requester would not have
// owned it; an existing post owned by someone else is ErrForbidden.
func (s *FeedService) DeletePost(ctx context.Context, requesterID, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return domain.ErrForbidden
	}

	return s.posts.Delete(ctx, postID)
}

func (s *FeedService) loadPage(ctx context.Context, filter domain.PostFilter, page, limit int) (*FeedPage, error) {
	offset := (page - 1) * limit

	posts, err := s.posts.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	feedPosts, err := s.resolveAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &FeedPage{
		Posts:      feedPosts,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// resolveAuthors performs the read-time join of posts to their author
// profiles via the user store. Each distinct author is looked up once.
func (s *FeedService) resolveAuthors(ctx context.Context, posts []domain.Post) ([]FeedPost, error) {
	authors := make(map[int64]*domain.User)
	for _, p := range posts {
		if _, ok := authors[p.AuthorID]; ok {
			continue
		}
		user, err := s.users.GetByID(ctx, p.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("resolve author %d: %w", p.AuthorID, err)
		}
		authors[p.AuthorID] = user
	}

	feedPosts := make([]FeedPost, len(posts))
	for i, p := range posts {
		feedPosts[i] = toFeedPost(p, authors[p.AuthorID])
	}
	return feedPosts, nil
}

func toFeedPost(p domain.Post, author *domain.User) FeedPost {
	return FeedPost{
		ID:      p.ID,
		Content: p.Content,
		Author: PostAuthor{
			ID:    author.ID,
			Name:  author.Name,
			Email: author.Email,
			Bio:   author.Bio,
		},
		CreatedAt: p.CreatedAt,
	}
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
