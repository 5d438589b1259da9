package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: "Author", Email: email, PasswordHash: "pw"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func TestPostRepository_Create(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")

	post := &domain.Post{Content: "hello world", AuthorID: author.ID}
	if err := db.Posts().Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.ID == 0 {
		t.Fatal("expected post ID to be set after create")
	}
	if post.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	// A successful insert is immediately visible to a following query.
	got, err := db.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Content != "hello world" || got.AuthorID != author.ID {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Posts().GetByID(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")

	var ids []int64
	for i := 0; i < 5; i++ {
		post := &domain.Post{Content: fmt.Sprintf("post %d", i), AuthorID: author.ID}
		if err := db.Posts().Create(ctx, post); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		ids = append(ids, post.ID)
	}

	posts, err := db.Posts().List(ctx, domain.PostFilter{}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}

	// Posts created in the same instant share created_at, so the id
	// tie-break must still yield newest first.
	for i, p := range posts {
		want := ids[len(ids)-1-i]
		if p.ID != want {
			t.Fatalf("position %d: expected post %d, got %d", i, want, p.ID)
		}
	}
}

func TestPostRepository_List_LimitOffset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")

	for i := 0; i < 7; i++ {
		post := &domain.Post{Content: fmt.Sprintf("post %d", i), AuthorID: author.ID}
		if err := db.Posts().Create(ctx, post); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	first, err := db.Posts().List(ctx, domain.PostFilter{}, 3, 0)
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	second, err := db.Posts().List(ctx, domain.PostFilter{}, 3, 3)
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	third, err := db.Posts().List(ctx, domain.PostFilter{}, 3, 6)
	if err != nil {
		t.Fatalf("List page 3: %v", err)
	}

	if len(first) != 3 || len(second) != 3 || len(third) != 1 {
		t.Fatalf("expected 3/3/1 posts, got %d/%d/%d", len(first), len(second), len(third))
	}
	if first[0].ID == second[0].ID {
		t.Fatal("pages must not overlap")
	}

	beyond, err := db.Posts().List(ctx, domain.PostFilter{}, 3, 9)
	if err != nil {
		t.Fatalf("List beyond end: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(beyond))
	}
}

func TestPostRepository_List_FilterByAuthor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	for i := 0; i < 3; i++ {
		if err := db.Posts().Create(ctx, &domain.Post{Content: "from alice", AuthorID: alice.ID}); err != nil {
			t.Fatalf("Create alice: %v", err)
		}
	}
	if err := db.Posts().Create(ctx, &domain.Post{Content: "from bob", AuthorID: bob.ID}); err != nil {
		t.Fatalf("Create bob: %v", err)
	}

	posts, err := db.Posts().List(ctx, domain.PostFilter{AuthorID: alice.ID}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 alice posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != alice.ID {
			t.Fatalf("unexpected author %d", p.AuthorID)
		}
	}

	count, err := db.Posts().Count(ctx, domain.PostFilter{AuthorID: bob.ID})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 bob post, got %d", count)
	}

	total, err := db.Posts().Count(ctx, domain.PostFilter{})
	if err != nil {
		t.Fatalf("Count all: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 posts total, got %d", total)
	}
}

func TestPostRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")

	post := &domain.Post{Content: "doomed", AuthorID: author.ID}
	if err := db.Posts().Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Posts().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := db.Posts().GetByID(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := db.Posts().Delete(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}
