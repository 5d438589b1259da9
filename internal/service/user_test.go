package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/service"
)

func TestUserService_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	user := registerUser(t, db, "Before Name", "profile@x.com")

	updated, err := users.UpdateProfile(ctx, user.ID, "After Name", "new bio")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "After Name" || updated.Bio != "new bio" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	got, err := users.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Name != "After Name" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	user := registerUser(t, db, "Valid Name", "validate@x.com")

	if _, err := users.UpdateProfile(ctx, user.ID, "x", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("short name: expected ErrInvalidInput, got %v", err)
	}

	longBio := strings.Repeat("b", 501)
	if _, err := users.UpdateProfile(ctx, user.ID, "Valid Name", longBio); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("long bio: expected ErrInvalidInput, got %v", err)
	}

	if _, err := users.UpdateProfile(ctx, 9999, "Valid Name", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	registerUser(t, db, "Dana Scully", "scully@x.com")
	registerUser(t, db, "Fox Mulder", "mulder@x.com")

	all, err := users.ListUsers(ctx, "", 0)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}

	matched, err := users.ListUsers(ctx, "mulder", 0)
	if err != nil {
		t.Fatalf("ListUsers search: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Fox Mulder" {
		t.Fatalf("expected Fox Mulder, got %+v", matched)
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())

	if _, err := users.GetProfile(context.Background(), 123); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
