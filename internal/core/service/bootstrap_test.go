package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

func TestBootstrap_CreatesDefaultAdminOnEmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	hasher := &fakeHasher{}
	b := NewBootstrap(repo, hasher, "admin", "admin", zerolog.Nop())

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("role = %q, want %q", admin.Role, domain.RoleAdmin)
	}
	if !admin.RequiresPasswordChange {
		t.Fatalf("forced-rotation flag not set")
	}
	if admin.PasswordHash == "" || admin.PasswordHash == "admin" {
		t.Fatalf("password not hashed: %q", admin.PasswordHash)
	}
	if !hasher.Verify("admin", admin.PasswordHash) {
		t.Fatalf("stored hash does not verify default password")
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	hasher := &fakeHasher{}
	b := NewBootstrap(repo, hasher, "admin", "admin", zerolog.Nop())

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := cloneUser(repo.users["admin"])

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", repo.saves)
	}
	second := repo.users["admin"]
	if first.PasswordHash != second.PasswordHash || !first.UpdatedAt.Equal(second.UpdatedAt) {
		t.Fatalf("second run modified the admin user")
	}
}

func TestBootstrap_SkipsNonEmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	hasher := &fakeHasher{}
	seedUser(t, repo, hasher, "owner", "pw")

	b := NewBootstrap(repo, hasher, "admin", "admin", zerolog.Nop())
	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, ok := repo.users["admin"]; ok {
		t.Fatalf("bootstrap created admin in a non-empty store")
	}
}
