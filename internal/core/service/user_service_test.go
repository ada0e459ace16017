package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserService_Me_MissingRecordIsNil(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user, err := svc.Me(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestUserService_Me_ReturnsRecord(t *testing.T) {
	repo := newStubUserRepo()
	repo.users[7] = &domain.User{ID: 7, Email: "a@x.com", Pseudo: "a"}
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Me(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_UpdateMe_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	patch := ports.UserPatch{Password: strPtr("NewPass1@"), Pseudo: strPtr("newpseudo")}
	if err := svc.UpdateMe(context.Background(), 1, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash, ok := repo.lastUpdate["password"].(string)
	if !ok {
		t.Fatalf("password field missing from update: %v", repo.lastUpdate)
	}
	if hash == "NewPass1@" {
		t.Fatalf("password was stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPass1@")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if repo.lastUpdate["pseudo"] != "newpseudo" {
		t.Fatalf("pseudo not applied: %v", repo.lastUpdate)
	}
}

func TestUserService_UpdateMe_EmptyPatchIsNoop(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.UpdateMe(context.Background(), 1, ports.UserPatch{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdate != nil {
		t.Fatalf("repository should not be called for an empty patch")
	}
}

func TestUserService_DeleteMe_MissingRecordIgnored(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if err := svc.DeleteMe(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserService_Search_RejectsUnknownField(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Search(context.Background(), map[string]string{"password": "x"})
	if !errors.Is(err, domain.ErrFieldNotAllowed) {
		t.Fatalf("expected ErrFieldNotAllowed, got %v", err)
	}
	if repo.searchCalled {
		t.Fatalf("repository must not be reached on a rejected filter")
	}
}

func TestUserService_Search_RequiresAFilter(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Search(context.Background(), map[string]string{})
	if !errors.Is(err, domain.ErrEmptySearch) {
		t.Fatalf("expected ErrEmptySearch, got %v", err)
	}
	if repo.searchCalled {
		t.Fatalf("repository must not be reached on an empty search")
	}
}

func TestUserService_Search_PassesFilters(t *testing.T) {
	repo := newStubUserRepo()
	repo.searchResult = []domain.User{{ID: 1, Pseudo: "a"}}
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.Search(context.Background(), map[string]string{"pseudo": "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].Pseudo != "a" {
		t.Fatalf("unexpected result: %+v", users)
	}
	if repo.lastFilters["pseudo"] != "a" {
		t.Fatalf("filters not forwarded: %v", repo.lastFilters)
	}
}

func TestUserService_Update_AppliesFalseActive(t *testing.T) {
	repo := newStubUserRepo()
	repo.users[3] = &domain.User{ID: 3, Email: "b@x.com"}
	svc := NewUserService(repo, zerolog.Nop())

	patch := ports.AdminUserPatch{Active: boolPtr(false), Role: strPtr(domain.RoleAdmin)}
	if err := svc.Update(context.Background(), 3, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// false must reach the update map; a present falsy value is not "absent"
	if v, ok := repo.lastUpdate["active"].(bool); !ok || v {
		t.Fatalf("active=false not applied: %v", repo.lastUpdate)
	}
	if repo.lastUpdate["role"] != domain.RoleAdmin {
		t.Fatalf("role not applied: %v", repo.lastUpdate)
	}
}

func TestUserService_Update_MissingRecord(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	err := svc.Update(context.Background(), 99, ports.AdminUserPatch{Active: boolPtr(true)})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_MissingRecord(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_RemovesRecord(t *testing.T) {
	repo := newStubUserRepo()
	repo.users[3] = &domain.User{ID: 3}
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.users[3]; ok {
		t.Fatalf("record still present after delete")
	}
}
