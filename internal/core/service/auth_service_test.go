package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
	"github.com/Titan327/4CITE-backend/pkg/token"
)

// stubUserRepo is a map-backed fake shared by the auth and user service
// tests. It records calls so tests can assert persistence was never reached.
type stubUserRepo struct {
	users        map[int64]*domain.User
	nextID       int64
	searchCalled bool
	lastFilters  map[string]string
	lastUpdate   map[string]any
	searchResult []domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Search(_ context.Context, filters map[string]string) ([]domain.User, error) {
	r.searchCalled = true
	r.lastFilters = filters
	return r.searchResult, nil
}

func (r *stubUserRepo) UpdateFields(_ context.Context, id int64, fields map[string]any) error {
	r.lastUpdate = fields
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "John",
		Surname:  "Doe",
		Pseudo:   "johndoe",
		Email:    "john@x.com",
		Password: "Password1@",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

	if err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.users))
	}
	stored := repo.users[1]
	if stored.PasswordHash == "Password1@" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Password1@")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
	if !stored.Active {
		t.Fatalf("expected new user to be active")
	}
}

func TestAuthService_Register_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ports.RegisterInput)
		wantErr error
	}{
		{"name too long", func(in *ports.RegisterInput) { in.Name = strings.Repeat("a", 51) }, domain.ErrNameTooLong},
		{"surname too long", func(in *ports.RegisterInput) { in.Surname = strings.Repeat("a", 21) }, domain.ErrSurnameTooLong},
		{"pseudo too long", func(in *ports.RegisterInput) { in.Pseudo = strings.Repeat("a", 21) }, domain.ErrPseudoTooLong},
		{"email too long", func(in *ports.RegisterInput) { in.Email = strings.Repeat("a", 95) + "@x.com" }, domain.ErrEmailTooLong},
		{"password too short", func(in *ports.RegisterInput) { in.Password = "Pa1@" }, domain.ErrPasswordTooShort},
		// name check runs first even when several fields are invalid
		{"fixed order", func(in *ports.RegisterInput) {
			in.Name = strings.Repeat("a", 51)
			in.Password = "short"
		}, domain.ErrNameTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubUserRepo()
			svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

			input := validRegisterInput()
			tc.mutate(&input)

			if err := svc.Register(context.Background(), input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(repo.users) != 0 {
				t.Fatalf("no record should persist on validation failure")
			}
		})
	}
}

func TestAuthService_Register_PasswordComposition(t *testing.T) {
	// Each password misses exactly one required class; all must fail with
	// the composition error, never a different one.
	cases := []struct {
		name     string
		password string
	}{
		{"no lowercase", "PASSWORD1@"},
		{"no uppercase", "password1@"},
		{"no digit", "Password@@"},
		{"no symbol", "Password11"},
		{"forbidden character", "Password1@ "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubUserRepo()
			svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

			input := validRegisterInput()
			input.Password = tc.password

			if err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrPasswordTooWeak) {
				t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

	if err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := svc.Register(context.Background(), validRegisterInput()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

	if err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, err := svc.Login(context.Background(), "john@x.com", "Password1@")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := token.NewManager("secret").Parse(signed)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.ID != 1 || claims.Email != "john@x.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Name != "John" || claims.Surname != "Doe" || claims.Pseudo != "johndoe" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.IssuedAt == nil {
		t.Fatalf("iat missing from token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

	_ = svc.Register(context.Background(), validRegisterInput())
	if _, err := svc.Login(context.Background(), "john@x.com", "Wrong1@pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret"), zerolog.Nop())

	// Must fail identically to a wrong password, before any hash compare.
	if _, err := svc.Login(context.Background(), "ghost@x.com", "Password1@"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
