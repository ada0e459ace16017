package ports

import (
	"context"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

// UserPatch is a presence-aware partial update: nil means "field absent from
// the payload", a non-nil pointer applies the value even when it is falsy.
type UserPatch struct {
	Name     *string
	Surname  *string
	Pseudo   *string
	Email    *string
	Password *string
}

// AdminUserPatch extends UserPatch with the fields only admins may touch.
type AdminUserPatch struct {
	UserPatch
	Role   *string
	Active *bool
}

type UserService interface {
	// Me returns the caller's record, or nil without error when the record
	// no longer exists.
	Me(ctx context.Context, id int64) (*domain.User, error)

	// UpdateMe applies a self-service partial update. Passwords are
	// re-hashed before persistence.
	UpdateMe(ctx context.Context, id int64, patch UserPatch) error

	// DeleteMe removes the caller's record. Deleting an already-absent
	// record is not an error.
	DeleteMe(ctx context.Context, id int64) error

	// Search returns users matching the equality filters. Admin only; the
	// filter keys must pass the user search allowlist and must not be empty.
	Search(ctx context.Context, filters map[string]string) ([]domain.User, error)

	// Update applies an admin partial update to an arbitrary user.
	Update(ctx context.Context, id int64, patch AdminUserPatch) error

	// Delete removes an arbitrary user. Fails when the record is absent.
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Search(ctx context.Context, filters map[string]string) ([]domain.User, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}
