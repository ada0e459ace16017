package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Me returns the caller's record, or nil when it no longer exists. A missing
// record is not an error here: the token was valid, the account is simply
// gone.
func (s *UserService) Me(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateMe(ctx context.Context, id int64, patch ports.UserPatch) error {
	fields, err := userPatchFields(patch.Name, patch.Surname, patch.Pseudo, patch.Email, patch.Password)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *UserService) DeleteMe(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

// Search runs the admin user search. Filter keys must pass the allowlist and
// at least one filter is required; neither condition ever reaches the
// repository when violated.
func (s *UserService) Search(ctx context.Context, filters map[string]string) ([]domain.User, error) {
	if err := domain.UserSearchFields.Check(mapKeys(filters)); err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return nil, domain.ErrEmptySearch
	}
	return s.repo.Search(ctx, filters)
}

func (s *UserService) Update(ctx context.Context, id int64, patch ports.AdminUserPatch) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	fields, err := userPatchFields(patch.Name, patch.Surname, patch.Pseudo, patch.Email, patch.Password)
	if err != nil {
		return err
	}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// userPatchFields collects the present fields of a patch into a column map,
// re-hashing the password when it is being changed.
func userPatchFields(name, surname, pseudo, email, password *string) (map[string]any, error) {
	fields := make(map[string]any)
	if name != nil {
		fields["name"] = *name
	}
	if surname != nil {
		fields["surname"] = *surname
	}
	if pseudo != nil {
		fields["pseudo"] = *pseudo
	}
	if email != nil {
		fields["email"] = *email
	}
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	return fields, nil
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
