package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
	"github.com/Titan327/4CITE-backend/pkg/token"
)

// bcryptCost is pinned; existing hashes were generated at cost 10 and must
// keep verifying.
const bcryptCost = 10

// passwordSymbols is the fixed set of special characters a password may (and
// must, at least once) contain.
const passwordSymbols = "@$!%*?&"

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register validates the payload in a fixed order, short-circuiting on the
// first failure, then persists the new user with role "user" and active set.
// The created record is never returned to the caller.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if len(input.Name) > 50 {
		return domain.ErrNameTooLong
	}
	if len(input.Surname) > 20 {
		return domain.ErrSurnameTooLong
	}
	if len(input.Pseudo) > 20 {
		return domain.ErrPseudoTooLong
	}
	if len(input.Email) > 100 {
		return domain.ErrEmailTooLong
	}
	if len(input.Password) < 8 {
		return domain.ErrPasswordTooShort
	}
	if !passwordMeetsPolicy(input.Password) {
		return domain.ErrPasswordTooWeak
	}

	_, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        input.Email,
		Pseudo:       input.Pseudo,
		PasswordHash: string(hash),
		Name:         input.Name,
		Surname:      input.Surname,
		Role:         domain.RoleUser,
		Active:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return err
	}

	s.logger.Info().Str("email", user.Email).Msg("user registered")
	return nil
}

// Login verifies the credentials and issues a signed token. A missing record
// fails exactly like a wrong password so callers cannot enumerate emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Sign(user.ID, user.Email, user.Name, user.Surname, user.Pseudo, user.Role)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign token")
		return "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return signed, nil
}

// passwordMeetsPolicy requires at least one lowercase letter, one uppercase
// letter, one digit and one symbol from passwordSymbols, and refuses any
// character outside those classes.
func passwordMeetsPolicy(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

// hashPassword is shared with the user update paths, which must hash exactly
// like registration does.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
