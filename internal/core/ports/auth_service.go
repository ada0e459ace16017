package ports

import "context"

type RegisterInput struct {
	Name     string
	Surname  string
	Pseudo   string
	Email    string
	Password string
}

// AuthService is the identity issuer: credential creation and token
// issuance.
type AuthService interface {
	// Register validates the payload, hashes the password and persists a new
	// user with role "user". It never returns the created record.
	Register(ctx context.Context, input RegisterInput) error

	// Login verifies the credentials and returns a signed token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, error)
}
