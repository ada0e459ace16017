// Package token signs and verifies the bearer tokens the API issues at
// login. Tokens carry no exp claim; validity is a fixed window computed from
// the iat claim by the caller.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Window is how long a token stays valid after issuance. Absolute, not
// sliding: a token issued at T dies at T+Window no matter how often it is
// used.
const Window = 7 * 24 * time.Hour

// Claims is the signed payload proving a caller's identity and role.
type Claims struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Pseudo  string `json:"pseudo"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Expired reports whether the token's issuance window has elapsed at now,
// computed in whole seconds. A missing iat counts as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.IssuedAt == nil {
		return true
	}
	return now.Unix()-c.IssuedAt.Time.Unix() > int64(Window/time.Second)
}

// Manager signs and parses HS256 tokens with a shared secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Sign issues a token for the given identity with iat set to the current
// time.
func (m *Manager) Sign(id int64, email, name, surname, pseudo, role string) (string, error) {
	claims := &Claims{
		ID:      id,
		Email:   email,
		Name:    name,
		Surname: surname,
		Pseudo:  pseudo,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies the signature and returns the decoded claims. It does not
// check the issuance window; that is the caller's policy decision.
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
