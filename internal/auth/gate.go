package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

// Gate is the console's static credential check. It guards the console, it is
// not an authorization system.
type Gate struct {
	email string
	hash  []byte
}

func NewGate(email, password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{email: email, hash: hash}, nil
}

func (g *Gate) Login(email, password string) (*UserContext, error) {
	if !strings.EqualFold(strings.TrimSpace(email), g.email) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &UserContext{Email: g.email, Role: "admin"}, nil
}
