// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUser = errors.New("user: invalid")
)

// Type distinguishes visitors from merchants.
type Type string

const (
	// TypeCliente is a visitor browsing the directory.
	TypeCliente Type = "cliente"
	// TypeEsercente is a merchant who can own shops.
	TypeEsercente Type = "esercente"
)

func (t Type) IsValid() bool {
	return t == TypeCliente || t == TypeEsercente
}

// User is the authenticated identity attached to a request.
// Shops reference users by email (Shop.OwnerID).
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Type  Type   `json:"type"`
}

func New(id, email string, t Type) (*User, error) {
	u := &User{
		ID:    strings.TrimSpace(id),
		Email: strings.TrimSpace(email),
		Type:  t,
	}
	if u.ID == "" || u.Email == "" || !t.IsValid() {
		return nil, ErrInvalidUser
	}
	return u, nil
}

// CanManageShops reports whether the user may create or edit shops.
func (u *User) CanManageShops() bool {
	return u != nil && u.Type == TypeEsercente
}
