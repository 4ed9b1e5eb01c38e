package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingName     = errors.New("name is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// User is a back-office account. The password hash is opaque here; hashing
// happens before construction.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	if !role.isValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructUser(id uuid.UUID, email, name, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r Role) isValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

func (u *User) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	u.email = email
	return nil
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
