package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserType string

const (
	UserTypeRegular UserType = "regular"
	UserTypePro     UserType = "pro"
)

// User - the main account entity. Favorites has set semantics and is
// changed only through the store's add/remove operations.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Type         UserType
	AvatarURL    string
	PasswordHash string
	Favorites    []uuid.UUID
	CreatedAt    time.Time
}

// Registration - input of the register use case.
type Registration struct {
	Email     string
	Name      string
	Password  string
	Type      UserType
	AvatarURL string
}

// NewUser validates the registration and hashes the password.
func NewUser(reg Registration) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidUser)
	}
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if reg.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidUser)
	}
	userType := reg.Type
	if userType == "" {
		userType = UserTypeRegular
	}
	if userType != UserTypeRegular && userType != UserTypePro {
		return nil, fmt.Errorf("%w: unknown user type %q", ErrInvalidUser, userType)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Type:         userType,
		AvatarURL:    reg.AvatarURL,
		PasswordHash: string(hashedPassword),
		Favorites:    []uuid.UUID{},
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword compares password with the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) HasFavorite(offerID uuid.UUID) bool {
	for _, id := range u.Favorites {
		if id == offerID {
			return true
		}
	}
	return false
}
