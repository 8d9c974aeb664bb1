package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
}

type staticRepository struct {
	account Account
}

// NewStaticRepository serves exactly one account. When passwordHash is empty
// the plain password is hashed once at construction.
func NewStaticRepository(username, password, passwordHash string) (Repository, error) {
	if passwordHash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		passwordHash = string(hashed)
	}
	return &staticRepository{account: Account{Username: username, PasswordHash: passwordHash}}, nil
}

func (r *staticRepository) FindByUsername(_ context.Context, username string) (*Account, error) {
	if username != r.account.Username {
		return nil, gorm.ErrRecordNotFound
	}
	a := r.account
	return &a, nil
}
