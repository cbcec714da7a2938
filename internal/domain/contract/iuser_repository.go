package contract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a user. It returns ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user without the password hash.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user without the password hash.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByEmailWithPassword retrieves a user including the password hash, for credential checks.
	GetUserByEmailWithPassword(ctx context.Context, email string) (*entity.User, error)
}
