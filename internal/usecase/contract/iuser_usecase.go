package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	// Register creates an account and returns it together with a session token.
	Register(ctx context.Context, fullName, email, password string, avatar *entity.StagedFile) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Authenticate resolves a session token to its identity.
	Authenticate(ctx context.Context, token string) (*entity.Claims, error)
	LoginWithOAuth(ctx context.Context, fullName, email string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
