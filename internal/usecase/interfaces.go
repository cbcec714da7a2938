package usecase

import (
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// JWTService defines the interface for session token operations.
type JWTService interface {
	GenerateSessionToken(user *entity.User) (string, error)
	ParseSessionToken(token string) (*entity.Claims, error)
}
