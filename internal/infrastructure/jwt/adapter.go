package jwt

import (
	"fmt"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"github.com/mikiasgoitom/Lectern/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateSessionToken issues a session token carrying id, email and role.
func (a *JWTServiceAdapter) GenerateSessionToken(user *entity.User) (string, error) {
	return a.mgr.GenerateToken(user.ID, user.Email, string(user.Role))
}

// ParseSessionToken validates a session token and returns Claims.
func (a *JWTServiceAdapter) ParseSessionToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	role := entity.UserRole(customClaims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("session token carries unknown role %q", customClaims.Role)
	}
	return &entity.Claims{
		UserID:           customClaims.UserID,
		Email:            customClaims.Email,
		Role:             role,
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
