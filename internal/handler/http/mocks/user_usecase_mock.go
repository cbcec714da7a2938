package mocks

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailAuthenticate   bool
	ShouldFailLoginWithOAuth bool

	// Return values
	MockUser   entity.User
	MockToken  string
	MockClaims entity.Claims

	// Captured arguments
	RegisteredAvatar *entity.StagedFile
	OAuthName        string
	OAuthEmail       string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			FullName: "test user",
			Email:    "test@example.com",
			Password: "hashed-secret",
			Avatar:   entity.Asset{PublicID: "test@example.com", SecureURL: "https://cdn.example.com/avatar.jpg"},
			Role:     entity.UserRoleUser,
		},
		MockToken: "mock_session_token",
		MockClaims: entity.Claims{
			UserID: "mock-user-id",
			Email:  "test@example.com",
			Role:   entity.UserRoleUser,
		},
	}
}

func (m *MockUserUsecase) sanitized() *entity.User {
	u := m.MockUser.Sanitized()
	return &u
}

func (m *MockUserUsecase) Register(ctx context.Context, fullName, email, password string, avatar *entity.StagedFile) (*entity.User, string, error) {
	m.RegisteredAvatar = avatar
	if fullName == "" || email == "" || password == "" {
		return nil, "", apperror.Validation("All fields are required")
	}
	if m.ShouldFailRegister {
		return nil, "", apperror.Conflict("User already exists with this email")
	}
	return m.sanitized(), m.MockToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperror.Validation("Email and password are required")
	}
	if m.ShouldFailLogin {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}
	return m.sanitized(), m.MockToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, token string) (*entity.Claims, error) {
	if m.ShouldFailAuthenticate || token != m.MockToken {
		return nil, apperror.Unauthorized("Invalid or expired session token")
	}
	claims := m.MockClaims
	return &claims, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, fullName, email string) (*entity.User, string, error) {
	m.OAuthName, m.OAuthEmail = fullName, email
	if m.ShouldFailLoginWithOAuth {
		return nil, "", apperror.Validation("OAuth provider returned an invalid email")
	}
	return m.sanitized(), m.MockToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID || userID != m.MockUser.ID {
		return nil, apperror.NotFound("User not found")
	}
	return m.sanitized(), nil
}
