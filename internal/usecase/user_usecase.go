package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// Constants for common error messages
const (
	errAllFieldsRequired    = "All fields are required"
	errEmailPasswordMissing = "Email and password are required"
	errUserExists           = "User already exists with this email"
	errInvalidCredentials   = "Invalid email or password"
	errInvalidSession       = "Invalid or expired session token"
	errAvatarUpload         = "File not uploaded, please try again"
)

const maxFullNameRunes = 50

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	assets          remoteAssets
	hasher          contract.IHasher
	jwtService      JWTService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	assetStore contract.IAssetStore,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		assets:          newRemoteAssets(assetStore, cfg, logger),
		hasher:          hasher,
		jwtService:      jwtService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, fullName, email, password string, avatar *entity.StagedFile) (*entity.User, string, error) {
	fullName = strings.ToLower(strings.TrimSpace(fullName))
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" || password == "" {
		return nil, "", apperror.Validation(errAllFieldsRequired)
	}
	if err := uc.validator.ValidateRegistration(fullName, email, password); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", apperror.Internal(err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict(errUserExists)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperror.Internal(err)
	}

	now := time.Now()
	user := &entity.User{
		ID:       uc.uuidGenerator.NewUUID(),
		FullName: fullName,
		Email:    email,
		Password: hashedPassword,
		Avatar: entity.Asset{
			PublicID:  email,
			SecureURL: uc.config.GetDefaultAvatarURL(),
		},
		Role:      entity.DefaultRole(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var uploaded *entity.Asset
	if avatar != nil {
		uploaded, err = uc.assets.upload(ctx, avatar, contract.UploadOptions{
			Folder: uc.config.GetAssetFolder() + "/avatars",
			Kind:   entity.AssetKindImage,
		})
		if err != nil {
			uc.logger.Warnf("avatar upload failed for %s: %v", email, err)
			return nil, "", apperror.Upload(errAvatarUpload, err)
		}
		user.Avatar = *uploaded
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if uploaded != nil {
			uc.assets.discard(ctx, uploaded.PublicID, entity.AssetKindImage)
		}
		if errors.Is(err, contract.ErrDuplicateEmail) {
			return nil, "", apperror.Conflict(errUserExists)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", apperror.Internal(err)
	}

	token, err := uc.jwtService.GenerateSessionToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate session token: %v", err)
		return nil, "", apperror.Internal(err)
	}

	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

// Login checks credentials and issues a session token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperror.Validation(errEmailPasswordMissing)
	}

	user, err := uc.userRepo.GetUserByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", apperror.Unauthorized(errInvalidCredentials)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", apperror.Internal(err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.Password); err != nil {
		return nil, "", apperror.Unauthorized(errInvalidCredentials)
	}

	token, err := uc.jwtService.GenerateSessionToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate session token: %v", err)
		return nil, "", apperror.Internal(err)
	}

	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

// Authenticate verifies a session token. Expired and malformed tokens are treated alike.
func (uc *UserUsecase) Authenticate(ctx context.Context, token string) (*entity.Claims, error) {
	claims, err := uc.jwtService.ParseSessionToken(token)
	if err != nil {
		uc.logger.Debugf("session token rejected: %v", err)
		return nil, apperror.Unauthorized(errInvalidSession)
	}
	return claims, nil
}

// LoginWithOAuth signs in a user verified by an external identity provider,
// creating the account on first use.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, fullName, email string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if uc.validator.ValidateEmail(email) != nil {
		return nil, "", apperror.Validation("OAuth provider returned an invalid email")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to look up oauth user: %v", err)
		return nil, "", apperror.Internal(err)
	}

	if user == nil {
		user, err = uc.createOAuthUser(ctx, fullName, email)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := uc.jwtService.GenerateSessionToken(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

// createOAuthUser stores a first-time OAuth user. A concurrent first login that
// wins the unique email index is picked up instead of failing.
func (uc *UserUsecase) createOAuthUser(ctx context.Context, fullName, email string) (*entity.User, error) {
	// The account has no usable password until a reset flow exists.
	secret, err := uc.randomGenerator.GenerateRandomToken(32)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hashedPassword, err := uc.hasher.HashPassword(secret)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	now := time.Now()
	user := &entity.User{
		ID:        uc.uuidGenerator.NewUUID(),
		FullName:  uc.oauthFullName(fullName, email),
		Email:     email,
		Password:  hashedPassword,
		Avatar:    entity.Asset{PublicID: email, SecureURL: uc.config.GetDefaultAvatarURL()},
		Role:      entity.DefaultRole(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.userRepo.CreateUser(ctx, user)
	if errors.Is(err, contract.ErrDuplicateEmail) {
		existing, lookupErr := uc.userRepo.GetUserByEmail(ctx, email)
		if lookupErr != nil {
			uc.logger.Errorf("failed to load concurrently created oauth user: %v", lookupErr)
			return nil, apperror.Internal(lookupErr)
		}
		return existing, nil
	}
	if err != nil {
		uc.logger.Errorf("failed to create oauth user: %v", err)
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// oauthFullName picks the provider name, then the email local part, then the
// email itself, whichever first satisfies the account name rules.
func (uc *UserUsecase) oauthFullName(fullName, email string) string {
	local, _, _ := strings.Cut(email, "@")
	for _, candidate := range []string{fullName, local, email} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if uc.validator.ValidateFullName(candidate) == nil {
			return candidate
		}
	}
	runes := []rune(email)
	if len(runes) > maxFullNameRunes {
		runes = runes[:maxFullNameRunes]
	}
	return string(runes)
}

// GetUserByID returns the stored user.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}
