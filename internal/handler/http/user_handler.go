package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	GetProfile(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	cookie      CookieConfig
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, cookie CookieConfig) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		cookie:      cookie,
	}
}

// Register handles user registration (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindRequest(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Register(c.Request.Context(), req.FullName, req.Email, req.Password, middleware.StagedFile(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	setSessionCookie(c, h.cookie, token)
	SuccessHandler(c, http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: "User registered successfully",
		User:    dto.ToUserResponse(*user),
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindRequest(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	setSessionCookie(c, h.cookie, token)
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User logged in successfully",
		User:    dto.ToUserResponse(*user),
	})
}

// Logout clears the session cookie. It does not require a session.
func (h *UserHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.cookie)
	MessageHandler(c, http.StatusOK, "User logged out successfully")
}

// GetProfile returns the account of the current session.
func (h *UserHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		ErrorHandler(c, apperror.Unauthorized("You must be logged in to access this resource"))
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User details",
		User:    dto.ToUserResponse(*user),
	})
}
