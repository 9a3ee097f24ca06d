package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"corpdesk/internal/auth"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/middleware"
	"corpdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		jwtService:  jwtService,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=male female other"`
	MobileNo string `json:"mobile_no" validate:"required,e164"`
}

// LoginRequest represents a user login request. The firebase token is the
// provider-side half of the dual identity check.
type LoginRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	FirebaseToken string `json:"firebase_token" validate:"required"`
}

// VerifyMobileRequest carries the provider token for mobile verification.
type VerifyMobileRequest struct {
	FirebaseToken string `json:"firebase_token" validate:"required"`
}

// VerifyTokenRequest carries a provider token to decode.
type VerifyTokenRequest struct {
	FirebaseToken string `json:"firebase_token" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates the identity provider record and the local user, then issues a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, firebaseUID, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Gender:   req.Gender,
		MobileNo: req.MobileNo,
	})
	if err != nil {
		return respondError(err)
	}

	token, err := h.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "user registered successfully",
		"user":         user,
		"token":        token,
		"firebase_uid": firebaseUID,
	})
}

// Login godoc
// @Summary Login user
// @Description Dual identity check: verifies the Firebase ID token, then the local password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.FirebaseToken)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// VerifyToken godoc
// @Summary Verify a Firebase ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyTokenRequest true "Provider token"
// @Success 200 {object} identity.IDToken
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decoded, err := h.authService.VerifyProviderToken(c.Request().Context(), req.FirebaseToken)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, decoded)
}

// VerifyEmail godoc
// @Summary Mark the caller's email as verified
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	user, err := h.authService.VerifyEmail(c.Request().Context(), current.ID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "email verified successfully",
		"user":    user,
	})
}

// VerifyMobile godoc
// @Summary Mark the caller's mobile number as verified
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyMobileRequest true "Provider token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/verify-mobile [post]
func (h *AuthHandler) VerifyMobile(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	var req VerifyMobileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.VerifyMobile(c.Request().Context(), current.ID, req.FirebaseToken)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "mobile number verified successfully",
		"user":    user,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	user, err := h.userService.GetProfile(c.Request().Context(), current.ID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// respondError translates a domain error into the standard error envelope.
func respondError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
