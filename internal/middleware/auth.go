package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"corpdesk/internal/auth"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

// Context keys set by the authentication gate.
const (
	ContextKeySession = "session"
	ContextKeyUser    = "current_user"
)

// SessionGate validates the bearer token on protected routes. A missing token
// yields 401; a token that fails signature or expiry checks yields 403.
func SessionGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKeySession,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Validate(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, auth.ErrTokenExpired) || errors.Is(err, auth.ErrTokenInvalid) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "invalid or expired token",
					Code:  "TOKEN_INVALID",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "access token is required",
				Code:  "TOKEN_MISSING",
			})
		},
	})
}

// ResolveUser re-resolves the token's user from the credential store on every
// call. A validly signed token whose user has since been deleted fails here:
// token validity is necessary but not sufficient.
func ResolveUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeySession).(*auth.SessionClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "access token is required",
					Code:  "TOKEN_MISSING",
				})
			}

			user, err := userRepo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "user no longer exists",
					Code:  "USER_GONE",
				})
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireEmailVerified rejects requests from users without a verified email.
func RequireEmailVerified() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.IsEmailVerified {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "please verify your email address to continue",
					Code:  "EMAIL_NOT_VERIFIED",
				})
			}
			return next(c)
		}
	}
}

// RequireMobileVerified rejects requests from users without a verified mobile.
func RequireMobileVerified() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.IsMobileVerified {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "please verify your mobile number to continue",
					Code:  "MOBILE_NOT_VERIFIED",
				})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the resolved user for the request, if any.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*model.User)
	return user, ok
}
