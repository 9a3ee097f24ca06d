package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"corpdesk/internal/auth"
	"corpdesk/internal/handler"
	appmiddleware "corpdesk/internal/middleware"
	"corpdesk/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	companyHandler *handler.CompanyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/verify-token", authHandler.VerifyToken)

	// Secured routes: bearer token gate plus per-request user resolution
	secured := api.Group("",
		appmiddleware.SessionGate(jwtService),
		appmiddleware.ResolveUser(userRepo),
	)

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/verify-email", authHandler.VerifyEmail)
	secured.POST("/auth/verify-mobile", authHandler.VerifyMobile)

	// User profile routes
	secured.GET("/users/profile", userHandler.GetProfile)
	secured.PUT("/users/profile", userHandler.UpdateProfile)
	secured.DELETE("/users/account", userHandler.DeleteAccount)

	// Company routes
	secured.GET("/company", companyHandler.GetCompany)
	secured.POST("/company", companyHandler.CreateCompany)
	secured.PUT("/company", companyHandler.UpdateCompany)
	secured.DELETE("/company", companyHandler.DeleteCompany)
	secured.POST("/company/upload/logo", companyHandler.UploadLogo)
	secured.POST("/company/upload/banner", companyHandler.UploadBanner)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
