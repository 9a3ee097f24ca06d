package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/middleware"
	"corpdesk/internal/service"
)

// UserHandler handles profile endpoints for the authenticated user.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest carries optional profile fields.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Gender   *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	MobileNo *string `json:"mobile_no,omitempty" validate:"omitempty,e164"`
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	user, err := h.svc.GetProfile(c.Request().Context(), current.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), current.ID, service.UpdateProfileInput{
		FullName: req.FullName,
		Gender:   req.Gender,
		MobileNo: req.MobileNo,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "profile updated successfully",
		"user":    user,
	})
}

// DeleteAccount godoc
// @Summary Delete own account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/account [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	if err := h.svc.DeleteAccount(c.Request().Context(), current.ID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "account deleted successfully",
	})
}
