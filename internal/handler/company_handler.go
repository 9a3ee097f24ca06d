package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/middleware"
	"corpdesk/internal/service"
)

// CompanyHandler handles company profile endpoints.
type CompanyHandler struct {
	svc service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(svc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// CompanyRequest carries company profile fields. Omitted fields are left
// unchanged on update.
type CompanyRequest struct {
	CompanyName *string           `json:"company_name,omitempty" validate:"omitempty,min=1,max=255"`
	Address     *string           `json:"address,omitempty" validate:"omitempty,max=255"`
	City        *string           `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string           `json:"state,omitempty" validate:"omitempty,max=100"`
	Country     *string           `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode  *string           `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Website     *string           `json:"website,omitempty" validate:"omitempty,url"`
	Industry    *string           `json:"industry,omitempty" validate:"omitempty,max=100"`
	FoundedDate *string           `json:"founded_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string           `json:"description,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

func (r *CompanyRequest) toInput() service.CompanyInput {
	input := service.CompanyInput{
		CompanyName: r.CompanyName,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		PostalCode:  r.PostalCode,
		Website:     r.Website,
		Industry:    r.Industry,
		Description: r.Description,
		SocialLinks: r.SocialLinks,
	}
	if r.FoundedDate != nil {
		// Format already checked by the validator.
		if t, err := time.Parse("2006-01-02", *r.FoundedDate); err == nil {
			input.FoundedDate = &t
		}
	}
	return input
}

// GetCompany godoc
// @Summary Get own company profile
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CompanyProfile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company [get]
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	company, err := h.svc.Get(c.Request().Context(), current.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, company)
}

// CreateCompany godoc
// @Summary Register own company profile
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompanyRequest true "Company fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /company [post]
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.CompanyName == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "company_name is required")
	}

	company, err := h.svc.Register(c.Request().Context(), current.ID, req.toInput())
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "company registered successfully",
		"company": company,
	})
}

// UpdateCompany godoc
// @Summary Update own company profile
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompanyRequest true "Company fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company [put]
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.svc.Update(c.Request().Context(), current.ID, req.toInput())
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "company updated successfully",
		"company": company,
	})
}

// DeleteCompany godoc
// @Summary Delete own company profile
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company [delete]
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	if err := h.svc.Delete(c.Request().Context(), current.ID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "company deleted successfully",
	})
}

// UploadLogo godoc
// @Summary Upload company logo
// @Tags company
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param logo formData file true "Logo image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company/upload/logo [post]
func (h *CompanyHandler) UploadLogo(c echo.Context) error {
	return h.uploadAsset(c, "logo")
}

// UploadBanner godoc
// @Summary Upload company banner
// @Tags company
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param banner formData file true "Banner image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company/upload/banner [post]
func (h *CompanyHandler) UploadBanner(c echo.Context) error {
	return h.uploadAsset(c, "banner")
}

func (h *CompanyHandler) uploadAsset(c echo.Context, field string) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(apperrors.ErrUserNotFound)
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, field+" file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read uploaded file")
	}
	defer func(src multipart.File) { _ = src.Close() }(src)

	var company interface{}
	if field == "logo" {
		company, err = h.svc.UploadLogo(c.Request().Context(), current.ID, src)
	} else {
		company, err = h.svc.UploadBanner(c.Request().Context(), current.ID, src)
	}
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": field + " uploaded successfully",
		"company": company,
	})
}
