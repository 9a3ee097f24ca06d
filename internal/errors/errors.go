package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrMobileTaken is returned when the mobile number is already registered.
	ErrMobileTaken = errors.New("user with this mobile number already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same value covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidIdentityToken is returned when the identity provider token fails
	// verification or does not match the supplied email.
	ErrInvalidIdentityToken = errors.New("invalid identity provider token")
	// ErrUpstreamIdentity is returned when the identity provider is unreachable
	// or rejects an identity creation.
	ErrUpstreamIdentity = errors.New("identity provider request failed")
	// ErrEmailAlreadyVerified is returned when re-verifying a verified email.
	ErrEmailAlreadyVerified = errors.New("email already verified")
	// ErrMobileAlreadyVerified is returned when re-verifying a verified mobile number.
	ErrMobileAlreadyVerified = errors.New("mobile number already verified")
	// ErrInvalidVerificationToken is returned for any provider-side failure during
	// mobile verification, regardless of the underlying cause.
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrCompanyNotFound is returned when no company profile exists for the owner.
	ErrCompanyNotFound = errors.New("company profile not found")
	// ErrCompanyExists is returned when the owner already has a company profile.
	ErrCompanyExists = errors.New("company already registered for this user")
	// ErrUploadFailed is returned when the media store rejects an upload.
	ErrUploadFailed = errors.New("failed to upload image")
)

// Development controls whether the diagnostic detail field is populated on
// unmapped errors. Set once at startup, never in production.
var Development bool

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Detail: e.Detail,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to a
// generic 500 so storage and provider internals never leak to callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrMobileTaken):
		return NewHTTPError(http.StatusConflict, ErrMobileTaken.Error(), "MOBILE_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidIdentityToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidIdentityToken.Error(), "INVALID_IDENTITY_TOKEN")
	case errors.Is(err, ErrUpstreamIdentity):
		return NewHTTPError(http.StatusBadGateway, "failed to create authentication user", "UPSTREAM_IDENTITY_FAILURE")
	case errors.Is(err, ErrEmailAlreadyVerified):
		return NewHTTPError(http.StatusBadRequest, ErrEmailAlreadyVerified.Error(), "ALREADY_VERIFIED")
	case errors.Is(err, ErrMobileAlreadyVerified):
		return NewHTTPError(http.StatusBadRequest, ErrMobileAlreadyVerified.Error(), "ALREADY_VERIFIED")
	case errors.Is(err, ErrInvalidVerificationToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidVerificationToken.Error(), "INVALID_VERIFICATION_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCompanyNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCompanyNotFound.Error(), "COMPANY_NOT_FOUND")
	case errors.Is(err, ErrCompanyExists):
		return NewHTTPError(http.StatusConflict, ErrCompanyExists.Error(), "COMPANY_EXISTS")
	case errors.Is(err, ErrUploadFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrUploadFailed.Error(), "UPLOAD_FAILED")
	default:
		httpErr := NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
		if Development && err != nil {
			httpErr.Detail = err.Error()
		}
		return httpErr
	}
}
