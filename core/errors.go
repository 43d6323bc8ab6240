package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorCodeConfiguration  = "FRESHBOOKS_CONFIGURATION"
	ErrorCodeAuthentication = "FRESHBOOKS_AUTH_FAILED"
	ErrorCodeValidation     = "FRESHBOOKS_VALIDATION"
	ErrorCodeNotFound       = "FRESHBOOKS_NOT_FOUND"
	ErrorCodeAPI            = "FRESHBOOKS_API_ERROR"
	ErrorCodeDecode         = "FRESHBOOKS_DECODE"
)

// ConfigurationError reports a required setting missing before an operation
// that needs it. No network call happens once one is returned.
func ConfigurationError(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorCodeConfiguration)
}

// AuthenticationError reports a token exchange or identity fetch rejected by
// the service. Carries the upstream status when one exists.
func AuthenticationError(message string, status int) error {
	if status <= 0 {
		status = http.StatusUnauthorized
	}
	return goerrors.New(message, goerrors.CategoryAuth).
		WithCode(status).
		WithTextCode(ErrorCodeAuthentication)
}

// ValidationError reports an entity payload rejected with field-level errors.
func ValidationError(message string, status int, fields ...goerrors.FieldError) error {
	if status <= 0 {
		status = http.StatusUnprocessableEntity
	}
	return goerrors.NewValidation(message, fields...).
		WithCode(status).
		WithTextCode(ErrorCodeValidation)
}

func NotFoundError(message string) error {
	return goerrors.New(message, goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(ErrorCodeNotFound)
}

// APIError covers any other non-2xx answer from the service.
func APIError(message string, status int) error {
	if status <= 0 {
		status = http.StatusBadGateway
	}
	return goerrors.New(message, goerrors.CategoryExternal).
		WithCode(status).
		WithTextCode(ErrorCodeAPI)
}

// DecodeError reports a response body that does not match the expected shape.
func DecodeError(message string, cause error) error {
	if cause == nil {
		return goerrors.New(message, goerrors.CategoryExternal).
			WithCode(http.StatusBadGateway).
			WithTextCode(ErrorCodeDecode)
	}
	return goerrors.Wrap(cause, goerrors.CategoryExternal, message).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorCodeDecode)
}

func IsConfiguration(err error) bool { return hasTextCode(err, ErrorCodeConfiguration) }

func IsAuthentication(err error) bool { return hasTextCode(err, ErrorCodeAuthentication) }

func IsValidation(err error) bool { return hasTextCode(err, ErrorCodeValidation) }

func IsNotFound(err error) bool { return hasTextCode(err, ErrorCodeNotFound) }

func IsAPI(err error) bool { return hasTextCode(err, ErrorCodeAPI) }

func IsDecode(err error) bool { return hasTextCode(err, ErrorCodeDecode) }

// StatusCode reports the upstream HTTP status carried by an SDK error, or
// zero when the error is not one of ours.
func StatusCode(err error) int {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return 0
	}
	return rich.Code
}

// FieldErrors reports the field-level errors carried by a validation error.
func FieldErrors(err error) []goerrors.FieldError {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return nil
	}
	return rich.AllValidationErrors()
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(rich.TextCode), code)
}
