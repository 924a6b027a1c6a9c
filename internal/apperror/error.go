package apperror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound   = NewAppError("not found")
	ErrForbidden  = NewAppError("forbidden")
	ErrDecodeBody = NewAppError("failed to decode request body")
)

// AppError is a user-facing failure. Key, when set, names the
// localization bundle entry clients resolve to a display string;
// Message is the untranslated fallback.
type AppError struct {
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`

	status int
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

// NewLocalizedError attaches a localization key to the failure so the
// client can show the notice in the active language.
func NewLocalizedError(message, key string) *AppError {
	return &AppError{
		Message: message,
		Key:     key,
	}
}

// NewLocalizedNotFound is a localized variant of ErrNotFound. A miss is
// a legitimate empty result for lookups, so it keeps the 404 contract
// instead of being reported as a failure.
func NewLocalizedNotFound(message, key string) *AppError {
	return &AppError{
		Message: message,
		Key:     key,
		status:  http.StatusNotFound,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("the maximum length of the %s field is %s characters", err.Field(), err.Param()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param()))
		case "numeric":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must contain only digits", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

func internalError() *AppError {
	return NewAppError("internal error")
}
