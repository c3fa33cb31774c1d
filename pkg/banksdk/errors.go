package banksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okobobank/okobo/pkg/httpx"
)

// APIError represents a failed API call. It implements the error interface
// and is shared by the server (to write responses) and the SDK client (to
// surface them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the short error label (e.g. "Invalid credentials")
	Code string `json:"error"`

	// Message is the human-readable explanation
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer using the
// standard failure envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Success: false,
		Error:   e.Code,
		Message: e.Message,
	})
}

// parseAPIError reconstructs an APIError from a non-2xx response body. Bodies
// that are not the standard envelope still produce a usable error.
func parseAPIError(statusCode int, body []byte) *APIError {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return &APIError{
			StatusCode: statusCode,
			Code:       http.StatusText(statusCode),
			Message:    "unexpected response from server",
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       envelope.Error,
		Message:    envelope.Message,
	}
}

// Predefined errors matching the service's response vocabulary.
var (
	ErrAllFieldsRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "All fields are required",
		Message:    "Please fill in all required fields",
	}

	ErrMissingCredentials = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Missing credentials",
		Message:    "Email and password are required",
	}

	ErrPasswordTooShort = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Password too short",
		Message:    "Password must be at least 6 characters long",
	}

	ErrInvalidEmailFormat = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Invalid email format",
		Message:    "Please provide a valid email address",
	}

	ErrUserAlreadyExists = &APIError{
		StatusCode: http.StatusConflict,
		Code:       "User already exists",
		Message:    "An account with this email already exists",
	}

	ErrNoAccountFound = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       "Invalid credentials",
		Message:    "No account found with this email address",
	}

	ErrIncorrectPassword = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       "Invalid credentials",
		Message:    "Incorrect password. Please try again.",
	}

	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Invalid request",
		Message:    "Please check your input and try again",
	}

	ErrValidationFailed = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Validation failed",
		Message:    "Please check your input and try again",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       "Invalid token",
		Message:    "Your session is invalid or has expired. Please sign in again.",
	}

	ErrSignupServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       "Internal server error",
		Message:    "Something went wrong. Please try again later.",
	}

	ErrSigninServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       "Internal server error",
		Message:    "Unable to sign in. Please try again later.",
	}
)
