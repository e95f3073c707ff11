package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when registering with an email already in use.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on login failure. The message is the
	// same for an unknown email and a wrong password so callers cannot probe
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSweetNotFound is returned when a referenced sweet is absent.
	ErrSweetNotFound = errors.New("sweet not found")
	// ErrInsufficientStock is returned when a purchase cannot be satisfied.
	// A missing sweet and a short stock deliberately share this error so the
	// response does not reveal which one happened.
	ErrInsufficientStock = errors.New("insufficient stock or sweet not found")
	// ErrInvalidQuantity is returned when a quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrCartItemNotFound is returned when a cart row is absent.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartEmpty is returned when checking out an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
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
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so internal details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSweetNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SWEET_NOT_FOUND")
	case errors.Is(err, ErrInsufficientStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_STOCK")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrCartItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case errors.Is(err, ErrCartEmpty):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_EMPTY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
