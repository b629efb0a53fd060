package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrInvalidRequest       = "INVALID_REQUEST"
	ErrUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	ErrMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrUnauthorized         = "UNAUTHORIZED"
	ErrForbidden            = "FORBIDDEN"
	ErrNotFound             = "NOT_FOUND"
	ErrInternalServer       = "INTERNAL_SERVER_ERROR"

	// Uniqueness
	ErrDuplicateName = "DUPLICATE_NAME"

	// Nutrition lookup outcomes
	ErrNotRecognized       = "NOT_RECOGNIZED"
	ErrUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"

	// Meal-specific errors
	ErrDishReferenceInvalid = "DISH_REFERENCE_INVALID"

	// Diet filtering errors
	ErrDietNotFound           = "DIET_NOT_FOUND"
	ErrDietServiceUnavailable = "DIET_SERVICE_UNAVAILABLE"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
