package models

// APIError represents a standardized error response format for the API.
// @Description APIError carries an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements error so API clients can return decoded bodies directly.
func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Predefined application-specific error codes
const (
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeFetchFailed         = "FETCH_FAILED" // a resource collection could not be retrieved

	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeInvalidJSON      = "INVALID_JSON"
	ErrorCodeInvalidEnumValue = "INVALID_ENUM_VALUE" // kind, step, status

	ErrorCodeNotFound            = "NOT_FOUND"
	ErrorCodeWorkspaceNotFound   = "WORKSPACE_NOT_FOUND"
	ErrorCodeSourceNotFound      = "SOURCE_NOT_FOUND"
	ErrorCodeDestinationNotFound = "DESTINATION_NOT_FOUND"
	ErrorCodeForeignKeyNotFound  = "FOREIGN_KEY_NOT_FOUND"

	ErrorCodeConflict      = "CONFLICT_ERROR"
	ErrorCodeDuplicateName = "DUPLICATE_NAME"
)
