package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// authentication
	ErrUnauthorized          = "AUTH_001"
	ErrInsufficientPrivilege = "AUTH_008"

	// validation
	ErrInvalidRequest   = "VAL_001"
	ErrNotFound         = "VAL_004"
	ErrMethodNotAllowed = "VAL_005"

	// server
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrUnavailable       = "SRV_004"
)

// Messages returned to clients. Details stay in the logs.
const (
	MessageUnauthorized   = "Unauthorized"
	MessageForbidden      = "Forbidden"
	MessageInternalServer = "Internal server error"
)

var httpStatusMap = map[string]int{
	ErrUnauthorized:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUnavailable:           http.StatusServiceUnavailable,
}

// APIError is the body of every error response
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status mapped to code, 500 when unknown
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes the standard error body for code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// WriteInternalError hides err from the client behind the generic message
func WriteInternalError(w http.ResponseWriter, code string) {
	WriteError(w, code, MessageInternalServer, nil)
}
