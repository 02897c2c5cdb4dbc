package common

import "time"

// APIError is the generic return type for any Failure
// during endpoint operations
type APIError struct {
	RequestID string `json:"requestid"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewAPIError creates a new instance of the `APIError` which will be returned
// to the client if an operation fails
func NewAPIError(reqID, message, details string) *APIError {
	return &APIError{
		RequestID: reqID,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().Unix(),
	}
}
