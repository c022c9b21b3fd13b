package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// Error codes for API error responses. Use these with WriteJSONError.
// Failed results carry their own codes (e.g. "General.NotFound") which are passed through.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
	ErrCodeEmailNotSent  = "email_not_sent"

	ErrCodePayloadTooLarge = "payload_too_large"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteResult maps a service result onto the envelope: failures use the result's status and error,
// successes its status and value. A result that is neither is written as a 500.
func WriteResult[T any](w http.ResponseWriter, res result.RepositoryResult[T]) {
	switch {
	case res.IsFailure():
		e := res.Err()
		WriteJSONError(w, res.StatusCode(), e.Code, e.Message)
	case res.IsSuccess():
		v, _ := res.Value()
		WriteJSONSuccess(w, res.StatusCode(), v)
	default:
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "unexpected result state")
	}
}
