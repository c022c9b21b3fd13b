package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Validator is implemented by request bodies that check their own fields.
// Validate returns one message per violated rule; empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeRequest reads at most maxBytes of JSON from r into dest and validates it when dest is a Validator.
// Oversized bodies are answered with 413 payload_too_large; malformed, unknown-field, trailing-data and
// invalid bodies with 400 bad_request. It returns false once a response has been written.
func DecodeRequest(w http.ResponseWriter, r *http.Request, dest any, maxBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dest)
	if err == nil && dec.More() {
		err = errors.New("request body must contain a single JSON object")
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
				fmt.Sprintf("Request body must not exceed %d bytes.", tooLarge.Limit))
			return false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}

	if v, ok := dest.(Validator); ok {
		if msgs := v.Validate(); len(msgs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(msgs, "; "))
			return false
		}
	}
	return true
}
