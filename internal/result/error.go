package result

// Error is an immutable (code, message) pair. The zero value is NonError.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NonError marks "no failure occurred".
var NonError = Error{}

// ErrUnspecified stands in when a failure is built without an error.
var ErrUnspecified = Error{Code: "General.Unspecified", Message: "unspecified failure"}

const codeNotFound = "General.NotFound"

// NewError returns an Error with the given code and message.
func NewError(code, message string) Error {
	return Error{Code: code, Message: message}
}

// NotFound returns the typed not-found error.
func NotFound(message string) Error {
	return Error{Code: codeNotFound, Message: message}
}

// IsNone reports whether e is NonError.
func (e Error) IsNone() bool {
	return e == NonError
}

func (e Error) Error() string {
	if e.IsNone() {
		return "no error"
	}
	return e.Code + ": " + e.Message
}
