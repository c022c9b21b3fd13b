// Package result holds the value-typed outcome every repository and service call returns.
//
// A RepositoryResult is either a success (value present, NonError, 2xx status) or a failure
// (no value, a classified Error, 4xx/5xx status). Results are built once with Success or
// Failure and passed by value afterwards.
package result

import "net/http"

// RepositoryResult carries the outcome of one data-access or service operation.
type RepositoryResult[T any] struct {
	value      T
	hasValue   bool
	err        Error
	statusCode int
}

// Success returns a result holding value. A status outside the 2xx range is replaced by 200.
func Success[T any](value T, statusCode int) RepositoryResult[T] {
	if !isSuccessStatus(statusCode) {
		statusCode = http.StatusOK
	}
	return RepositoryResult[T]{value: value, hasValue: true, err: NonError, statusCode: statusCode}
}

// Failure returns a result without a value. NonError is replaced by ErrUnspecified and a
// status that is not an error status is replaced by 500.
func Failure[T any](err Error, statusCode int) RepositoryResult[T] {
	if err.IsNone() {
		err = ErrUnspecified
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return RepositoryResult[T]{err: err, statusCode: statusCode}
}

// Absent reports that nothing matched without classifying it as an error. Only repositories
// return it; services turn it into a Failure.
func Absent[T any](statusCode int) RepositoryResult[T] {
	return RepositoryResult[T]{err: NonError, statusCode: statusCode}
}

// Value returns the carried value and whether one is present.
func (r RepositoryResult[T]) Value() (T, bool) {
	return r.value, r.hasValue
}

// Err returns the carried error, NonError on success.
func (r RepositoryResult[T]) Err() Error {
	return r.err
}

// StatusCode returns the HTTP-style status stamped on the result.
func (r RepositoryResult[T]) StatusCode() int {
	return r.statusCode
}

// IsSuccess reports a 2xx result carrying a value and NonError.
func (r RepositoryResult[T]) IsSuccess() bool {
	return r.err.IsNone() && r.hasValue && isSuccessStatus(r.statusCode)
}

// IsFailure reports whether the result carries an error other than NonError.
func (r RepositoryResult[T]) IsFailure() bool {
	return !r.err.IsNone()
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
