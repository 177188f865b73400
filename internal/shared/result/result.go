package result

import "net/http"

// ErrorType classifies a domain-rule failure. Infrastructure failures never
// travel through the envelope; they propagate as plain errors.
type ErrorType int

const (
	None ErrorType = iota
	NotFound
	BadRequest
	Forbidden
	ServerError
)

func (t ErrorType) String() string {
	switch t {
	case None:
		return "none"
	case NotFound:
		return "not_found"
	case BadRequest:
		return "bad_request"
	case Forbidden:
		return "forbidden"
	default:
		return "server_error"
	}
}

// HTTPStatus maps the error kind to a transport status at the boundary.
func (t ErrorType) HTTPStatus() int {
	switch t {
	case None:
		return http.StatusOK
	case NotFound:
		return http.StatusNotFound
	case BadRequest:
		return http.StatusBadRequest
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Result is the success/failure envelope returned by every service operation.
// Data on a failed result yields the zero value.
type Result[T any] struct {
	data      T
	ok        bool
	errorType ErrorType
	message   string
}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true, errorType: None}
}

func Failure[T any](errorType ErrorType, message string) Result[T] {
	return Result[T]{ok: false, errorType: errorType, message: message}
}

func (r Result[T]) IsSuccess() bool { return r.ok }

func (r Result[T]) Data() T { return r.data }

func (r Result[T]) ErrorType() ErrorType {
	return r.errorType
}

func (r Result[T]) ErrorMessage() string { return r.message }

// FailureFrom re-wraps another result's failure, preserving kind and message.
// Useful when a service propagates a collaborator's failure unchanged.
func FailureFrom[T, U any](other Result[U]) Result[T] {
	return Failure[T](other.errorType, other.message)
}

// Unit is the payload of operations that succeed without data.
type Unit struct{}

func OK() Result[Unit] {
	return Success(Unit{})
}
