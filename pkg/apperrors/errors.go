package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable error category surfaced to API consumers.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindCapacity   Kind = "capacity"
	KindState      Kind = "state"
	KindStorage    Kind = "storage"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Capacity(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCapacity, Message: fmt.Sprintf(format, args...)}
}

func State(format string, args ...interface{}) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf returns the category of err, KindStorage for anything uncategorized.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode maps an error to the HTTP status handlers respond with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindCapacity, KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Postgres error codes worth distinguishing at the API boundary.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// WrapDBError categorizes a postgres error by SQLSTATE code.
func WrapDBError(message, code string) *Error {
	switch code {
	case pgUniqueViolation:
		return Conflict("%s", message)
	case pgForeignKeyViolation:
		return Validation("%s: referenced record does not exist", message)
	case pgCheckViolation:
		return Validation("%s", message)
	default:
		return &Error{Kind: KindStorage, Message: fmt.Sprintf("%s (code: %s)", message, code)}
	}
}
