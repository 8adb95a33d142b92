package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure. Every service error carries exactly
// one kind; the HTTP layer maps kinds to status codes without inspecting
// messages.
type Kind int

const (
	KindValidation Kind = iota // malformed input, rejected before any state change
	KindNotFound               // unknown appliance, kitchen or reservation
	KindConflict               // overlapping reservation interval
	KindAuthentication         // uniform access denial; never explains why
	KindUpstreamSignal         // embedding collaborator produced no vector
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication denials share one message shape on purpose: a failed
// face match and an unknown session token must be indistinguishable to
// the caller.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func UpstreamSignal(message string, err error) *Error {
	return &Error{Kind: KindUpstreamSignal, Message: message, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to its response status. Unclassified errors
// are internal failures.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindUpstreamSignal:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
