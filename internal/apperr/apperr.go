package apperr

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kinds. Match them with errors.Is.
var (
	ErrInvalidArgument  = errors.New("InvalidArgument")
	ErrMissingParameter = errors.New("MissingParameter")
	ErrNotFound         = errors.New("NotFound")
	ErrAlreadyJoined    = errors.New("AlreadyJoined")
	ErrActivityFull     = errors.New("ActivityFull")
	ErrNotJoined        = errors.New("NotJoined")
	ErrTransient        = errors.New("Transient")
	ErrInternal         = errors.New("Internal")
)

var kinds = []error{
	ErrInvalidArgument,
	ErrMissingParameter,
	ErrNotFound,
	ErrAlreadyJoined,
	ErrActivityFull,
	ErrNotJoined,
	ErrTransient,
	ErrInternal,
}

// Error carries a kind, a client-safe message and an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind error, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidArgument(message string) error  { return New(ErrInvalidArgument, message) }
func MissingParameter(message string) error { return New(ErrMissingParameter, message) }
func NotFound(message string) error         { return New(ErrNotFound, message) }

// FromStorage maps a raw storage error onto Transient or Internal. Errors that
// already carry a kind pass through untouched.
func FromStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if IsTimeout(err) {
		return Wrap(ErrTransient, op+" timed out", err)
	}
	var netErr net.Error
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.SafeToRetry(err) {
		return Wrap(ErrTransient, op+" unavailable", err)
	}
	return Wrap(ErrInternal, op+" failed", err)
}

func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		pgconn.Timeout(err)
}

// KindOf returns the kind of err, defaulting to ErrInternal.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}

// Message returns the client-safe message. Internal errors never leak detail.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != ErrInternal {
		return ae.Message
	}
	return "the server encountered a problem"
}

// HTTPStatus maps a kind onto a status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrInvalidArgument, ErrMissingParameter:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrAlreadyJoined, ErrActivityFull, ErrNotJoined:
		return http.StatusConflict
	case ErrTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
