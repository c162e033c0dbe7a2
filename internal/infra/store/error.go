package store

import (
	"errors"
	"log/slog"

	"citas-unidades/internal/pkg/errs"
)

type ErrorKind string

// Store error kinds. RateLimited and Unavailable are transient and worth a
// retry; the rest propagate immediately.
const (
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindRateLimited ErrorKind = "RATE_LIMITED"
	KindUnavailable ErrorKind = "UNAVAILABLE"
	KindPermission  ErrorKind = "PERMISSION"
	KindInvalid     ErrorKind = "INVALID"
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// NewErr builds a store error for expected conditions such as a missing
// record. Nothing is logged; use WrapErr for transport failures.
func NewErr(kind ErrorKind, msg string) error {
	return Error{Kind: kind, msg: msg}
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	slogger.Error("Store error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsTransient reports whether a retry could plausibly succeed.
func IsTransient(err error) bool {
	return IsKind(err, KindRateLimited) || IsKind(err, KindUnavailable)
}
