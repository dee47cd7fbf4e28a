package infra

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"saba-booking/internal/pkg/errs"
)

type ErrorKind string

// Error is the single error type crossing the infra boundary. Usecases branch
// on Kind, never on driver or HTTP client errors.
type Error struct {
	Kind ErrorKind
	// Status is the upstream HTTP status for KindUpstream and KindRateLimited.
	Status int
	// RetryAfter is the wait the upstream asked for on KindRateLimited.
	RetryAfter time.Duration
	msg        string
	err        error
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

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	return wrap(slogger, Error{Kind: kind, msg: msg}, err)
}

// WrapUpstreamErr records a non-success response of the reservation API.
func WrapUpstreamErr(slogger *slog.Logger, status int, msg string, err error) error {
	return wrap(slogger, Error{Kind: KindUpstream, Status: status, msg: msg}, err)
}

func WrapRateLimitedErr(slogger *slog.Logger, retryAfter time.Duration, msg string) error {
	return wrap(slogger, Error{Kind: KindRateLimited, Status: 429, RetryAfter: retryAfter, msg: msg}, nil)
}

func wrap(slogger *slog.Logger, e Error, err error) error {
	logArgs := []any{
		slog.String("kind", string(e.Kind)),
	}
	if e.Status != 0 {
		logArgs = append(logArgs, slog.Int("status", e.Status))
	}
	if e.RetryAfter > 0 {
		logArgs = append(logArgs, slog.Duration("retry_after", e.RetryAfter))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if slogger != nil {
		level := slog.LevelError
		if e.Kind == KindNotFound || e.Kind == KindConflict || e.Kind == KindLocked {
			level = slog.LevelWarn
		}
		slogger.Log(context.Background(), level, "Infra error: "+e.msg, logArgs...)
	}

	if err != nil {
		e.err = errs.Wrap(err, e.msg)
	}
	return e
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsError extracts the infra Error carried by err.
func AsError(err error) (Error, bool) {
	var e Error
	ok := errors.As(err, &e)
	return e, ok
}

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindDBFailure    ErrorKind = "DB_FAILURE"
	KindDuplicateKey ErrorKind = "DUPLICATE_KEY"
	KindCacheFailure ErrorKind = "CACHE_FAILURE"
	// KindConflict is an optimistic version mismatch.
	KindConflict ErrorKind = "CONFLICT"
	// KindLocked means another request holds the in-flight guard.
	KindLocked      ErrorKind = "LOCKED"
	KindRateLimited ErrorKind = "RATE_LIMITED"
	KindUpstream    ErrorKind = "UPSTREAM"
	KindTransport   ErrorKind = "TRANSPORT"
	KindDecode      ErrorKind = "DECODE"
)
