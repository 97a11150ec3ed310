// Package errors provides structured error reporting for the clock's
// ambient layers: configuration, rendering and the callback loop.
//
// The phrase and geometry engines never return errors; their inputs are
// validated where samples are built.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an unreadable or invalid configuration.
	KindConfig
	// KindRender indicates a failure producing output.
	KindRender
	// KindSchedule indicates a problem in the callback loop.
	KindSchedule
	// KindUsage indicates bad command-line input.
	KindUsage
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindSchedule:
		return "schedule"
	case KindUsage:
		return "usage"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ClockError represents a structured error.
type ClockError struct {
	// Op is the operation that failed (e.g., "config.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New wraps err with an operation and kind. It returns nil for a nil err.
func New(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &ClockError{Op: op, Kind: kind, Err: err}
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first ClockError in err's chain.
func KindOf(err error) ErrorKind {
	var ce *ClockError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Loop.ScheduleOnce").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ClockError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
