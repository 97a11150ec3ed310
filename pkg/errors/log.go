package errors

import (
	"context"
	"log/slog"
)

// LogHandler is an ErrorHandler that writes records through slog.
type LogHandler struct {
	// Logger receives the records; slog.Default() when nil.
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a ClockError at error level.
func (h *LogHandler) HandleError(err *ClockError) {
	if err == nil {
		return
	}
	h.logger().LogAttrs(context.Background(), slog.LevelError, "clock error",
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("error", err.Err),
	)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().LogAttrs(context.Background(), slog.LevelError, "recovered panic", attrs...)
}
