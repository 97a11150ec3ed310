package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the destination for reported errors and
// returns the previous handler. A nil h restores a LogHandler on the
// default slog logger.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report delivers err to the installed handler and returns the ClockError
// it delivered. The first ClockError in err's chain is reported as is;
// any other error is wrapped with KindUnknown under op. Report does
// nothing for a nil err.
func Report(op string, err error) *ClockError {
	if err == nil {
		return nil
	}
	var ce *ClockError
	if !stderrors.As(err, &ce) {
		ce = &ClockError{Op: op, Kind: KindUnknown, Err: err}
	}
	if ce.Timestamp.IsZero() {
		ce.Timestamp = time.Now()
	}
	currentHandler().HandleError(ce)
	return ce
}

// Guard calls fn and turns a panic into a PanicError, which is delivered
// to the installed handler and returned. Guard returns nil when fn
// completes normally.
//
//	if p := errors.Guard("flip.step", step); p != nil {
//	    // fn did not finish
//	}
func Guard(op string, fn func()) (p *PanicError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p = &PanicError{Op: op, Value: r, StackTrace: panicStack(), Timestamp: time.Now()}
		currentHandler().HandlePanic(p)
	}()
	fn()
	return nil
}

// maxStackDepth bounds the frames kept in a PanicError.
const maxStackDepth = 32

// panicStack formats the goroutine stack from the panicking frame down,
// one "function\n\tfile:line" entry per frame.
func panicStack() string {
	pcs := make([]uintptr, maxStackDepth)
	// Skip runtime.Callers, panicStack and Guard's deferred func.
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		f, more := frames.Next()
		if f.Function != "" {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
