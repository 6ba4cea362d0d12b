package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

type stack []uintptr

func (s *stack) Format() string {
	frames := runtime.CallersFrames(*s)
	var b strings.Builder
	for {
		frame, more := frames.Next()
		b.WriteRune('\n')
		b.WriteString(frame.Function)
		b.WriteRune('\n')
		b.WriteRune('\t')
		b.WriteString(frame.File)
		b.WriteRune(':')
		b.WriteString(strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return b.String()
}

// TrackableError remembers where it was created. Unwrap exposes the cause so
// errors.Is and errors.As keep working across the wrap.
type TrackableError struct {
	err        error
	stacktrace *stack
}

func (q *TrackableError) Error() string {
	return fmt.Sprintf("original error: %s\nstacktrace:\n%s", q.err.Error(), q.stacktrace.Format())
}

func (q *TrackableError) Unwrap() error {
	return q.err
}

func (q *TrackableError) Stacktrace() string {
	return q.stacktrace.Format()
}

func Error(msg string) *TrackableError {
	return newTrackableErr(errors.New(msg), stacktraceWithDepth(maxStackDepth, 1))
}

func newTrackableErr(err error, stacktrace *stack) *TrackableError {
	return &TrackableError{
		err:        err,
		stacktrace: stacktrace,
	}
}

func stacktraceWithDepth(depth int, frameSkips int) *stack {
	pcs := make([]uintptr, depth)
	n := runtime.Callers(frameSkips+2, pcs[:]) // skip runtime.Callers and stacktraceWithDepth
	var st stack = pcs[:n]
	return &st
}

func StackTrace(frameSkips int) string {
	return stacktraceWithDepth(maxStackDepth, frameSkips+1).Format()
}

func Errorf(formatter string, fields ...any) *TrackableError {
	return newTrackableErr(fmt.Errorf(formatter, fields...), stacktraceWithDepth(maxStackDepth, 1))
}

// WrapWithStackTrace returns nil for a nil err.
func WrapWithStackTrace(err error) error {
	if err == nil {
		return nil
	}
	var tracked *TrackableError
	if errors.As(err, &tracked) {
		return err
	}
	return newTrackableErr(err, stacktraceWithDepth(maxStackDepth, 1))
}
