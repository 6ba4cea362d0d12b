package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/dlshle/fakelambda/test_utils"
)

func TestTrackableError(t *testing.T) {
	test_utils.NewGroup("trackable error", "").Cases(
		test_utils.New("wrap keeps the cause reachable", func() {
			cause := errors.New("cause")
			wrapped := WrapWithStackTrace(cause)
			test_utils.AssertTrue(errors.Is(wrapped, cause))
			var tracked *TrackableError
			test_utils.AssertTrue(errors.As(wrapped, &tracked))
		}),
		test_utils.New("wrap of nil is nil", func() {
			test_utils.AssertNil(WrapWithStackTrace(nil))
		}),
		test_utils.New("already tracked errors are not wrapped twice", func() {
			tracked := Error("once")
			test_utils.AssertTrue(WrapWithStackTrace(tracked) == error(tracked))
		}),
		test_utils.New("stacktrace names the creating function", func() {
			err := Errorf("code %d", 7)
			test_utils.AssertTrue(strings.Contains(err.Error(), "code 7"))
			test_utils.AssertTrue(strings.Contains(err.Stacktrace(), "TestTrackableError"))
		}),
	).Do(t)
}
