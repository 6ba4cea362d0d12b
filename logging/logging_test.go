package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dlshle/fakelambda/errors"
	"github.com/dlshle/fakelambda/test_utils"
)

type captureWriter struct {
	entities []LogEntity
}

func (w *captureWriter) Write(entity *LogEntity) {
	copied := *entity
	w.entities = append(w.entities, copied)
}

func TestLevelLogger(t *testing.T) {
	test_utils.NewGroup("level logger", "").Cases(
		test_utils.New("water mark drops lower levels", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "[test]", WARN)
			l.Debug(context.Background(), "dropped")
			l.Info(context.Background(), "dropped")
			l.Warn(context.Background(), "kept")
			l.Errorf(context.Background(), "kept %d", 2)
			test_utils.AssertEquals(len(w.entities), 2)
			test_utils.AssertEquals(w.entities[0].Message, "kept")
			test_utils.AssertEquals(w.entities[1].Message, "kept 2")
			test_utils.AssertEquals(w.entities[1].Level, ERROR)
			test_utils.AssertEquals(w.entities[1].Prefix, "[test]")
		}),
		test_utils.New("records are concatenated", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "", LogAllWaterMark)
			l.Info(context.Background(), "a", "b", "c")
			test_utils.AssertEquals(w.entities[0].Message, "abc")
		}),
		test_utils.New("file points at the caller", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "", LogAllWaterMark)
			l.Info(context.Background(), "here")
			test_utils.AssertTrue(strings.HasPrefix(w.entities[0].File, "logging_test.go:"))
		}),
		test_utils.New("context precedence is logger, goroutine, ctx", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "", LogAllWaterMark).WithContext(map[string]string{"a": "logger", "b": "logger", "c": "logger"})
			SetGRContext("b", "goroutine")
			SetGRContext("c", "goroutine")
			defer ClearGRContext()
			ctx := WrapCtx(context.Background(), "c", "ctx")
			l.Info(ctx, "msg")
			fields := w.entities[0].Context
			test_utils.AssertEquals(fields["a"], "logger")
			test_utils.AssertEquals(fields["b"], "goroutine")
			test_utils.AssertEquals(fields["c"], "ctx")
		}),
		test_utils.New("goroutine context can be turned off", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "", LogAllWaterMark).WithGRContextLogging(false)
			SetGRContext("b", "goroutine")
			defer ClearGRContext()
			l.Info(context.Background(), "msg")
			_, found := w.entities[0].Context["b"]
			test_utils.AssertFalse(found)
		}),
		test_utils.New("sub loggers do not share context", func() {
			w := &captureWriter{}
			parent := CreateLevelLogger(w, "", LogAllWaterMark)
			child := parent.WithPrefix("[child]")
			child.SetContext("k", "v")
			parent.Info(context.Background(), "parent")
			child.Info(context.Background(), "child")
			_, found := w.entities[0].Context["k"]
			test_utils.AssertFalse(found)
			test_utils.AssertEquals(w.entities[1].Context["k"], "v")
			test_utils.AssertEquals(w.entities[1].Prefix, "[child]")
		}),
		test_utils.New("wrap ctx does not mutate the parent", func() {
			parent := WrapCtx(context.Background(), "a", "1")
			_ = WrapCtx(parent, "b", "2")
			fields := parent.Value(CtxValLoggingContext).(map[string]string)
			test_utils.AssertEquals(len(fields), 1)
		}),
		test_utils.New("trackable error is logged at error level", func() {
			w := &captureWriter{}
			l := CreateLevelLogger(w, "", LogAllWaterMark)
			l.TrackableError(context.Background(), errors.Error("boom"), "failed:")
			test_utils.AssertEquals(w.entities[0].Level, ERROR)
			test_utils.AssertTrue(strings.Contains(w.entities[0].Message, "boom"))
		}),
	).Do(t)
}

func TestConsoleLogWriter(t *testing.T) {
	test_utils.NewGroup("console writer", "").Cases(
		test_utils.New("fields are sorted and the line ends with a newline", func() {
			var buf bytes.Buffer
			l := NewLevelLogger(&buf, "[p]", LogAllWaterMark).WithContext(map[string]string{"z": "1", "a": "2"})
			l.Warn(context.Background(), "hello")
			line := buf.String()
			test_utils.AssertTrue(strings.Contains(line, "[WARN] [p] "))
			test_utils.AssertTrue(strings.Contains(line, "{a:2;z:1} hello\n"))
		}),
		test_utils.New("tee writes to every writer", func() {
			var l, r bytes.Buffer
			logger := CreateLevelLogger(NewTeeWriter(NewConsoleLogWriter(&l), NewConsoleLogWriter(&r), NewNoopWriter()), "", LogAllWaterMark)
			logger.Info(context.Background(), "both")
			test_utils.AssertTrue(strings.HasSuffix(l.String(), "both\n"))
			test_utils.AssertEquals(l.String(), r.String())
		}),
	).Do(t)
}
