package logging

import (
	"context"

	"github.com/dlshle/fakelambda/gr_context"
)

const grContextPrefix = "$logging_"

// WrapCtx returns a child context carrying key=val for every log line
// written with it. The parent's fields are copied, never mutated.
func WrapCtx(ctx context.Context, key, val string) context.Context {
	mapCtx := make(map[string]string)
	if original, ok := ctx.Value(CtxValLoggingContext).(map[string]string); ok {
		for k, v := range original {
			mapCtx[k] = v
		}
	}
	mapCtx[key] = val
	return context.WithValue(ctx, CtxValLoggingContext, mapCtx)
}

// SetGRContext attaches a field to every line logged from the current
// goroutine by loggers with goroutine context logging enabled.
func SetGRContext(k, v string) {
	gr_context.Put(grContextPrefix+k, v)
}

func DeleteGRContext(k string) {
	gr_context.Delete(grContextPrefix + k)
}

func ClearGRContext() {
	gr_context.ClearByPrefix(grContextPrefix)
}

func getGRContext() map[string]string {
	res := make(map[string]string)
	for k, v := range gr_context.GetByPrefix(grContextPrefix) {
		if s, ok := v.(string); ok {
			res[k[len(grContextPrefix):]] = s
		}
	}
	return res
}
