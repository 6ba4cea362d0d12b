package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dlshle/fakelambda/errors"
	"github.com/dlshle/fakelambda/lambdas"
	"github.com/dlshle/fakelambda/logging"
)

var sample = []string{"hello", "", "lambda", "", "world"}

func main() {
	logger := logging.GlobalLogger.WithPrefix("[fakelambda]")
	ctx := logging.WrapCtx(context.Background(), "sample", fmt.Sprint(len(sample)))

	filtered := lambdas.FilterData(sample)
	logger.Infof(ctx, "filterData: %q", filtered)

	mapped := lambdas.MapData(sample)
	logger.Infof(ctx, "mapData: %q", mapped)

	logger.Info(ctx, "formatData:")
	if err := lambdas.FormatData(os.Stdout, filtered); err != nil {
		if tracked, ok := err.(*errors.TrackableError); ok {
			logger.TrackableError(ctx, tracked, "formatData failed")
		} else {
			logger.Errorf(ctx, "formatData failed: %v", err)
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout)
}
