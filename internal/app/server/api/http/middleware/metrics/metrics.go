package metrics

import (
	"strconv"
	"time"

	appmetrics "datareceiver/internal/app/server/metrics"

	"github.com/danielgtaylor/huma/v2"
)

// Middleware observes the duration of every registered operation.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		operation := "unknown"
		if op := ctx.Operation(); op != nil {
			operation = op.OperationID
		}

		appmetrics.RequestDuration.
			WithLabelValues(ctx.Method(), operation, strconv.Itoa(ctx.Status())).
			Observe(time.Since(start).Seconds())
	}
}
