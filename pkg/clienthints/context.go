package clienthints

import (
	"context"

	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
)

type resultContextKey struct{}

// SetResultToContext stores a detection result in ctx.
func SetResultToContext(ctx context.Context, res clientdetect.Result) context.Context {
	return context.WithValue(ctx, resultContextKey{}, res)
}

// GetResultFromContext returns the result stored by Middleware.
func GetResultFromContext(ctx context.Context) (clientdetect.Result, bool) {
	res, ok := ctx.Value(resultContextKey{}).(clientdetect.Result)
	return res, ok
}
