package clientdetect

import "context"

type environmentContextKey struct{}

// WithEnvironment stores a client environment snapshot in ctx.
func WithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, environmentContextKey{}, env)
}

// EnvironmentFromContext is the default EnvironmentAccessor: a context
// without a stored Environment means there is no client context.
func EnvironmentFromContext(ctx context.Context) (Environment, bool) {
	if ctx == nil {
		return Environment{}, false
	}
	env, ok := ctx.Value(environmentContextKey{}).(Environment)
	return env, ok
}
