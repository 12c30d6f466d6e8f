// Package environment names the deployment stage (development, staging,
// production) and carries it through context.Context.
//
// Parse accepts the long names and the aliases dev, stage and prod. The
// logger package uses the stage to pick its defaults: development logs at
// debug level in text, which is where detection diagnostics become visible.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
package environment
