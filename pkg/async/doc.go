// Package async provides a small generic Future for running one computation
// on its own goroutine and waiting for it with a bound.
//
// Async starts the supplied function and immediately returns a *Future. The
// caller waits with Await, with AwaitWithTimeout, or with AwaitContext, which
// also gives up when the caller's context is done. IsComplete polls without
// blocking.
//
// A Future owns its result. When a wait gives up, the computation keeps
// running until it returns (or notices its own context), and whatever it
// produces stays inside the Future: nothing is written into the caller's
// state after the wait returned.
//
// # Usage
//
//	import "github.com/dmitrymomot/devicedetect/pkg/async"
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//
//	future := async.Async(ctx, hints, resolver.HighEntropyValues)
//	values, err := future.AwaitContext(ctx, 5*time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//	    // fall back to what is already known
//	}
//
// # Error Handling
//
// AwaitWithTimeout and AwaitContext return ErrTimeout when the bound elapses
// and ctx.Err() when the context ends first. A panic inside the function is
// recovered and reported as an error wrapping ErrPanic.
package async
