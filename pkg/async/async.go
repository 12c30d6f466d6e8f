package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the result of an asynchronous computation.
// The result is written exactly once, by the goroutine started in Async,
// before done is closed; readers only look at it after done is closed.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout. A result that
// arrives later stays inside the Future and is never handed out by this call.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	return f.AwaitContext(context.Background(), timeout)
}

// AwaitContext waits for completion, for the timeout to elapse, or for ctx
// to be done, whichever happens first. A non-positive timeout waits without
// a deadline.
func (f *Future[U]) AwaitContext(ctx context.Context, timeout time.Duration) (U, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	var zero U
	select {
	case <-f.done:
		return f.result, f.err
	case <-expired:
		return zero, ErrTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn on its own goroutine and returns a Future.
// A panic in fn completes the Future with an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents running work for an already canceled caller
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		f.result, f.err = fn(ctx, param)
	}()

	return f
}
