package service

import "context"

// loadResult carries the outcome of a background collection load.
type loadResult[T any] struct {
	value T
	err   error
}

// loadAsync starts fn in a goroutine and returns a buffered channel that
// delivers its result. Used to fetch independent collections concurrently:
// the reads are awaited together purely for latency hiding, there is no
// correctness dependency between them and no cancellation beyond ctx.
func loadAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan loadResult[T] {
	ch := make(chan loadResult[T], 1)
	go func() {
		v, err := fn(ctx)
		ch <- loadResult[T]{value: v, err: err}
	}()
	return ch
}
