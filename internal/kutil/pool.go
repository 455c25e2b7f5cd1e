package kutil

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result pairs a computed value with its original index so callers can
// restore input order after concurrent work. Shape grounded on the
// teacher's internal/worker.Result[T] (tim-coutinho-agentops/cli).
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// ParallelMap applies fn to each item concurrently (bounded by runtime.NumCPU(),
// or by len(items) if smaller) and returns results in input order. A single
// item erroring does not abort the others — each Result carries its own Err,
// the same "capture per-result, don't abort the batch" policy as the
// teacher's worker.Pool[T].Process. This is the building block spec §5 calls
// for ("per-learner E-step rows; independent EM restarts; independent
// trajectory simulations; information-gain evaluation... reducing results in
// item-id / learner-index order").
func ParallelMap[In, Out any](items []In, fn func(In) (Out, error)) []Result[Out] {
	n := len(items)
	if n == 0 {
		return nil
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	results := make([]Result[Out], n)
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				v, err := fn(items[i])
				results[i] = Result[Out]{Index: i, Value: v, Err: err}
			}
			return nil
		})
	}
	_ = g.Wait() // worker goroutines never return an error themselves; errors travel per-Result

	return results
}
