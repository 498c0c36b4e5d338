// Package workerpool runs bounded concurrent processing over a slice of items.
package workerpool

import (
	"context"
	"sync"
)

// Failure records an item whose processing returned an error.
type Failure[T any] struct {
	Item T
	Err  error
}

// Summary accounts for a finished run.
type Summary[T any] struct {
	Processed int
	Failures  []Failure[T]
}

// Process runs process over items with at most workerCount goroutines. An item error is
// recorded in the summary and does not stop the remaining items. Cancelling ctx stops
// dispatch; the summary then covers only the items that ran and ctx.Err() is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) (Summary[T], error) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary Summary[T]
	)

	tasks := make(chan T)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				err := process(ctx, item)

				mu.Lock()
				summary.Processed++
				if err != nil {
					summary.Failures = append(summary.Failures, Failure[T]{Item: item, Err: err})
				}
				mu.Unlock()
			}
		}()
	}

	var err error
dispatch:
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	return summary, err
}
