// Package workerpool is the fixed-size parallel fan-out the renderer
// dispatches one row task per image row through every iteration: a
// completion barrier over an arbitrary task count, bounded to a fixed
// number of concurrently-running tasks. Task-to-goroutine assignment is
// arbitrary; tasks must be independent, and a panicking task is fatal
// rather than recovered, matching the original engine's unaccelerated
// thread pool (core/camera.cc dispatches over MAX_THREADS via a pool with
// no task-level error recovery).
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds how many Dispatch tasks run concurrently.
type WorkerPool struct {
	sem *semaphore.Weighted
}

// New constructs a WorkerPool that runs at most maxThreads tasks
// concurrently. maxThreads <= 0 defaults to runtime.NumCPU().
func New(maxThreads int) *WorkerPool {
	if maxThreads <= 0 {
		maxThreads = runtime.NumCPU()
	}
	return &WorkerPool{sem: semaphore.NewWeighted(int64(maxThreads))}
}

// Dispatch runs fn(i) for every i in [0, taskCount), with at most
// maxThreads running concurrently, and returns once every task has
// completed. Acquiring the semaphore never fails here since each call
// releases what it acquires before returning (context.Background() never
// cancels), so an Acquire error is treated as unreachable and panics.
func (wp *WorkerPool) Dispatch(taskCount int, fn func(i int)) {
	var wg sync.WaitGroup
	ctx := context.Background()

	for i := 0; i < taskCount; i++ {
		if err := wp.sem.Acquire(ctx, 1); err != nil {
			panic(err)
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer wp.sem.Release(1)
			fn(i)
		}(i)
	}

	wg.Wait()
}
