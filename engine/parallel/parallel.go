// Package parallel implements the work-stealing execution harness of §4.5:
// given an index range [lo, hi) and a pure per-index callable, it runs the
// callable for every index exactly once, across a small pool of workers,
// returning only once every index has completed.
package parallel

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of per-index work. It must not panic; if it does, Run
// recovers it and folds it into the joined error (§7: "Worker panic in the
// parallel harness: surface after join").
type Task func(i int) error

// DefaultWorkers returns the hyperthreading heuristic of §4.5: twice the
// available hardware parallelism.
func DefaultWorkers() int {
	return 2 * runtime.GOMAXPROCS(0)
}

// Run executes task(i) for every i in [lo, hi), distributed across workers
// goroutines (DefaultWorkers() if workers <= 0). Work is handed out as
// dynamically sized chunks from a shared, mutex-protected cursor — FIFO,
// chunk size max(1, (hi-lo)/(10*workers)) — so a worker that finishes its
// chunk early claims the next one instead of sitting idle (§4.5). Run
// returns the first error (or recovered panic) from any task, after every
// worker has joined; it performs no partial cancellation; the remaining
// indices in flight are still completed.
func Run(lo, hi, workers int, task Task) error {
	if hi <= lo {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	n := hi - lo
	chunk := n / (10 * workers)
	if chunk < 1 {
		chunk = 1
	}

	var mu sync.Mutex
	next := lo
	nextChunk := func() (start, end int, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if next >= hi {
			return 0, 0, false
		}
		start = next
		end = start + chunk
		if end > hi {
			end = hi
		}
		next = end
		return start, end, true
	}

	runOne := func(i int) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("parallel: worker panic: %v", r)
			}
		}()
		return task(i)
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var firstErr error
			for {
				start, end, ok := nextChunk()
				if !ok {
					return firstErr
				}
				for i := start; i < end; i++ {
					if e := runOne(i); e != nil && firstErr == nil {
						firstErr = e
					}
				}
			}
		})
	}
	return g.Wait()
}
