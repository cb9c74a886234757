package sim

import (
	"runtime"
	"sync"
)

// runPool fans work out across up to poolSize goroutines, each draining
// session indices from a shared work queue and running fn on them. A
// poolSize <= 0 first defaults to runtime.NumCPU(); the result then runs
// sequentially whenever it's still <= 1, which is always true for a single
// session regardless of poolSize. Sessions share no mutable state, so no
// synchronization beyond the work queue itself is needed: fn is responsible
// for writing only into the slice slot for the index it was given.
func runPool(sessions, poolSize int, fn func(index int)) {
	if sessions == 0 {
		return
	}
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	if poolSize > sessions {
		poolSize = sessions
	}
	if poolSize <= 1 {
		for i := 0; i < sessions; i++ {
			fn(i)
		}
		return
	}

	work := make(chan int, sessions)
	for i := 0; i < sessions; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(poolSize)
	for w := 0; w < poolSize; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
