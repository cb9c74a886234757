package sim

import (
	"sync/atomic"
	"testing"
)

func TestRunPool_SequentialForSmallPoolSize(t *testing.T) {
	results := make([]int, 5)
	runPool(5, 1, func(i int) { results[i] = i * i })
	for i, v := range results {
		if v != i*i {
			t.Errorf("index %d: got %d, want %d", i, v, i*i)
		}
	}
}

func TestRunPool_ConcurrentCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 200
	var calls [n]int32
	runPool(n, 8, func(i int) {
		atomic.AddInt32(&calls[i], 1)
	})
	for i, c := range calls {
		if c != 1 {
			t.Errorf("index %d ran %d times, want 1", i, c)
		}
	}
}

func TestRunPool_ZeroSessionsIsNoop(t *testing.T) {
	called := false
	runPool(0, 4, func(i int) { called = true })
	if called {
		t.Error("expected fn not to be called with zero sessions")
	}
}

func TestRunPool_DefaultsPoolSizeWhenNonPositive(t *testing.T) {
	var calls [10]int32
	runPool(10, 0, func(i int) {
		atomic.AddInt32(&calls[i], 1)
	})
	for i, c := range calls {
		if c != 1 {
			t.Errorf("index %d ran %d times, want 1", i, c)
		}
	}
}
