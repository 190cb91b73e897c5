package utils

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(3)

	var counter int64
	for i := 0; i < 20; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	pool.Wait()

	if counter != 20 {
		t.Errorf("completed jobs: got %d, want 20", counter)
	}
}

func TestWorkerPoolZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)

	done := false
	pool.Submit(func() { done = true })
	pool.Wait()

	if !done {
		t.Error("job submitted to pool with clamped size never ran")
	}
}

func TestSeenSetAdd(t *testing.T) {
	s := NewSeenSet()

	if !s.Add("a|b|2016-07-01|great stay") {
		t.Error("first Add should return true")
	}
	if s.Add("a|b|2016-07-01|great stay") {
		t.Error("second Add of same key should return false")
	}
	if !s.Contains("a|b|2016-07-01|great stay") {
		t.Error("Contains should report the added key")
	}
	if s.Size() != 1 {
		t.Errorf("Size: got %d, want 1", s.Size())
	}
}
