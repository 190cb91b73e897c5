package utils

import "sync"

// WorkerPool bounds the number of concurrently running jobs. It is used for
// independent output work (chart rendering); the analysis pipeline itself
// runs sequentially.
type WorkerPool struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// NewWorkerPool creates a WorkerPool with the given concurrency.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		semaphore: make(chan struct{}, maxWorkers),
	}
}

// Submit enqueues a job for execution in the pool.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// SeenSet tracks record keys that have already been processed, used to
// deduplicate identical review rows.
type SeenSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewSeenSet creates an empty SeenSet.
func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// Add returns true if the key was newly added, false if already present.
func (s *SeenSet) Add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[key]; exists {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains returns true if the key has already been seen.
func (s *SeenSet) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[key]
	return exists
}

// Size returns the number of unique keys tracked.
func (s *SeenSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
