package utils

import (
	"errors"
	"sort"
	"sync"
)

// WorkerPool runs jobs on at most maxWorkers goroutines and collects their
// errors.
type WorkerPool struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	errs      []error
}

// NewWorkerPool creates a WorkerPool. Values below 1 mean a single worker.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{semaphore: make(chan struct{}, maxWorkers)}
}

// Submit enqueues a job; it blocks while all workers are busy.
func (wp *WorkerPool) Submit(job func() error) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		if err := job(); err != nil {
			wp.mu.Lock()
			wp.errs = append(wp.errs, err)
			wp.mu.Unlock()
		}
	}()
}

// Wait blocks until all submitted jobs have completed and returns their
// joined errors.
func (wp *WorkerPool) Wait() error {
	wp.wg.Wait()
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return errors.Join(wp.errs...)
}

// PathSet is a thread-safe set of artifact paths.
type PathSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewPathSet creates an empty PathSet.
func NewPathSet() *PathSet {
	return &PathSet{seen: make(map[string]struct{})}
}

// Add returns true if the path was newly added, false if already present.
func (s *PathSet) Add(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[path]; exists {
		return false
	}
	s.seen[path] = struct{}{}
	return true
}

// Contains returns true if the path has already been recorded.
func (s *PathSet) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[path]
	return exists
}

// Sorted returns the recorded paths in lexical order.
func (s *PathSet) Sorted() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.seen))
	for p := range s.seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
