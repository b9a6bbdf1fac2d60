// ABOUTME: Per-key FIFO queue serializing remote writes.
// ABOUTME: Writes to the same entity never land out of order; failures are logged and dropped.

package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

const writeTimeout = 30 * time.Second

type job struct {
	label string
	fn    func(context.Context) error
}

// Queue runs one worker per entity key. Jobs for the same key execute
// in enqueue order; jobs for different keys run concurrently.
type Queue struct {
	mu      sync.Mutex
	pending map[string][]job
	active  map[string]bool
	wg      sync.WaitGroup
	logf    func(format string, args ...any)
}

// NewQueue creates an empty queue. logf defaults to stderr.
func NewQueue(logf func(format string, args ...any)) *Queue {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Queue{
		pending: make(map[string][]job),
		active:  make(map[string]bool),
		logf:    logf,
	}
}

// Enqueue schedules fn under key. The call returns immediately; the
// local mutation it mirrors has already been applied by the caller.
func (q *Queue) Enqueue(key, label string, fn func(context.Context) error) {
	q.mu.Lock()
	q.pending[key] = append(q.pending[key], job{label: label, fn: fn})
	if !q.active[key] {
		q.active[key] = true
		q.wg.Add(1)
		go q.drain(key)
	}
	q.mu.Unlock()
}

func (q *Queue) drain(key string) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		jobs := q.pending[key]
		if len(jobs) == 0 {
			q.active[key] = false
			delete(q.pending, key)
			q.mu.Unlock()
			return
		}
		next := jobs[0]
		q.pending[key] = jobs[1:]
		q.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := next.fn(ctx); err != nil {
			// No rollback: the optimistic local change stands.
			q.logf("bench: %s: %v", next.label, err)
		}
		cancel()
	}
}

// Wait blocks until every queued write has been attempted.
func (q *Queue) Wait() {
	q.wg.Wait()
}
