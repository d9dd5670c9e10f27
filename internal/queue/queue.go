// Package queue provides a blocking FIFO used to hand measurement samples from
// a producer goroutine to a consumer goroutine.
package queue

import (
	"context"
	"sync"
)

// WorkQueue is an unbounded, goroutine-safe FIFO. Pop blocks until an item is
// available; Clear drops queued items without waking blocked consumers.
type WorkQueue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
}

// New returns an empty queue.
func New[T any]() *WorkQueue[T] {
	q := &WorkQueue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends item to the tail and wakes one waiting consumer.
func (q *WorkQueue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop removes and returns the head item, blocking while the queue is empty.
func (q *WorkQueue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		q.cond.Wait()
	}
	return q.shift()
}

// PopContext is Pop with cancellation. When ctx is done before an item
// arrives it returns ctx.Err() and leaves the queue untouched.
func (q *WorkQueue[T]) PopContext(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.cond.Wait()
	}
	return q.shift(), nil
}

// TryPop removes the head item without blocking.
func (q *WorkQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.shift(), true
}

// Len returns the number of queued items. The value is advisory.
func (q *WorkQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear discards every queued item.
func (q *WorkQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.items)
	q.items = q.items[:0]
}

// shift pops the head; callers hold mu and guarantee len > 0.
func (q *WorkQueue[T]) shift() T {
	var zero T
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return item
}
