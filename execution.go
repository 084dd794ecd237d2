// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"context"
	"errors"
	"sync"
)

// ErrCancelled is delivered to an Execution whose consumer gave up on the
// result before it resolved.
var ErrCancelled = errors.New("glitz: execution cancelled")

// ErrPending is returned by Result while the execution has not resolved.
var ErrPending = errors.New("glitz: execution still pending")

// Execution is the single-resolution handle for a submitted task. It
// resolves exactly once, with the task's value or error.
type Execution[O any] struct {
	mu       sync.Mutex
	done     chan struct{}
	resolved bool
	value    O
	err      error
}

func newExecution[O any]() *Execution[O] {
	return &Execution[O]{done: make(chan struct{})}
}

// Done returns a channel that is closed once the execution has resolved or
// been cancelled.
func (e *Execution[O]) Done() <-chan struct{} { return e.done }

// Result returns the resolved value or error, or ErrPending while the
// execution has not resolved.
func (e *Execution[O]) Result() (O, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.resolved {
		var zero O
		return zero, ErrPending
	}
	return e.value, e.err
}

// Wait blocks until the execution resolves or ctx is done.
func (e *Execution[O]) Wait(ctx context.Context) (O, error) {
	select {
	case <-e.done:
		return e.Result()
	case <-ctx.Done():
		var zero O
		return zero, ctx.Err()
	}
}

// Cancel abandons delivery of the result and resolves the execution with
// ErrCancelled. Work already issued to the driver is not cancelled; the
// task still runs to completion inside the queue.
func (e *Execution[O]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.resolved {
		return
	}
	e.resolved = true
	e.err = ErrCancelled
	close(e.done)
}

// deliver resolves the execution; it is a no-op after cancellation.
func (e *Execution[O]) deliver(value O, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.resolved {
		return
	}
	e.resolved = true
	e.value = value
	e.err = err
	close(e.done)
}
