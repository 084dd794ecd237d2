// SPDX-License-Identifier: Unlicense OR MIT

// Package task defines the cooperatively resumable unit of GPU work and the
// combinators that compose such units without a host scheduler.
//
// A Task is progressed by repeated calls to Progress against the exclusive
// connection. Each call either finishes the task with a value or an error,
// or reports that the task has issued a fence and must wait for outstanding
// GPU work before it can continue. Progressing a task after it has finished
// is a bug in the caller and panics.
package task

import "github.com/go-glitz/glitz/driver"

// Task is a resumable unit of GPU work producing a value of type O.
type Task[O any] interface {
	// ContextID identifies the context the task's objects belong to;
	// zero means the task can run against any context.
	ContextID() driver.ContextID

	// Progress advances the task as far as it can get without blocking.
	// The connection reference must not be retained beyond the call.
	Progress(c *driver.Connection) Progress[O]
}

// Progress is the outcome of a single Progress call.
type Progress[O any] struct {
	fenced bool
	value  O
	err    error
}

// Finished returns a progress value carrying the task's result.
func Finished[O any](value O) Progress[O] {
	return Progress[O]{value: value}
}

// Failed returns a progress value carrying the task's error.
func Failed[O any](err error) Progress[O] {
	return Progress[O]{err: err}
}

// ContinueFenced reports that the task must wait behind a GPU fence before
// it can make further progress.
func ContinueFenced[O any]() Progress[O] {
	return Progress[O]{fenced: true}
}

// Fenced reports whether the task is waiting on the GPU.
func (p Progress[O]) Fenced() bool { return p.fenced }

// Result returns the finished value or error. It panics on a fenced
// progress value.
func (p Progress[O]) Result() (O, error) {
	if p.fenced {
		panic("task: Result on a fenced progress value")
	}
	return p.value, p.err
}

type funcTask[O any] struct {
	id driver.ContextID
	fn func(c *driver.Connection) Progress[O]
}

// New builds a task from a progress closure bound to the given context id.
func New[O any](id driver.ContextID, fn func(c *driver.Connection) Progress[O]) Task[O] {
	return &funcTask[O]{id: id, fn: fn}
}

func (t *funcTask[O]) ContextID() driver.ContextID { return t.id }

func (t *funcTask[O]) Progress(c *driver.Connection) Progress[O] {
	return t.fn(c)
}

// Empty is the trivial task: it finishes immediately with no value.
type Empty struct{}

func (Empty) ContextID() driver.ContextID { return 0 }

func (Empty) Progress(*driver.Connection) Progress[struct{}] {
	return Finished(struct{}{})
}
