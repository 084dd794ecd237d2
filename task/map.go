// SPDX-License-Identifier: Unlicense OR MIT

package task

import "github.com/go-glitz/glitz/driver"

type mapTask[A, B any] struct {
	task Task[A]
	fn   func(A) B
}

// Map transforms the success value of t with fn once t finishes. The
// transform runs exactly once; progressing the mapped task after completion
// panics.
func Map[A, B any](t Task[A], fn func(A) B) Task[B] {
	return &mapTask[A, B]{task: t, fn: fn}
}

func (m *mapTask[A, B]) ContextID() driver.ContextID { return m.task.ContextID() }

func (m *mapTask[A, B]) Progress(c *driver.Connection) Progress[B] {
	if m.fn == nil {
		panic("task: Progress called on a finished task")
	}
	p := m.task.Progress(c)
	if p.Fenced() {
		return ContinueFenced[B]()
	}
	fn := m.fn
	m.fn = nil
	v, err := p.Result()
	if err != nil {
		return Failed[B](err)
	}
	return Finished(fn(v))
}

type mapErrTask[A any] struct {
	task Task[A]
	fn   func(error) error
}

// MapErr transforms the error of t with fn once t finishes with one.
func MapErr[A any](t Task[A], fn func(error) error) Task[A] {
	return &mapErrTask[A]{task: t, fn: fn}
}

func (m *mapErrTask[A]) ContextID() driver.ContextID { return m.task.ContextID() }

func (m *mapErrTask[A]) Progress(c *driver.Connection) Progress[A] {
	if m.fn == nil {
		panic("task: Progress called on a finished task")
	}
	p := m.task.Progress(c)
	if p.Fenced() {
		return p
	}
	fn := m.fn
	m.fn = nil
	v, err := p.Result()
	if err != nil {
		return Failed[A](fn(err))
	}
	return Finished(v)
}
