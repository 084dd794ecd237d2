// SPDX-License-Identifier: Unlicense OR MIT

package task

import "github.com/go-glitz/glitz/driver"

// Sequential chaining. The follow-up task is not constructed until the
// first task finishes, so a later command can never capture driver objects
// that do not exist yet.

type andThenTask[A, B any] struct {
	first Task[A]
	fn    func(A) Task[B]
	next  Task[B]
	done  bool
}

// AndThen runs the task built by fn from t's value after t succeeds. An
// error from t short-circuits; fn is never called.
func AndThen[A, B any](t Task[A], fn func(A) Task[B]) Task[B] {
	return &andThenTask[A, B]{first: t, fn: fn}
}

func (s *andThenTask[A, B]) ContextID() driver.ContextID { return s.first.ContextID() }

func (s *andThenTask[A, B]) Progress(c *driver.Connection) Progress[B] {
	if s.done {
		panic("task: Progress called on a finished task")
	}
	if s.next == nil {
		p := s.first.Progress(c)
		if p.Fenced() {
			return ContinueFenced[B]()
		}
		v, err := p.Result()
		if err != nil {
			s.done = true
			return Failed[B](err)
		}
		s.next = s.fn(v)
		s.fn = nil
	}
	p := s.next.Progress(c)
	if !p.Fenced() {
		s.done = true
	}
	return p
}

type orElseTask[A any] struct {
	first Task[A]
	fn    func(error) Task[A]
	next  Task[A]
	done  bool
}

// OrElse runs the task built by fn from t's error after t fails. A success
// from t short-circuits; fn is never called.
func OrElse[A any](t Task[A], fn func(error) Task[A]) Task[A] {
	return &orElseTask[A]{first: t, fn: fn}
}

func (s *orElseTask[A]) ContextID() driver.ContextID { return s.first.ContextID() }

func (s *orElseTask[A]) Progress(c *driver.Connection) Progress[A] {
	if s.done {
		panic("task: Progress called on a finished task")
	}
	if s.next == nil {
		p := s.first.Progress(c)
		if p.Fenced() {
			return p
		}
		v, err := p.Result()
		if err == nil {
			s.done = true
			return Finished(v)
		}
		s.next = s.fn(err)
		s.fn = nil
	}
	p := s.next.Progress(c)
	if !p.Fenced() {
		s.done = true
	}
	return p
}

type thenTask[A, B any] struct {
	first Task[A]
	fn    func(A, error) Task[B]
	next  Task[B]
	done  bool
}

// Then runs the task built by fn from t's outcome after t finishes, whether
// it succeeded or failed.
func Then[A, B any](t Task[A], fn func(A, error) Task[B]) Task[B] {
	return &thenTask[A, B]{first: t, fn: fn}
}

func (s *thenTask[A, B]) ContextID() driver.ContextID { return s.first.ContextID() }

func (s *thenTask[A, B]) Progress(c *driver.Connection) Progress[B] {
	if s.done {
		panic("task: Progress called on a finished task")
	}
	if s.next == nil {
		p := s.first.Progress(c)
		if p.Fenced() {
			return ContinueFenced[B]()
		}
		v, err := p.Result()
		s.next = s.fn(v, err)
		s.fn = nil
	}
	p := s.next.Progress(c)
	if !p.Fenced() {
		s.done = true
	}
	return p
}
