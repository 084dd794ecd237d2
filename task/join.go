// SPDX-License-Identifier: Unlicense OR MIT

package task

import "github.com/go-glitz/glitz/driver"

// Pair is the output of Join.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the output of Join3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the output of Join4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Quint is the output of Join5.
type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// maybeDone drives one sub-task of a join, capturing its output so the
// joined result can be assembled once every sub-task has finished.
type maybeDone[O any] struct {
	task  Task[O]
	done  bool
	value O
}

// progress advances the sub-task one round. It reports whether the
// sub-task has finished and, if it failed, its error.
func (m *maybeDone[O]) progress(c *driver.Connection) (bool, error) {
	if m.done {
		return true, nil
	}
	p := m.task.Progress(c)
	if p.Fenced() {
		return false, nil
	}
	v, err := p.Result()
	if err != nil {
		return true, err
	}
	m.value = v
	m.done = true
	return true, nil
}

func combineIDs(ids ...driver.ContextID) (driver.ContextID, error) {
	var combined driver.ContextID
	for _, id := range ids {
		var err error
		combined, err = combined.Combine(id)
		if err != nil {
			return 0, err
		}
	}
	return combined, nil
}

type joinTask[A, B any] struct {
	a     maybeDone[A]
	b     maybeDone[B]
	id    driver.ContextID
	idErr error
	done  bool
}

// Join runs a and b concurrently within the same cooperative progress
// rounds: each round advances every unfinished sub-task once. The join
// finishes once both sub-tasks succeed, or fails with the first error
// encountered, abandoning the rest.
func Join[A, B any](a Task[A], b Task[B]) Task[Pair[A, B]] {
	t := &joinTask[A, B]{a: maybeDone[A]{task: a}, b: maybeDone[B]{task: b}}
	t.id, t.idErr = combineIDs(a.ContextID(), b.ContextID())
	return t
}

func (t *joinTask[A, B]) ContextID() driver.ContextID { return t.id }

func (t *joinTask[A, B]) Progress(c *driver.Connection) Progress[Pair[A, B]] {
	if t.done {
		panic("task: Progress called on a finished task")
	}
	if t.idErr != nil {
		t.done = true
		return Failed[Pair[A, B]](t.idErr)
	}
	aDone, err := t.a.progress(c)
	if err != nil {
		t.done = true
		return Failed[Pair[A, B]](err)
	}
	bDone, err := t.b.progress(c)
	if err != nil {
		t.done = true
		return Failed[Pair[A, B]](err)
	}
	if !aDone || !bDone {
		return ContinueFenced[Pair[A, B]]()
	}
	t.done = true
	return Finished(Pair[A, B]{First: t.a.value, Second: t.b.value})
}

type join3Task[A, B, C any] struct {
	a     maybeDone[A]
	b     maybeDone[B]
	c     maybeDone[C]
	id    driver.ContextID
	idErr error
	done  bool
}

// Join3 is Join over three tasks.
func Join3[A, B, C any](a Task[A], b Task[B], c Task[C]) Task[Triple[A, B, C]] {
	t := &join3Task[A, B, C]{
		a: maybeDone[A]{task: a},
		b: maybeDone[B]{task: b},
		c: maybeDone[C]{task: c},
	}
	t.id, t.idErr = combineIDs(a.ContextID(), b.ContextID(), c.ContextID())
	return t
}

func (t *join3Task[A, B, C]) ContextID() driver.ContextID { return t.id }

func (t *join3Task[A, B, C]) Progress(conn *driver.Connection) Progress[Triple[A, B, C]] {
	if t.done {
		panic("task: Progress called on a finished task")
	}
	if t.idErr != nil {
		t.done = true
		return Failed[Triple[A, B, C]](t.idErr)
	}
	allDone := true
	for _, sub := range []func(*driver.Connection) (bool, error){
		t.a.progress, t.b.progress, t.c.progress,
	} {
		done, err := sub(conn)
		if err != nil {
			t.done = true
			return Failed[Triple[A, B, C]](err)
		}
		allDone = allDone && done
	}
	if !allDone {
		return ContinueFenced[Triple[A, B, C]]()
	}
	t.done = true
	return Finished(Triple[A, B, C]{First: t.a.value, Second: t.b.value, Third: t.c.value})
}

type join4Task[A, B, C, D any] struct {
	a     maybeDone[A]
	b     maybeDone[B]
	c     maybeDone[C]
	d     maybeDone[D]
	id    driver.ContextID
	idErr error
	done  bool
}

// Join4 is Join over four tasks.
func Join4[A, B, C, D any](a Task[A], b Task[B], c Task[C], d Task[D]) Task[Quad[A, B, C, D]] {
	t := &join4Task[A, B, C, D]{
		a: maybeDone[A]{task: a},
		b: maybeDone[B]{task: b},
		c: maybeDone[C]{task: c},
		d: maybeDone[D]{task: d},
	}
	t.id, t.idErr = combineIDs(a.ContextID(), b.ContextID(), c.ContextID(), d.ContextID())
	return t
}

func (t *join4Task[A, B, C, D]) ContextID() driver.ContextID { return t.id }

func (t *join4Task[A, B, C, D]) Progress(conn *driver.Connection) Progress[Quad[A, B, C, D]] {
	if t.done {
		panic("task: Progress called on a finished task")
	}
	if t.idErr != nil {
		t.done = true
		return Failed[Quad[A, B, C, D]](t.idErr)
	}
	allDone := true
	for _, sub := range []func(*driver.Connection) (bool, error){
		t.a.progress, t.b.progress, t.c.progress, t.d.progress,
	} {
		done, err := sub(conn)
		if err != nil {
			t.done = true
			return Failed[Quad[A, B, C, D]](err)
		}
		allDone = allDone && done
	}
	if !allDone {
		return ContinueFenced[Quad[A, B, C, D]]()
	}
	t.done = true
	return Finished(Quad[A, B, C, D]{
		First: t.a.value, Second: t.b.value, Third: t.c.value, Fourth: t.d.value,
	})
}

type join5Task[A, B, C, D, E any] struct {
	a     maybeDone[A]
	b     maybeDone[B]
	c     maybeDone[C]
	d     maybeDone[D]
	e     maybeDone[E]
	id    driver.ContextID
	idErr error
	done  bool
}

// Join5 is Join over five tasks.
func Join5[A, B, C, D, E any](a Task[A], b Task[B], c Task[C], d Task[D], e Task[E]) Task[Quint[A, B, C, D, E]] {
	t := &join5Task[A, B, C, D, E]{
		a: maybeDone[A]{task: a},
		b: maybeDone[B]{task: b},
		c: maybeDone[C]{task: c},
		d: maybeDone[D]{task: d},
		e: maybeDone[E]{task: e},
	}
	t.id, t.idErr = combineIDs(
		a.ContextID(), b.ContextID(), c.ContextID(), d.ContextID(), e.ContextID(),
	)
	return t
}

func (t *join5Task[A, B, C, D, E]) ContextID() driver.ContextID { return t.id }

func (t *join5Task[A, B, C, D, E]) Progress(conn *driver.Connection) Progress[Quint[A, B, C, D, E]] {
	if t.done {
		panic("task: Progress called on a finished task")
	}
	if t.idErr != nil {
		t.done = true
		return Failed[Quint[A, B, C, D, E]](t.idErr)
	}
	allDone := true
	for _, sub := range []func(*driver.Connection) (bool, error){
		t.a.progress, t.b.progress, t.c.progress, t.d.progress, t.e.progress,
	} {
		done, err := sub(conn)
		if err != nil {
			t.done = true
			return Failed[Quint[A, B, C, D, E]](err)
		}
		allDone = allDone && done
	}
	if !allDone {
		return ContinueFenced[Quint[A, B, C, D, E]]()
	}
	t.done = true
	return Finished(Quint[A, B, C, D, E]{
		First: t.a.value, Second: t.b.value, Third: t.c.value,
		Fourth: t.d.value, Fifth: t.e.value,
	})
}
