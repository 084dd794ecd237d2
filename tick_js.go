//go:build js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import "syscall/js"

// timeoutScheduler drives Tick from 1ms timeouts on the event loop while
// fenced jobs are pending. Repeated timeouts get throttled by browsers
// after a few iterations; that only delays fenced task completion, which
// is waiting on the GPU anyway.
type timeoutScheduler struct {
	rc      *RenderingContext
	running bool
	cb      js.Func
}

func newTickScheduler(rc *RenderingContext) tickScheduler {
	s := &timeoutScheduler{rc: rc}
	// The callback lives as long as the context; contexts are created
	// once per canvas, so it is never released.
	s.cb = js.FuncOf(func(js.Value, []js.Value) any {
		if s.rc.Tick() {
			s.setTimeout()
		} else {
			s.running = false
		}
		return nil
	})
	return s
}

func (s *timeoutScheduler) schedule() {
	if s.running {
		return
	}
	s.running = true
	s.setTimeout()
}

func (s *timeoutScheduler) setTimeout() {
	js.Global().Call("setTimeout", s.cb, 1)
}
