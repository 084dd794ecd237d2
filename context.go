// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"sync/atomic"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// contextIDGen hands out creation-order context ids, starting at 1 so the
// zero ContextID keeps meaning "any context".
var contextIDGen atomic.Uint64

// RenderingContext owns the connection to one underlying context and the
// executor that drives tasks against it. All methods must be called from
// the single thread that owns the context.
type RenderingContext struct {
	conn  *driver.Connection
	queue *fencedQueue

	scheduler tickScheduler
}

// NewRenderingContext wraps a live context that is still in its initial
// state. The context must not be mutated through any other handle for the
// lifetime of the returned RenderingContext.
func NewRenderingContext(ctx gl.Context) *RenderingContext {
	id := driver.ContextID(contextIDGen.Add(1))
	rc := &RenderingContext{
		conn:  driver.NewConnection(id, ctx),
		queue: &fencedQueue{},
	}
	rc.scheduler = newTickScheduler(rc)
	logger().Info("glitz: rendering context created", "id", uint64(id))
	return rc
}

// ID returns the id of the underlying context.
func (rc *RenderingContext) ID() driver.ContextID { return rc.conn.ID() }

// Connection exposes the context's connection for task implementations
// that need raw access; see driver.Connection.Unpack for the obligations
// that come with it.
func (rc *RenderingContext) Connection() *driver.Connection { return rc.conn }

// Submit progresses t once, immediately and synchronously. Independent
// tasks are not ordered relative to each other; use the task package's
// sequencing combinators where ordering matters. If the task suspends on a
// GPU fence it is handed to the fenced queue and re-polled by Tick until it
// finishes.
func Submit[O any](rc *RenderingContext, t task.Task[O]) *Execution[O] {
	exec := newExecution[O]()
	if _, err := rc.conn.ID().Combine(t.ContextID()); err != nil {
		var zero O
		exec.deliver(zero, err)
		return exec
	}
	rc.execute(&job[O]{task: t, exec: exec})
	return exec
}

func (rc *RenderingContext) execute(j executorJob) {
	if j.progress(rc.conn) == jobContinueFenced {
		rc.queue.push(j, rc.conn)
		rc.scheduler.schedule()
	}
}

// Tick progresses every fenced task whose fence has signalled and reports
// whether any fenced work remains. On js a timeout loop calls Tick
// automatically while the queue is non-empty; on other platforms the host
// event loop is expected to call it.
func (rc *RenderingContext) Tick() (pending bool) {
	return !rc.queue.run(rc.conn)
}

// tickScheduler arranges for Tick to run again while fenced jobs are
// pending. The js implementation schedules a timeout on the event loop;
// elsewhere scheduling is left to the host, which calls Tick directly.
type tickScheduler interface {
	schedule()
}

// job pairs an in-flight task with its execution handle.
type job[O any] struct {
	task task.Task[O]
	exec *Execution[O]
}

func (j *job[O]) progress(c *driver.Connection) jobState {
	p := j.task.Progress(c)
	if p.Fenced() {
		return jobContinueFenced
	}
	j.exec.deliver(p.Result())
	return jobFinished
}
