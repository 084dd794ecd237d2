//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/internal/gltest"
	"github.com/go-glitz/glitz/task"
)

func newTestContext(t *testing.T) (*RenderingContext, *gltest.Context) {
	t.Helper()
	ctx := gltest.New()
	return NewRenderingContext(ctx), ctx
}

func TestSubmitResolvesImmediately(t *testing.T) {
	rc, ctx := newTestContext(t)
	a := Submit(rc, task.New(0, func(*driver.Connection) task.Progress[int] {
		return task.Finished(1)
	}))
	b := Submit(rc, task.New(0, func(*driver.Connection) task.Progress[int] {
		return task.Finished(2)
	}))
	va, err := a.Result()
	require.NoError(t, err)
	require.Equal(t, 1, va)
	vb, err := b.Result()
	require.NoError(t, err)
	require.Equal(t, 2, vb)
	require.Zero(t, ctx.Count("FenceSync"), "non-fenced tasks created a fence")
	require.False(t, rc.Tick(), "queue not empty after immediate tasks")
}

func TestSubmitContextMismatch(t *testing.T) {
	rc, _ := newTestContext(t)
	exec := Submit(rc, task.New(rc.ID()+1, func(*driver.Connection) task.Progress[int] {
		t.Error("mismatched task progressed")
		return task.Finished(0)
	}))
	_, err := exec.Result()
	var mismatch *driver.MismatchedContextError
	require.ErrorAs(t, err, &mismatch)
}

// refencer needs two separate fence waits before finishing.
type refencer struct {
	rounds int
}

func (r *refencer) ContextID() driver.ContextID { return 0 }

func (r *refencer) Progress(*driver.Connection) task.Progress[int] {
	if r.rounds < 2 {
		r.rounds++
		return task.ContinueFenced[int]()
	}
	return task.Finished(r.rounds)
}

func TestTaskIsRefencedAfterSecondSuspension(t *testing.T) {
	rc, ctx := newTestContext(t)
	exec := Submit[int](rc, &refencer{})
	_, err := exec.Result()
	require.ErrorIs(t, err, ErrPending)
	require.Equal(t, 1, ctx.Count("FenceSync"))

	ctx.SignalAll()
	require.True(t, rc.Tick(), "queue drained despite the second suspension")
	require.Equal(t, 2, ctx.Count("FenceSync"))
	_, err = exec.Result()
	require.ErrorIs(t, err, ErrPending)

	ctx.SignalAll()
	require.False(t, rc.Tick())
	v, err := exec.Result()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestOutOfOrderFenceDelaysButCompletes(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(8, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer b.Release()
	first := b.Download(0, 4)
	second := b.Download(4, 4)
	fences := ctx.PendingFences()
	require.Len(t, fences, 2)

	// Signal only the later fence. The scan stops at the unsignalled
	// front, so neither download resolves on this tick; the work is
	// delayed, not lost.
	ctx.Signal(gl.Sync{V: fences[1]})
	require.True(t, rc.Tick())
	_, err = first.Result()
	require.ErrorIs(t, err, ErrPending)
	_, err = second.Result()
	require.ErrorIs(t, err, ErrPending)

	ctx.Signal(gl.Sync{V: fences[0]})
	require.False(t, rc.Tick())
	_, err = first.Result()
	require.NoError(t, err)
	_, err = second.Result()
	require.NoError(t, err)
}

func TestDroppedHandleStillProcessed(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(8, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer b.Release()
	exec := b.Download(0, 8)
	exec.Cancel()
	_, err = exec.Result()
	require.ErrorIs(t, err, ErrCancelled)

	ctx.SignalAll()
	require.False(t, rc.Tick(), "cancelled task left the queue non-empty")
	// The readback still ran; only delivery was abandoned.
	require.Equal(t, 1, ctx.Count("GetBufferSubData"))
	_, err = exec.Result()
	require.ErrorIs(t, err, ErrCancelled)
}

func TestDropObjectKinds(t *testing.T) {
	rc, ctx := newTestContext(t)
	conn := rc.Connection()
	glctx, _ := conn.Unpack()

	Submit(rc, DropShader(rc.ID(), gl.Shader{V: 7}))
	require.Equal(t, 1, ctx.Count("DeleteShader"))

	p := glctx.CreateProgram()
	Submit(rc, DropProgram(rc.ID(), p))
	require.Equal(t, 1, ctx.Count("DeleteProgram"))

	a := glctx.CreateVertexArray()
	Submit(rc, DropVertexArray(rc.ID(), a))
	require.Equal(t, 1, ctx.Count("DeleteVertexArray"))
}

func TestSubmitErrorPropagates(t *testing.T) {
	rc, _ := newTestContext(t)
	boom := errors.New("boom")
	exec := Submit(rc, task.New(0, func(*driver.Connection) task.Progress[int] {
		return task.Failed[int](boom)
	}))
	_, err := exec.Result()
	require.ErrorIs(t, err, boom)
}
