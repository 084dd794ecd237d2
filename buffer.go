// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"github.com/pkg/errors"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// Buffer is a reference counted handle to a device buffer of fixed size.
type Buffer struct {
	rc     *RenderingContext
	refs   *refCount
	handle gl.Buffer
	size   int
	usage  gl.Enum
}

// CreateBuffer allocates a device buffer of size bytes. Allocation runs
// synchronously; the returned handle is usable immediately.
func (rc *RenderingContext) CreateBuffer(size int, usage gl.Enum) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.Errorf("glitz: buffer size %d out of range", size)
	}
	exec := Submit(rc, task.New(rc.ID(), func(c *driver.Connection) task.Progress[gl.Buffer] {
		ctx, state := c.Unpack()
		handle := ctx.CreateBuffer()
		if err := state.BindCopyWriteBuffer(handle).Apply(ctx); err != nil {
			return task.Failed[gl.Buffer](err)
		}
		ctx.BufferData(gl.COPY_WRITE_BUFFER, size, usage, nil)
		return task.Finished(handle)
	}))
	handle, err := exec.Result()
	if err != nil {
		return nil, errors.Wrap(err, "glitz: create buffer")
	}
	return &Buffer{
		rc:     rc,
		refs:   newRefCount(),
		handle: handle,
		size:   size,
		usage:  usage,
	}, nil
}

// Size returns the buffer's size in bytes.
func (b *Buffer) Size() int { return b.size }

// Retain adds a reference. Every Retain must be paired with a Release.
func (b *Buffer) Retain() *Buffer {
	b.refs.retain()
	return b
}

// Release drops a reference. Releasing the last reference submits the
// deletion as an ordinary task, so it cannot overtake fenced work that
// still reads the buffer.
func (b *Buffer) Release() {
	if b.refs.release() {
		b.rc.drop(DropBuffer(b.rc.ID(), b.handle))
	}
}

// Upload copies data into the buffer at offset. The copy is issued
// immediately; no fence is required.
func (b *Buffer) Upload(offset int, data []byte) *Execution[struct{}] {
	exec := newExecution[struct{}]()
	if offset < 0 || offset+len(data) > b.size {
		exec.deliver(struct{}{}, errors.Errorf("glitz: upload range [%d, %d) exceeds buffer size %d", offset, offset+len(data), b.size))
		return exec
	}
	handle := b.handle
	return Submit(b.rc, task.New(b.rc.ID(), func(c *driver.Connection) task.Progress[struct{}] {
		ctx, state := c.Unpack()
		if err := state.BindCopyWriteBuffer(handle).Apply(ctx); err != nil {
			return task.Failed[struct{}](err)
		}
		ctx.BufferSubData(gl.COPY_WRITE_BUFFER, offset, data)
		return task.Finished(struct{}{})
	}))
}

// Download reads size bytes starting at offset back to the host. The bytes
// are first copied into a staging buffer, then read out once a fence
// confirms the copy has completed, so the returned execution resolves on a
// later tick.
func (b *Buffer) Download(offset, size int) *Execution[[]byte] {
	exec := newExecution[[]byte]()
	if offset < 0 || size < 0 || offset+size > b.size {
		exec.deliver(nil, errors.Errorf("glitz: download range [%d, %d) exceeds buffer size %d", offset, offset+size, b.size))
		return exec
	}
	return Submit[[]byte](b.rc, &bufferDownload{buffer: b, offset: offset, size: size})
}

type downloadPhase int

const (
	downloadCopy downloadPhase = iota
	downloadRead
	downloadDone
)

// bufferDownload stages the requested range into a throwaway buffer, waits
// for the GPU to finish the copy, then maps the staging bytes back.
type bufferDownload struct {
	buffer  *Buffer
	offset  int
	size    int
	phase   downloadPhase
	staging gl.Buffer
}

func (d *bufferDownload) ContextID() driver.ContextID { return d.buffer.rc.ID() }

func (d *bufferDownload) Progress(c *driver.Connection) task.Progress[[]byte] {
	ctx, state := c.Unpack()
	switch d.phase {
	case downloadCopy:
		d.staging = ctx.CreateBuffer()
		if err := state.BindCopyWriteBuffer(d.staging).Apply(ctx); err != nil {
			return task.Failed[[]byte](err)
		}
		ctx.BufferData(gl.COPY_WRITE_BUFFER, d.size, gl.STREAM_READ, nil)
		if err := state.BindCopyReadBuffer(d.buffer.handle).Apply(ctx); err != nil {
			return task.Failed[[]byte](err)
		}
		ctx.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, d.offset, 0, d.size)
		d.phase = downloadRead
		return task.ContinueFenced[[]byte]()
	case downloadRead:
		if err := state.BindCopyReadBuffer(d.staging).Apply(ctx); err != nil {
			return task.Failed[[]byte](err)
		}
		out := make([]byte, d.size)
		ctx.GetBufferSubData(gl.COPY_READ_BUFFER, 0, out)
		state.DeleteBuffer(ctx, d.staging)
		d.phase = downloadDone
		return task.Finished(out)
	}
	panic("task: Progress called on a finished task")
}
