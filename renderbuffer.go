// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"github.com/pkg/errors"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// Renderbuffer is a reference counted handle to a renderbuffer, typically
// used as a depth or stencil attachment.
type Renderbuffer struct {
	rc     *RenderingContext
	refs   *refCount
	handle gl.Renderbuffer
	format gl.Enum
	width  int
	height int
}

// CreateRenderbuffer allocates renderbuffer storage of the given format and
// size.
func (rc *RenderingContext) CreateRenderbuffer(internalFormat gl.Enum, width, height int) (*Renderbuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("glitz: renderbuffer size %dx%d out of range", width, height)
	}
	exec := Submit(rc, task.New(rc.ID(), func(c *driver.Connection) task.Progress[gl.Renderbuffer] {
		ctx, state := c.Unpack()
		handle := ctx.CreateRenderbuffer()
		if err := state.BindRenderbuffer(handle).Apply(ctx); err != nil {
			return task.Failed[gl.Renderbuffer](err)
		}
		ctx.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
		return task.Finished(handle)
	}))
	handle, err := exec.Result()
	if err != nil {
		return nil, errors.Wrap(err, "glitz: create renderbuffer")
	}
	return &Renderbuffer{
		rc:     rc,
		refs:   newRefCount(),
		handle: handle,
		format: internalFormat,
		width:  width,
		height: height,
	}, nil
}

// Width returns the renderbuffer width in pixels.
func (r *Renderbuffer) Width() int { return r.width }

// Height returns the renderbuffer height in pixels.
func (r *Renderbuffer) Height() int { return r.height }

// Retain adds a reference. Every Retain must be paired with a Release.
func (r *Renderbuffer) Retain() *Renderbuffer {
	r.refs.retain()
	return r
}

// Release drops a reference. Releasing the last reference submits the
// deletion as an ordinary task.
func (r *Renderbuffer) Release() {
	if r.refs.release() {
		r.rc.drop(DropRenderbuffer(r.rc.ID(), r.handle))
	}
}
