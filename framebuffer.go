// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// maxColorSlots is the WebGL2 upper bound on color attachments; the
// driver-reported limits may be lower and are checked at build time.
const maxColorSlots = 16

// FramebufferIncompleteError reports the driver status of a framebuffer
// that failed its completeness check.
type FramebufferIncompleteError struct {
	Status gl.Enum
}

func (e FramebufferIncompleteError) Error() string {
	return fmt.Sprintf("glitz: framebuffer incomplete, status 0x%x", uint(e.Status))
}

// attachment is a color, depth or stencil image: a texture level or a
// renderbuffer, never both.
type attachment struct {
	texture      *Texture2D
	level        int
	renderbuffer *Renderbuffer
}

func (a attachment) equal(o attachment) bool {
	if a.texture != nil {
		return a.texture == o.texture && a.level == o.level
	}
	return a.renderbuffer != nil && a.renderbuffer == o.renderbuffer
}

func (a attachment) attach(ctx gl.Context, point gl.Enum) {
	if a.texture != nil {
		ctx.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, point, gl.TEXTURE_2D, a.texture.handle, a.level)
		return
	}
	ctx.FramebufferRenderbuffer(gl.DRAW_FRAMEBUFFER, point, gl.RENDERBUFFER, a.renderbuffer.handle)
}

// FramebufferBuilder assembles the attachments of a framebuffer. Slot count
// and compatibility are validated at build time with explicit errors, not
// encoded in types; the first violation sticks and is reported by Build.
type FramebufferBuilder struct {
	rc      *RenderingContext
	colors  []attachment
	depth   *attachment
	stencil *attachment
	err     error
}

// NewFramebuffer starts an empty framebuffer description.
func (rc *RenderingContext) NewFramebuffer() *FramebufferBuilder {
	return &FramebufferBuilder{rc: rc}
}

func (b *FramebufferBuilder) addColor(a attachment) *FramebufferBuilder {
	if b.err != nil {
		return b
	}
	if len(b.colors) >= maxColorSlots {
		b.err = errors.Errorf("glitz: more than %d color attachments", maxColorSlots)
		return b
	}
	if slices.ContainsFunc(b.colors, a.equal) {
		b.err = errors.New("glitz: image attached to two color slots")
		return b
	}
	b.colors = append(b.colors, a)
	return b
}

// ColorTexture attaches a texture level to the next color slot.
func (b *FramebufferBuilder) ColorTexture(t *Texture2D, level int) *FramebufferBuilder {
	return b.addColor(attachment{texture: t, level: level})
}

// ColorRenderbuffer attaches a renderbuffer to the next color slot.
func (b *FramebufferBuilder) ColorRenderbuffer(r *Renderbuffer) *FramebufferBuilder {
	return b.addColor(attachment{renderbuffer: r})
}

// DepthRenderbuffer sets the depth attachment.
func (b *FramebufferBuilder) DepthRenderbuffer(r *Renderbuffer) *FramebufferBuilder {
	if b.err == nil && b.depth != nil {
		b.err = errors.New("glitz: depth attachment set twice")
		return b
	}
	if b.err == nil {
		b.depth = &attachment{renderbuffer: r}
	}
	return b
}

// DepthTexture sets a texture level as the depth attachment.
func (b *FramebufferBuilder) DepthTexture(t *Texture2D, level int) *FramebufferBuilder {
	if b.err == nil && b.depth != nil {
		b.err = errors.New("glitz: depth attachment set twice")
		return b
	}
	if b.err == nil {
		b.depth = &attachment{texture: t, level: level}
	}
	return b
}

// StencilRenderbuffer sets the stencil attachment.
func (b *FramebufferBuilder) StencilRenderbuffer(r *Renderbuffer) *FramebufferBuilder {
	if b.err == nil && b.stencil != nil {
		b.err = errors.New("glitz: stencil attachment set twice")
		return b
	}
	if b.err == nil {
		b.stencil = &attachment{renderbuffer: r}
	}
	return b
}

// Build creates the framebuffer and checks it for completeness against the
// live context. An incomplete framebuffer is deleted again and reported as
// a FramebufferIncompleteError.
func (b *FramebufferBuilder) Build() (*Framebuffer, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.colors) == 0 && b.depth == nil && b.stencil == nil {
		return nil, errors.New("glitz: framebuffer has no attachments")
	}
	_, state := b.rc.conn.Unpack()
	if len(b.colors) > state.MaxColorAttachments() {
		return nil, errors.Errorf("glitz: %d color attachments, context supports %d", len(b.colors), state.MaxColorAttachments())
	}
	if len(b.colors) > state.MaxDrawBuffers() {
		return nil, errors.Errorf("glitz: %d draw buffers, context supports %d", len(b.colors), state.MaxDrawBuffers())
	}
	colors := slices.Clone(b.colors)
	depth, stencil := b.depth, b.stencil
	exec := Submit(b.rc, task.New(b.rc.ID(), func(c *driver.Connection) task.Progress[gl.Framebuffer] {
		ctx, state := c.Unpack()
		handle := ctx.CreateFramebuffer()
		if err := state.BindDrawFramebuffer(handle).Apply(ctx); err != nil {
			return task.Failed[gl.Framebuffer](err)
		}
		bufs := make([]gl.Enum, len(colors))
		for i, a := range colors {
			point := gl.Enum(gl.COLOR_ATTACHMENT0 + i)
			a.attach(ctx, point)
			bufs[i] = point
		}
		if depth != nil {
			depth.attach(ctx, gl.DEPTH_ATTACHMENT)
		}
		if stencil != nil {
			stencil.attach(ctx, gl.STENCIL_ATTACHMENT)
		}
		ctx.DrawBuffers(bufs)
		if status := ctx.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			state.DeleteFramebuffer(ctx, handle)
			return task.Failed[gl.Framebuffer](FramebufferIncompleteError{Status: status})
		}
		return task.Finished(handle)
	}))
	handle, err := exec.Result()
	if err != nil {
		return nil, err
	}
	return &Framebuffer{rc: b.rc, refs: newRefCount(), handle: handle, colors: len(colors)}, nil
}

// Framebuffer is a reference counted handle to a complete framebuffer.
type Framebuffer struct {
	rc     *RenderingContext
	refs   *refCount
	handle gl.Framebuffer
	colors int
}

// ColorAttachments returns the number of occupied color slots.
func (f *Framebuffer) ColorAttachments() int { return f.colors }

// Retain adds a reference. Every Retain must be paired with a Release.
func (f *Framebuffer) Retain() *Framebuffer {
	f.refs.retain()
	return f
}

// Release drops a reference. Releasing the last reference submits the
// deletion as an ordinary task.
func (f *Framebuffer) Release() {
	if f.refs.release() {
		f.rc.drop(DropFramebuffer(f.rc.ID(), f.handle))
	}
}

// BindDraw binds the framebuffer as the draw target.
func (f *Framebuffer) BindDraw() *Execution[struct{}] {
	handle := f.handle
	return Submit(f.rc, task.New(f.rc.ID(), func(c *driver.Connection) task.Progress[struct{}] {
		ctx, state := c.Unpack()
		if err := state.BindDrawFramebuffer(handle).Apply(ctx); err != nil {
			return task.Failed[struct{}](err)
		}
		return task.Finished(struct{}{})
	}))
}
