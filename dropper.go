// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

type dropKind int

const (
	dropBuffer dropKind = iota
	dropFramebuffer
	dropProgram
	dropRenderbuffer
	dropTexture
	dropShader
	dropSampler
	dropVertexArray
)

func (k dropKind) String() string {
	switch k {
	case dropBuffer:
		return "buffer"
	case dropFramebuffer:
		return "framebuffer"
	case dropProgram:
		return "program"
	case dropRenderbuffer:
		return "renderbuffer"
	case dropTexture:
		return "texture"
	case dropShader:
		return "shader"
	case dropSampler:
		return "sampler"
	case dropVertexArray:
		return "vertex array"
	}
	return "unknown"
}

// DropObject identifies one driver object to be deleted. It is itself a
// task; routing deletions through Submit keeps them ordered behind any
// fenced work that still uses the object.
type DropObject struct {
	kind dropKind
	id   driver.ContextID

	buffer       gl.Buffer
	framebuffer  gl.Framebuffer
	program      gl.Program
	renderbuffer gl.Renderbuffer
	texture      gl.Texture
	shader       gl.Shader
	sampler      gl.Sampler
	vertexArray  gl.VertexArray
}

func DropBuffer(id driver.ContextID, b gl.Buffer) DropObject {
	return DropObject{kind: dropBuffer, id: id, buffer: b}
}

func DropFramebuffer(id driver.ContextID, f gl.Framebuffer) DropObject {
	return DropObject{kind: dropFramebuffer, id: id, framebuffer: f}
}

func DropProgram(id driver.ContextID, p gl.Program) DropObject {
	return DropObject{kind: dropProgram, id: id, program: p}
}

func DropRenderbuffer(id driver.ContextID, r gl.Renderbuffer) DropObject {
	return DropObject{kind: dropRenderbuffer, id: id, renderbuffer: r}
}

func DropTexture(id driver.ContextID, t gl.Texture) DropObject {
	return DropObject{kind: dropTexture, id: id, texture: t}
}

func DropShader(id driver.ContextID, s gl.Shader) DropObject {
	return DropObject{kind: dropShader, id: id, shader: s}
}

func DropSampler(id driver.ContextID, s gl.Sampler) DropObject {
	return DropObject{kind: dropSampler, id: id, sampler: s}
}

func DropVertexArray(id driver.ContextID, a gl.VertexArray) DropObject {
	return DropObject{kind: dropVertexArray, id: id, vertexArray: a}
}

func (d DropObject) ContextID() driver.ContextID { return d.id }

// Progress deletes the object and scrubs any state cache entries that still
// reference it.
func (d DropObject) Progress(c *driver.Connection) task.Progress[struct{}] {
	ctx, state := c.Unpack()
	switch d.kind {
	case dropBuffer:
		state.DeleteBuffer(ctx, d.buffer)
	case dropFramebuffer:
		state.DeleteFramebuffer(ctx, d.framebuffer)
	case dropProgram:
		state.DeleteProgram(ctx, d.program)
	case dropRenderbuffer:
		state.DeleteRenderbuffer(ctx, d.renderbuffer)
	case dropTexture:
		state.DeleteTexture(ctx, d.texture)
	case dropShader:
		ctx.DeleteShader(d.shader)
	case dropSampler:
		state.DeleteSampler(ctx, d.sampler)
	case dropVertexArray:
		state.DeleteVertexArray(ctx, d.vertexArray)
	}
	logger().Debug("glitz: object dropped", "kind", d.kind.String())
	return task.Finished(struct{}{})
}

// drop submits a deletion through the ordinary task path.
func (rc *RenderingContext) drop(obj DropObject) {
	Submit(rc, obj)
}

// refCount tracks shared ownership of one driver object. The runtime is
// single threaded, so a plain counter suffices.
type refCount struct {
	n int
}

func newRefCount() *refCount { return &refCount{n: 1} }

func (r *refCount) retain() { r.n++ }

// release reports whether this was the last reference.
func (r *refCount) release() bool {
	if r.n <= 0 {
		panic("glitz: release of an already released object")
	}
	r.n--
	return r.n == 0
}
