//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides an in-memory gl.Context for tests. It allocates
// creation-order handle ids, keeps buffer and texture backing stores so
// copies and readbacks round-trip real bytes, records every call, and
// leaves fence signaling under test control.
package gltest

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/go-glitz/glitz/gl"
)

type texture struct {
	width  int
	height int
	levels [][]byte
}

// Context implements gl.Context. The zero value is not usable; use New.
type Context struct {
	// Calls records every call in invocation order, formatted as
	// "Name(arg, ...)".
	Calls []string

	// Status is returned by CheckFramebufferStatus.
	Status gl.Enum

	nextID uint

	buffers      map[uint][]byte
	boundBuffers map[gl.Enum]uint

	textures     map[uint]*texture
	boundTexture map[gl.Enum]uint

	framebuffers  map[uint]bool
	renderbuffers map[uint]bool
	samplers      map[uint]bool
	programs      map[uint]bool
	vertexArrays  map[uint]bool

	fences    map[uint]bool
	fenceIDs  []uint
	params    map[gl.Enum]int
	drawing   [2]int
	samplerPs map[uint]map[gl.Enum]int
}

func New() *Context {
	return &Context{
		Status:        gl.FRAMEBUFFER_COMPLETE,
		buffers:       make(map[uint][]byte),
		boundBuffers:  make(map[gl.Enum]uint),
		textures:      make(map[uint]*texture),
		boundTexture:  make(map[gl.Enum]uint),
		framebuffers:  make(map[uint]bool),
		renderbuffers: make(map[uint]bool),
		samplers:      make(map[uint]bool),
		programs:      make(map[uint]bool),
		vertexArrays:  make(map[uint]bool),
		fences:        make(map[uint]bool),
		samplerPs:     make(map[uint]map[gl.Enum]int),
		params: map[gl.Enum]int{
			gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:        32,
			gl.MAX_UNIFORM_BUFFER_BINDINGS:             24,
			gl.MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS: 4,
			gl.MAX_DRAW_BUFFERS:                        8,
			gl.MAX_COLOR_ATTACHMENTS:                   8,
			gl.MAX_TEXTURE_SIZE:                        4096,
		},
		drawing: [2]int{640, 480},
	}
}

func (c *Context) log(format string, args ...any) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls have the given name.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if len(call) > len(name) && call[:len(name)] == name && call[len(name)] == '(' {
			n++
		}
	}
	return n
}

// Reset clears the call log without touching object state.
func (c *Context) Reset() {
	c.Calls = nil
}

func (c *Context) id() uint {
	c.nextID++
	return c.nextID
}

// LiveBuffers returns the ids of all undeleted buffers in ascending order.
func (c *Context) LiveBuffers() []uint {
	ids := maps.Keys(c.buffers)
	slices.Sort(ids)
	return ids
}

// SetParameter overrides a GetParameteri value; call before driver.NewState.
func (c *Context) SetParameter(pname gl.Enum, value int) {
	c.params[pname] = value
}

// Fence control.

// PendingFences returns the ids of undeleted fences in creation order.
func (c *Context) PendingFences() []uint {
	var ids []uint
	for _, id := range c.fenceIDs {
		if _, ok := c.fences[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// SignalAll marks every outstanding fence signalled.
func (c *Context) SignalAll() {
	for id := range c.fences {
		c.fences[id] = true
	}
}

// SignalNext marks the oldest unsignalled fence signalled.
func (c *Context) SignalNext() {
	for _, id := range c.fenceIDs {
		if signalled, ok := c.fences[id]; ok && !signalled {
			c.fences[id] = true
			return
		}
	}
}

// Signal marks one specific fence signalled, regardless of creation order.
func (c *Context) Signal(s gl.Sync) {
	if _, ok := c.fences[s.V]; !ok {
		panic("gltest: signal of unknown fence")
	}
	c.fences[s.V] = true
}

func (c *Context) FenceSync() gl.Sync {
	id := c.id()
	c.fences[id] = false
	c.fenceIDs = append(c.fenceIDs, id)
	c.log("FenceSync() = %d", id)
	return gl.Sync{V: id}
}

func (c *Context) GetSyncParameteri(s gl.Sync, pname gl.Enum) int {
	if pname == gl.SYNC_STATUS {
		if c.fences[s.V] {
			return gl.SIGNALED
		}
		return gl.UNSIGNALED
	}
	return 0
}

func (c *Context) DeleteSync(s gl.Sync) {
	delete(c.fences, s.V)
	c.log("DeleteSync(%d)", s.V)
}

// Buffers.

func (c *Context) CreateBuffer() gl.Buffer {
	id := c.id()
	c.buffers[id] = nil
	c.log("CreateBuffer() = %d", id)
	return gl.Buffer{V: id}
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.boundBuffers[target] = b.V
	c.log("BindBuffer(0x%x, %d)", uint(target), b.V)
}

func (c *Context) BindBufferBase(target gl.Enum, index int, b gl.Buffer) {
	c.boundBuffers[target] = b.V
	c.log("BindBufferBase(0x%x, %d, %d)", uint(target), index, b.V)
}

func (c *Context) BindBufferRange(target gl.Enum, index int, b gl.Buffer, offset, size int) {
	c.boundBuffers[target] = b.V
	c.log("BindBufferRange(0x%x, %d, %d, %d, %d)", uint(target), index, b.V, offset, size)
}

func (c *Context) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	backing := make([]byte, size)
	copy(backing, data)
	c.buffers[c.boundBuffers[target]] = backing
	c.log("BufferData(0x%x, %d, 0x%x)", uint(target), size, uint(usage))
}

func (c *Context) BufferSubData(target gl.Enum, offset int, src []byte) {
	copy(c.buffers[c.boundBuffers[target]][offset:], src)
	c.log("BufferSubData(0x%x, %d, %d bytes)", uint(target), offset, len(src))
}

func (c *Context) GetBufferSubData(target gl.Enum, offset int, dst []byte) {
	copy(dst, c.buffers[c.boundBuffers[target]][offset:])
	c.log("GetBufferSubData(0x%x, %d, %d bytes)", uint(target), offset, len(dst))
}

func (c *Context) CopyBufferSubData(readTarget, writeTarget gl.Enum, readOffset, writeOffset, size int) {
	src := c.buffers[c.boundBuffers[readTarget]]
	dst := c.buffers[c.boundBuffers[writeTarget]]
	copy(dst[writeOffset:writeOffset+size], src[readOffset:])
	c.log("CopyBufferSubData(0x%x, 0x%x, %d, %d, %d)", uint(readTarget), uint(writeTarget), readOffset, writeOffset, size)
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	delete(c.buffers, b.V)
	c.log("DeleteBuffer(%d)", b.V)
}

// Framebuffers.

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	id := c.id()
	c.framebuffers[id] = true
	c.log("CreateFramebuffer() = %d", id)
	return gl.Framebuffer{V: id}
}

func (c *Context) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	c.log("BindFramebuffer(0x%x, %d)", uint(target), f.V)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	c.log("FramebufferTexture2D(0x%x, 0x%x, 0x%x, %d, %d)", uint(target), uint(attachment), uint(texTarget), t.V, level)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, r gl.Renderbuffer) {
	c.log("FramebufferRenderbuffer(0x%x, 0x%x, 0x%x, %d)", uint(target), uint(attachment), uint(rbTarget), r.V)
}

func (c *Context) DrawBuffers(bufs []gl.Enum) {
	c.log("DrawBuffers(%d bufs)", len(bufs))
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	c.log("CheckFramebufferStatus(0x%x)", uint(target))
	return c.Status
}

func (c *Context) DeleteFramebuffer(f gl.Framebuffer) {
	delete(c.framebuffers, f.V)
	c.log("DeleteFramebuffer(%d)", f.V)
}

// Renderbuffers.

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	id := c.id()
	c.renderbuffers[id] = true
	c.log("CreateRenderbuffer() = %d", id)
	return gl.Renderbuffer{V: id}
}

func (c *Context) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {
	c.log("BindRenderbuffer(0x%x, %d)", uint(target), r.V)
}

func (c *Context) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	c.log("RenderbufferStorage(0x%x, 0x%x, %d, %d)", uint(target), uint(internalformat), width, height)
}

func (c *Context) DeleteRenderbuffer(r gl.Renderbuffer) {
	delete(c.renderbuffers, r.V)
	c.log("DeleteRenderbuffer(%d)", r.V)
}

// Textures.

func (c *Context) CreateTexture() gl.Texture {
	id := c.id()
	c.textures[id] = &texture{}
	c.log("CreateTexture() = %d", id)
	return gl.Texture{V: id}
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	c.log("ActiveTexture(0x%x)", uint(unit))
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.boundTexture[target] = t.V
	c.log("BindTexture(0x%x, %d)", uint(target), t.V)
}

func (c *Context) TexStorage2D(target gl.Enum, levels int, internalformat gl.Enum, width, height int) {
	t := c.textures[c.boundTexture[target]]
	t.width, t.height = width, height
	t.levels = make([][]byte, levels)
	for l := range t.levels {
		w, h := width>>l, height>>l
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		t.levels[l] = make([]byte, w*h*4)
	}
	c.log("TexStorage2D(0x%x, %d, 0x%x, %d, %d)", uint(target), levels, uint(internalformat), width, height)
}

func (c *Context) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	t := c.textures[c.boundTexture[target]]
	lw := t.width >> level
	if lw < 1 {
		lw = 1
	}
	for row := 0; row < height; row++ {
		dst := t.levels[level][((y+row)*lw+x)*4:]
		copy(dst[:width*4], data[row*width*4:])
	}
	c.log("TexSubImage2D(0x%x, %d, %d, %d, %d, %d)", uint(target), level, x, y, width, height)
}

// TexturePixels returns the tightly packed RGBA backing of one level.
func (c *Context) TexturePixels(t gl.Texture, level int) []byte {
	return c.textures[t.V].levels[level]
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	c.log("PixelStorei(0x%x, %d)", uint(pname), param)
}

func (c *Context) DeleteTexture(t gl.Texture) {
	delete(c.textures, t.V)
	c.log("DeleteTexture(%d)", t.V)
}

// Samplers.

func (c *Context) CreateSampler() gl.Sampler {
	id := c.id()
	c.samplers[id] = true
	c.samplerPs[id] = make(map[gl.Enum]int)
	c.log("CreateSampler() = %d", id)
	return gl.Sampler{V: id}
}

func (c *Context) BindSampler(unit int, s gl.Sampler) {
	c.log("BindSampler(%d, %d)", unit, s.V)
}

func (c *Context) SamplerParameteri(s gl.Sampler, pname gl.Enum, param int) {
	c.samplerPs[s.V][pname] = param
	c.log("SamplerParameteri(%d, 0x%x, %d)", s.V, uint(pname), param)
}

// SamplerParameter returns a parameter previously set on the sampler.
func (c *Context) SamplerParameter(s gl.Sampler, pname gl.Enum) int {
	return c.samplerPs[s.V][pname]
}

func (c *Context) DeleteSampler(s gl.Sampler) {
	delete(c.samplers, s.V)
	delete(c.samplerPs, s.V)
	c.log("DeleteSampler(%d)", s.V)
}

// Programs, shaders, vertex arrays, transform feedback.

func (c *Context) CreateProgram() gl.Program {
	id := c.id()
	c.programs[id] = true
	c.log("CreateProgram() = %d", id)
	return gl.Program{V: id}
}

func (c *Context) UseProgram(p gl.Program) {
	c.log("UseProgram(%d)", p.V)
}

func (c *Context) DeleteProgram(p gl.Program) {
	delete(c.programs, p.V)
	c.log("DeleteProgram(%d)", p.V)
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.log("DeleteShader(%d)", s.V)
}

func (c *Context) CreateVertexArray() gl.VertexArray {
	id := c.id()
	c.vertexArrays[id] = true
	c.log("CreateVertexArray() = %d", id)
	return gl.VertexArray{V: id}
}

func (c *Context) BindVertexArray(a gl.VertexArray) {
	c.log("BindVertexArray(%d)", a.V)
}

func (c *Context) DeleteVertexArray(a gl.VertexArray) {
	delete(c.vertexArrays, a.V)
	c.log("DeleteVertexArray(%d)", a.V)
}

func (c *Context) BindTransformFeedback(target gl.Enum, tf gl.TransformFeedback) {
	c.log("BindTransformFeedback(0x%x, %d)", uint(target), tf.V)
}

// Scalar state. These only need to show up in the call log.

func (c *Context) Enable(cap gl.Enum)  { c.log("Enable(0x%x)", uint(cap)) }
func (c *Context) Disable(cap gl.Enum) { c.log("Disable(0x%x)", uint(cap)) }

func (c *Context) ClearColor(r, g, b, a float32) {
	c.log("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (c *Context) ClearDepthf(d float32) { c.log("ClearDepthf(%g)", d) }
func (c *Context) ClearStencil(s int)    { c.log("ClearStencil(%d)", s) }

func (c *Context) BlendColor(r, g, b, a float32) {
	c.log("BlendColor(%g, %g, %g, %g)", r, g, b, a)
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	c.log("BlendEquationSeparate(0x%x, 0x%x)", uint(modeRGB), uint(modeAlpha))
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	c.log("BlendFuncSeparate(0x%x, 0x%x, 0x%x, 0x%x)", uint(srcRGB), uint(dstRGB), uint(srcA), uint(dstA))
}

func (c *Context) DepthFunc(fn gl.Enum) { c.log("DepthFunc(0x%x)", uint(fn)) }
func (c *Context) DepthMask(mask bool)  { c.log("DepthMask(%t)", mask) }

func (c *Context) DepthRangef(near, far float32) {
	c.log("DepthRangef(%g, %g)", near, far)
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	c.log("StencilFuncSeparate(0x%x, 0x%x, %d, 0x%x)", uint(face), uint(fn), ref, mask)
}

func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	c.log("StencilOpSeparate(0x%x, 0x%x, 0x%x, 0x%x)", uint(face), uint(sfail), uint(dpfail), uint(dppass))
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	c.log("StencilMaskSeparate(0x%x, 0x%x)", uint(face), mask)
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.log("PolygonOffset(%g, %g)", factor, units)
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	c.log("SampleCoverage(%g, %t)", value, invert)
}

func (c *Context) LineWidth(w float32) { c.log("LineWidth(%g)", w) }

func (c *Context) Viewport(x, y, width, height int) {
	c.log("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (c *Context) Scissor(x, y, width, height int) {
	c.log("Scissor(%d, %d, %d, %d)", x, y, width, height)
}

func (c *Context) FrontFace(mode gl.Enum) { c.log("FrontFace(0x%x)", uint(mode)) }
func (c *Context) CullFace(mode gl.Enum)  { c.log("CullFace(0x%x)", uint(mode)) }

func (c *Context) GetParameteri(pname gl.Enum) int {
	return c.params[pname]
}

func (c *Context) DrawingBufferWidth() int  { return c.drawing[0] }
func (c *Context) DrawingBufferHeight() int { return c.drawing[1] }
