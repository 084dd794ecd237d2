// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Context is the projection of a WebGL2 rendering context that the glitz
// runtime calls into. On js it is implemented by *Functions over a raw
// WebGL2RenderingContext; tests implement it with an in-memory fake.
//
// Any state-changing call made outside a driver.State setter desynchronizes
// the runtime's state cache; see driver.Connection.
type Context interface {
	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index int, b Buffer)
	BindBufferRange(target Enum, index int, b Buffer, offset, size int)
	BufferData(target Enum, size int, usage Enum, data []byte)
	BufferSubData(target Enum, offset int, src []byte)
	GetBufferSubData(target Enum, offset int, dst []byte)
	CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int)
	DeleteBuffer(b Buffer)

	CreateFramebuffer() Framebuffer
	BindFramebuffer(target Enum, f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer)
	DrawBuffers(bufs []Enum)
	CheckFramebufferStatus(target Enum) Enum
	DeleteFramebuffer(f Framebuffer)

	CreateRenderbuffer() Renderbuffer
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorage(target, internalformat Enum, width, height int)
	DeleteRenderbuffer(r Renderbuffer)

	CreateTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexStorage2D(target Enum, levels int, internalformat Enum, width, height int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte)
	PixelStorei(pname Enum, param int)
	DeleteTexture(t Texture)

	CreateSampler() Sampler
	BindSampler(unit int, s Sampler)
	SamplerParameteri(s Sampler, pname Enum, param int)
	DeleteSampler(s Sampler)

	CreateProgram() Program
	UseProgram(p Program)
	DeleteProgram(p Program)
	DeleteShader(s Shader)

	CreateVertexArray() VertexArray
	BindVertexArray(a VertexArray)
	DeleteVertexArray(a VertexArray)

	BindTransformFeedback(target Enum, tf TransformFeedback)

	FenceSync() Sync
	GetSyncParameteri(s Sync, pname Enum) int
	DeleteSync(s Sync)

	Enable(cap Enum)
	Disable(cap Enum)
	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	ClearStencil(s int)
	BlendColor(r, g, b, a float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	DepthRangef(near, far float32)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	StencilMaskSeparate(face Enum, mask uint32)
	PolygonOffset(factor, units float32)
	SampleCoverage(value float32, invert bool)
	LineWidth(w float32)
	Viewport(x, y, width, height int)
	Scissor(x, y, width, height int)
	FrontFace(mode Enum)
	CullFace(mode Enum)

	GetParameteri(pname Enum) int
	DrawingBufferWidth() int
	DrawingBufferHeight() int
}
