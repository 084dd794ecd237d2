//go:build js

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"syscall/js"
)

// Functions implements Context over a raw WebGL2RenderingContext js value.
type Functions struct {
	Ctx js.Value

	// Cached reference to the Uint8Array JS type and a reusable copy
	// buffer for marshalling byte slices across the js boundary.
	uint8Array js.Value
	arrayBuf   js.Value
}

// NewFunctions wraps ctx, which must be a WebGL2RenderingContext.
func NewFunctions(ctx js.Value) (*Functions, error) {
	webgl2Class := js.Global().Get("WebGL2RenderingContext")
	if webgl2Class.IsUndefined() || !ctx.InstanceOf(webgl2Class) {
		return nil, errors.New("gl: context is not a WebGL2RenderingContext")
	}
	return &Functions{
		Ctx:        ctx,
		uint8Array: js.Global().Get("Uint8Array"),
	}, nil
}

func (f *Functions) CreateBuffer() Buffer {
	return Buffer(f.Ctx.Call("createBuffer"))
}
func (f *Functions) BindBuffer(target Enum, b Buffer) {
	f.Ctx.Call("bindBuffer", int(target), js.Value(b))
}
func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) {
	f.Ctx.Call("bindBufferBase", int(target), index, js.Value(b))
}
func (f *Functions) BindBufferRange(target Enum, index int, b Buffer, offset, size int) {
	f.Ctx.Call("bindBufferRange", int(target), index, js.Value(b), offset, size)
}
func (f *Functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	if data == nil {
		f.Ctx.Call("bufferData", int(target), size, int(usage))
	} else {
		f.Ctx.Call("bufferData", int(target), f.byteArrayOf(data), int(usage))
	}
}
func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	f.Ctx.Call("bufferSubData", int(target), offset, f.byteArrayOf(src))
}
func (f *Functions) GetBufferSubData(target Enum, offset int, dst []byte) {
	ba := f.byteArrayOf(dst)
	f.Ctx.Call("getBufferSubData", int(target), offset, ba)
	js.CopyBytesToGo(dst, ba)
}
func (f *Functions) CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int) {
	f.Ctx.Call("copyBufferSubData", int(readTarget), int(writeTarget), readOffset, writeOffset, size)
}
func (f *Functions) DeleteBuffer(b Buffer) {
	f.Ctx.Call("deleteBuffer", js.Value(b))
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	return Framebuffer(f.Ctx.Call("createFramebuffer"))
}
func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	f.Ctx.Call("bindFramebuffer", int(target), js.Value(fb))
}
func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	f.Ctx.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), js.Value(t), level)
}
func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer) {
	f.Ctx.Call("framebufferRenderbuffer", int(target), int(attachment), int(rbTarget), js.Value(r))
}
func (f *Functions) DrawBuffers(bufs []Enum) {
	arr := js.Global().Get("Array").New(len(bufs))
	for i, b := range bufs {
		arr.SetIndex(i, int(b))
	}
	f.Ctx.Call("drawBuffers", arr)
}
func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.Ctx.Call("checkFramebufferStatus", int(target)).Int())
}
func (f *Functions) DeleteFramebuffer(fb Framebuffer) {
	f.Ctx.Call("deleteFramebuffer", js.Value(fb))
}

func (f *Functions) CreateRenderbuffer() Renderbuffer {
	return Renderbuffer(f.Ctx.Call("createRenderbuffer"))
}
func (f *Functions) BindRenderbuffer(target Enum, r Renderbuffer) {
	f.Ctx.Call("bindRenderbuffer", int(target), js.Value(r))
}
func (f *Functions) RenderbufferStorage(target, internalformat Enum, width, height int) {
	f.Ctx.Call("renderbufferStorage", int(target), int(internalformat), width, height)
}
func (f *Functions) DeleteRenderbuffer(r Renderbuffer) {
	f.Ctx.Call("deleteRenderbuffer", js.Value(r))
}

func (f *Functions) CreateTexture() Texture {
	return Texture(f.Ctx.Call("createTexture"))
}
func (f *Functions) ActiveTexture(unit Enum) {
	f.Ctx.Call("activeTexture", int(unit))
}
func (f *Functions) BindTexture(target Enum, t Texture) {
	f.Ctx.Call("bindTexture", int(target), js.Value(t))
}
func (f *Functions) TexStorage2D(target Enum, levels int, internalformat Enum, width, height int) {
	f.Ctx.Call("texStorage2D", int(target), levels, int(internalformat), width, height)
}
func (f *Functions) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) {
	f.Ctx.Call("texSubImage2D", int(target), level, x, y, width, height, int(format), int(ty), f.byteArrayOf(data))
}
func (f *Functions) PixelStorei(pname Enum, param int) {
	f.Ctx.Call("pixelStorei", int(pname), param)
}
func (f *Functions) DeleteTexture(t Texture) {
	f.Ctx.Call("deleteTexture", js.Value(t))
}

func (f *Functions) CreateSampler() Sampler {
	return Sampler(f.Ctx.Call("createSampler"))
}
func (f *Functions) BindSampler(unit int, s Sampler) {
	f.Ctx.Call("bindSampler", unit, js.Value(s))
}
func (f *Functions) SamplerParameteri(s Sampler, pname Enum, param int) {
	f.Ctx.Call("samplerParameteri", js.Value(s), int(pname), param)
}
func (f *Functions) DeleteSampler(s Sampler) {
	f.Ctx.Call("deleteSampler", js.Value(s))
}

func (f *Functions) CreateProgram() Program {
	return Program(f.Ctx.Call("createProgram"))
}
func (f *Functions) UseProgram(p Program) {
	f.Ctx.Call("useProgram", js.Value(p))
}
func (f *Functions) DeleteProgram(p Program) {
	f.Ctx.Call("deleteProgram", js.Value(p))
}
func (f *Functions) DeleteShader(s Shader) {
	f.Ctx.Call("deleteShader", js.Value(s))
}

func (f *Functions) CreateVertexArray() VertexArray {
	return VertexArray(f.Ctx.Call("createVertexArray"))
}
func (f *Functions) BindVertexArray(a VertexArray) {
	f.Ctx.Call("bindVertexArray", js.Value(a))
}
func (f *Functions) DeleteVertexArray(a VertexArray) {
	f.Ctx.Call("deleteVertexArray", js.Value(a))
}

func (f *Functions) BindTransformFeedback(target Enum, tf TransformFeedback) {
	f.Ctx.Call("bindTransformFeedback", int(target), js.Value(tf))
}

func (f *Functions) FenceSync() Sync {
	return Sync(f.Ctx.Call("fenceSync", SYNC_GPU_COMMANDS_COMPLETE, 0))
}
func (f *Functions) GetSyncParameteri(s Sync, pname Enum) int {
	return f.Ctx.Call("getSyncParameter", js.Value(s), int(pname)).Int()
}
func (f *Functions) DeleteSync(s Sync) {
	f.Ctx.Call("deleteSync", js.Value(s))
}

func (f *Functions) Enable(cap Enum) {
	f.Ctx.Call("enable", int(cap))
}
func (f *Functions) Disable(cap Enum) {
	f.Ctx.Call("disable", int(cap))
}
func (f *Functions) ClearColor(r, g, b, a float32) {
	f.Ctx.Call("clearColor", r, g, b, a)
}
func (f *Functions) ClearDepthf(d float32) {
	f.Ctx.Call("clearDepth", d)
}
func (f *Functions) ClearStencil(s int) {
	f.Ctx.Call("clearStencil", s)
}
func (f *Functions) BlendColor(r, g, b, a float32) {
	f.Ctx.Call("blendColor", r, g, b, a)
}
func (f *Functions) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	f.Ctx.Call("blendEquationSeparate", int(modeRGB), int(modeAlpha))
}
func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum) {
	f.Ctx.Call("blendFuncSeparate", int(srcRGB), int(dstRGB), int(srcA), int(dstA))
}
func (f *Functions) DepthFunc(fn Enum) {
	f.Ctx.Call("depthFunc", int(fn))
}
func (f *Functions) DepthMask(mask bool) {
	f.Ctx.Call("depthMask", mask)
}
func (f *Functions) DepthRangef(near, far float32) {
	f.Ctx.Call("depthRange", near, far)
}
func (f *Functions) StencilFuncSeparate(face, fn Enum, ref int, mask uint32) {
	f.Ctx.Call("stencilFuncSeparate", int(face), int(fn), ref, int(mask))
}
func (f *Functions) StencilOpSeparate(face, sfail, dpfail, dppass Enum) {
	f.Ctx.Call("stencilOpSeparate", int(face), int(sfail), int(dpfail), int(dppass))
}
func (f *Functions) StencilMaskSeparate(face Enum, mask uint32) {
	f.Ctx.Call("stencilMaskSeparate", int(face), int(mask))
}
func (f *Functions) PolygonOffset(factor, units float32) {
	f.Ctx.Call("polygonOffset", factor, units)
}
func (f *Functions) SampleCoverage(value float32, invert bool) {
	f.Ctx.Call("sampleCoverage", value, invert)
}
func (f *Functions) LineWidth(w float32) {
	f.Ctx.Call("lineWidth", w)
}
func (f *Functions) Viewport(x, y, width, height int) {
	f.Ctx.Call("viewport", x, y, width, height)
}
func (f *Functions) Scissor(x, y, width, height int) {
	f.Ctx.Call("scissor", x, y, width, height)
}
func (f *Functions) FrontFace(mode Enum) {
	f.Ctx.Call("frontFace", int(mode))
}
func (f *Functions) CullFace(mode Enum) {
	f.Ctx.Call("cullFace", int(mode))
}

func (f *Functions) GetParameteri(pname Enum) int {
	return paramVal(f.Ctx.Call("getParameter", int(pname)))
}
func (f *Functions) DrawingBufferWidth() int {
	return f.Ctx.Get("drawingBufferWidth").Int()
}
func (f *Functions) DrawingBufferHeight() int {
	return f.Ctx.Get("drawingBufferHeight").Int()
}

func paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	default:
		panic("gl: unknown parameter type")
	}
}

func (f *Functions) byteArrayOf(data []byte) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	f.resizeByteBuffer(len(data))
	ba := f.uint8Array.New(f.arrayBuf, int(0), int(len(data)))
	js.CopyBytesToJS(ba, data)
	return ba
}

func (f *Functions) resizeByteBuffer(n int) {
	if n == 0 {
		return
	}
	if !f.arrayBuf.IsUndefined() && f.arrayBuf.Length() >= n {
		return
	}
	f.arrayBuf = js.Global().Get("ArrayBuffer").New(n)
}
