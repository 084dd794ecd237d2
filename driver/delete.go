// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "github.com/go-glitz/glitz/gl"

// Deleting an object implicitly unbinds it from every binding point it
// occupies, so each delete scrubs the matching cache entries along with
// issuing the driver call. These run through the drop task queue; they are
// applied immediately rather than deferred because a delete never needs to
// be elided.

func (s *State) DeleteBuffer(ctx gl.Context, b gl.Buffer) {
	ctx.DeleteBuffer(b)
	if b.Equal(s.boundArrayBuffer) {
		s.boundArrayBuffer = gl.Buffer{}
	}
	if b.Equal(s.boundElementArrayBuffer) {
		s.boundElementArrayBuffer = gl.Buffer{}
	}
	if b.Equal(s.boundCopyReadBuffer) {
		s.boundCopyReadBuffer = gl.Buffer{}
	}
	if b.Equal(s.boundCopyWriteBuffer) {
		s.boundCopyWriteBuffer = gl.Buffer{}
	}
	if b.Equal(s.boundPixelPackBuffer) {
		s.boundPixelPackBuffer = gl.Buffer{}
	}
	if b.Equal(s.boundPixelUnpackBuffer) {
		s.boundPixelUnpackBuffer = gl.Buffer{}
	}
	for i, r := range s.boundTransformFeedbackBuffers {
		if b.Equal(r.Buffer) {
			s.boundTransformFeedbackBuffers[i] = BufferRange{}
		}
	}
	for i, r := range s.boundUniformBuffers {
		if b.Equal(r.Buffer) {
			s.boundUniformBuffers[i] = BufferRange{}
		}
	}
}

func (s *State) DeleteFramebuffer(ctx gl.Context, f gl.Framebuffer) {
	ctx.DeleteFramebuffer(f)
	if f.Equal(s.boundDrawFramebuffer) {
		s.boundDrawFramebuffer = gl.Framebuffer{}
	}
	if f.Equal(s.boundReadFramebuffer) {
		s.boundReadFramebuffer = gl.Framebuffer{}
	}
}

func (s *State) DeleteRenderbuffer(ctx gl.Context, r gl.Renderbuffer) {
	ctx.DeleteRenderbuffer(r)
	if r.Equal(s.boundRenderbuffer) {
		s.boundRenderbuffer = gl.Renderbuffer{}
	}
}

func (s *State) DeleteTexture(ctx gl.Context, t gl.Texture) {
	ctx.DeleteTexture(t)
	if t.Equal(s.boundTexture2D) {
		s.boundTexture2D = gl.Texture{}
	}
	if t.Equal(s.boundTexture2DArray) {
		s.boundTexture2DArray = gl.Texture{}
	}
	if t.Equal(s.boundTexture3D) {
		s.boundTexture3D = gl.Texture{}
	}
	if t.Equal(s.boundTextureCubeMap) {
		s.boundTextureCubeMap = gl.Texture{}
	}
	for i, occupant := range s.textureUnitTextures {
		if t.Equal(occupant) {
			s.textureUnitTextures[i] = gl.Texture{}
		}
	}
}

func (s *State) DeleteSampler(ctx gl.Context, sm gl.Sampler) {
	ctx.DeleteSampler(sm)
	for i, bound := range s.boundSamplers {
		if sm.Equal(bound) {
			s.boundSamplers[i] = gl.Sampler{}
		}
	}
}

func (s *State) DeleteProgram(ctx gl.Context, p gl.Program) {
	ctx.DeleteProgram(p)
	if p.Equal(s.activeProgram) {
		s.activeProgram = gl.Program{}
	}
}

func (s *State) DeleteVertexArray(ctx gl.Context, a gl.VertexArray) {
	ctx.DeleteVertexArray(a)
	if a.Equal(s.boundVertexArray) {
		s.boundVertexArray = gl.VertexArray{}
	}
}
