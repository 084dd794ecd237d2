// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "github.com/go-glitz/glitz/gl"

// StencilFunc is the per-face stencil test configuration.
type StencilFunc struct {
	Func gl.Enum
	Ref  int
	Mask uint32
}

// StencilOp is the per-face stencil operation configuration.
type StencilOp struct {
	Fail  gl.Enum
	ZFail gl.Enum
	ZPass gl.Enum
}

// State mirrors every piece of mutable context state the runtime manages.
// Each slot has a getter returning the currently believed value and a setter
// that compares against the cache, records the new value and returns the
// deferred driver call, or nil when the value is already current.
//
// The cache is coherent only as long as every state-changing driver call
// goes through a setter. Code that calls the context directly must bring the
// cache back in sync before the next task progresses.
type State struct {
	maxDrawBuffers      int
	maxColorAttachments int
	maxTextureUnits     int

	activeProgram           gl.Program
	boundArrayBuffer        gl.Buffer
	boundElementArrayBuffer gl.Buffer
	boundCopyReadBuffer     gl.Buffer
	boundCopyWriteBuffer    gl.Buffer
	boundPixelPackBuffer    gl.Buffer
	boundPixelUnpackBuffer  gl.Buffer

	boundTransformFeedbackBuffers []BufferRange
	boundUniformBuffers           []BufferRange
	activeUniformBufferIndex      int
	uniformBufferIndexLRU         *IndexLRU

	boundDrawFramebuffer gl.Framebuffer
	boundReadFramebuffer gl.Framebuffer
	boundRenderbuffer    gl.Renderbuffer

	boundTexture2D      gl.Texture
	boundTexture2DArray gl.Texture
	boundTexture3D      gl.Texture
	boundTextureCubeMap gl.Texture
	boundSamplers       []gl.Sampler
	textureUnitsLRU     *IndexLRU
	textureUnitTextures []gl.Texture
	activeTexture       int

	boundVertexArray       gl.VertexArray
	boundTransformFeedback gl.TransformFeedback

	clearColor   [4]float32
	clearDepth   float32
	clearStencil int

	depthTest             bool
	stencilTest           bool
	scissorTest           bool
	blend                 bool
	dither                bool
	polygonOffsetFill     bool
	sampleAlphaToCoverage bool
	sampleCoverage        bool
	rasterizerDiscard     bool

	depthFunc     gl.Enum
	depthMask     bool
	depthRange    [2]float32
	polygonOffset [2]float32

	stencilFuncFront      StencilFunc
	stencilFuncBack       StencilFunc
	stencilOpFront        StencilOp
	stencilOpBack         StencilOp
	stencilWriteMaskFront uint32
	stencilWriteMaskBack  uint32

	blendColor           [4]float32
	blendEquationRGB     gl.Enum
	blendEquationAlpha   gl.Enum
	blendFuncSrcRGB      gl.Enum
	blendFuncSrcAlpha    gl.Enum
	blendFuncDstRGB      gl.Enum
	blendFuncDstAlpha    gl.Enum

	lineWidth float32

	pixelUnpackAlignment   int
	pixelUnpackRowLength   int
	pixelUnpackImageHeight int

	scissor  [4]int
	viewport [4]int

	frontFace gl.Enum
	// cullFace is gl.NONE while face culling is disabled.
	cullFace gl.Enum
}

// NewState builds a cache mirroring the initial state of a freshly created
// WebGL2 context, sized from the context's actual limits.
func NewState(ctx gl.Context) *State {
	maxTextureUnits := ctx.GetParameteri(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	maxUniformBindings := ctx.GetParameteri(gl.MAX_UNIFORM_BUFFER_BINDINGS)
	maxTransformFeedback := ctx.GetParameteri(gl.MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS)
	return &State{
		maxDrawBuffers:      ctx.GetParameteri(gl.MAX_DRAW_BUFFERS),
		maxColorAttachments: ctx.GetParameteri(gl.MAX_COLOR_ATTACHMENTS),
		maxTextureUnits:     maxTextureUnits,

		boundTransformFeedbackBuffers: make([]BufferRange, maxTransformFeedback),
		boundUniformBuffers:           make([]BufferRange, maxUniformBindings),
		uniformBufferIndexLRU:         NewIndexLRU(maxUniformBindings),

		boundSamplers:       make([]gl.Sampler, maxTextureUnits),
		textureUnitsLRU:     NewIndexLRU(maxTextureUnits),
		textureUnitTextures: make([]gl.Texture, maxTextureUnits),

		clearColor:   [4]float32{0, 0, 0, 0},
		clearDepth:   1,
		clearStencil: 0,

		dither: true,

		depthFunc:  gl.LESS,
		depthMask:  true,
		depthRange: [2]float32{0, 1},

		stencilFuncFront:      StencilFunc{Func: gl.ALWAYS, Ref: 0, Mask: 0xffffffff},
		stencilFuncBack:       StencilFunc{Func: gl.ALWAYS, Ref: 0, Mask: 0xffffffff},
		stencilOpFront:        StencilOp{Fail: gl.KEEP, ZFail: gl.KEEP, ZPass: gl.KEEP},
		stencilOpBack:         StencilOp{Fail: gl.KEEP, ZFail: gl.KEEP, ZPass: gl.KEEP},
		stencilWriteMaskFront: 0xffffffff,
		stencilWriteMaskBack:  0xffffffff,

		blendEquationRGB:   gl.FUNC_ADD,
		blendEquationAlpha: gl.FUNC_ADD,
		blendFuncSrcRGB:    gl.ONE,
		blendFuncSrcAlpha:  gl.ONE,
		blendFuncDstRGB:    gl.ZERO,
		blendFuncDstAlpha:  gl.ZERO,

		lineWidth: 1,

		pixelUnpackAlignment: 4,

		viewport:  [4]int{0, 0, ctx.DrawingBufferWidth(), ctx.DrawingBufferHeight()},
		frontFace: gl.CCW,
		cullFace:  gl.NONE,
	}
}

// MaxDrawBuffers returns the driver-reported draw buffer limit.
func (s *State) MaxDrawBuffers() int { return s.maxDrawBuffers }

// MaxColorAttachments returns the driver-reported color attachment limit.
func (s *State) MaxColorAttachments() int { return s.maxColorAttachments }

// MaxTextureUnits returns the driver-reported combined texture unit count.
func (s *State) MaxTextureUnits() int { return s.maxTextureUnits }

func (s *State) ActiveProgram() gl.Program { return s.activeProgram }

func (s *State) UseProgram(p gl.Program) ContextUpdate {
	if p.Equal(s.activeProgram) {
		return nil
	}
	s.activeProgram = p
	return func(ctx gl.Context) error {
		ctx.UseProgram(p)
		return nil
	}
}

func (s *State) BoundArrayBuffer() gl.Buffer { return s.boundArrayBuffer }

func (s *State) BindArrayBuffer(b gl.Buffer) ContextUpdate {
	if b.Equal(s.boundArrayBuffer) {
		return nil
	}
	s.boundArrayBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.ARRAY_BUFFER, b)
		return nil
	}
}

func (s *State) BoundElementArrayBuffer() gl.Buffer { return s.boundElementArrayBuffer }

// BindElementArrayBuffer caches the element array binding. While a vertex
// array object is bound the element array binding belongs to the VAO, so the
// cached value cannot be trusted and the bind is always issued.
func (s *State) BindElementArrayBuffer(b gl.Buffer) ContextUpdate {
	if !s.boundVertexArray.Valid() && b.Equal(s.boundElementArrayBuffer) {
		return nil
	}
	s.boundElementArrayBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
		return nil
	}
}

func (s *State) BoundCopyReadBuffer() gl.Buffer { return s.boundCopyReadBuffer }

func (s *State) BindCopyReadBuffer(b gl.Buffer) ContextUpdate {
	if b.Equal(s.boundCopyReadBuffer) {
		return nil
	}
	s.boundCopyReadBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.COPY_READ_BUFFER, b)
		return nil
	}
}

func (s *State) BoundCopyWriteBuffer() gl.Buffer { return s.boundCopyWriteBuffer }

func (s *State) BindCopyWriteBuffer(b gl.Buffer) ContextUpdate {
	if b.Equal(s.boundCopyWriteBuffer) {
		return nil
	}
	s.boundCopyWriteBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.COPY_WRITE_BUFFER, b)
		return nil
	}
}

func (s *State) BoundPixelPackBuffer() gl.Buffer { return s.boundPixelPackBuffer }

func (s *State) BindPixelPackBuffer(b gl.Buffer) ContextUpdate {
	if b.Equal(s.boundPixelPackBuffer) {
		return nil
	}
	s.boundPixelPackBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.PIXEL_PACK_BUFFER, b)
		return nil
	}
}

func (s *State) BoundPixelUnpackBuffer() gl.Buffer { return s.boundPixelUnpackBuffer }

func (s *State) BindPixelUnpackBuffer(b gl.Buffer) ContextUpdate {
	if b.Equal(s.boundPixelUnpackBuffer) {
		return nil
	}
	s.boundPixelUnpackBuffer = b
	return func(ctx gl.Context) error {
		ctx.BindBuffer(gl.PIXEL_UNPACK_BUFFER, b)
		return nil
	}
}

func (s *State) BoundTransformFeedbackBuffer(index int) BufferRange {
	return s.boundTransformFeedbackBuffers[index]
}

func (s *State) BindTransformFeedbackBuffer(index int, r BufferRange) ContextUpdate {
	if r.Equal(s.boundTransformFeedbackBuffers[index]) {
		return nil
	}
	s.boundTransformFeedbackBuffers[index] = r
	return func(ctx gl.Context) error {
		r.bind(ctx, gl.TRANSFORM_FEEDBACK_BUFFER, index)
		return nil
	}
}

func (s *State) ActiveUniformBufferIndex() int { return s.activeUniformBufferIndex }

// SetActiveUniformBufferIndex selects the binding point that the next
// BindUniformBuffer call targets. Purely bookkeeping; no driver call.
func (s *State) SetActiveUniformBufferIndex(index int) {
	s.uniformBufferIndexLRU.UseIndex(index)
	s.activeUniformBufferIndex = index
}

// SetActiveUniformBufferIndexLRU selects the least recently used uniform
// buffer binding point, for callers that need some binding point rather
// than a specific one.
func (s *State) SetActiveUniformBufferIndexLRU() int {
	s.activeUniformBufferIndex = s.uniformBufferIndexLRU.UseLRUIndex()
	return s.activeUniformBufferIndex
}

func (s *State) BoundUniformBuffer(index int) BufferRange {
	return s.boundUniformBuffers[index]
}

func (s *State) BindUniformBuffer(r BufferRange) ContextUpdate {
	index := s.activeUniformBufferIndex
	if r.Equal(s.boundUniformBuffers[index]) {
		return nil
	}
	s.boundUniformBuffers[index] = r
	return func(ctx gl.Context) error {
		r.bind(ctx, gl.UNIFORM_BUFFER, index)
		return nil
	}
}

func (s *State) BoundDrawFramebuffer() gl.Framebuffer { return s.boundDrawFramebuffer }

func (s *State) BindDrawFramebuffer(f gl.Framebuffer) ContextUpdate {
	if f.Equal(s.boundDrawFramebuffer) {
		return nil
	}
	s.boundDrawFramebuffer = f
	return func(ctx gl.Context) error {
		ctx.BindFramebuffer(gl.DRAW_FRAMEBUFFER, f)
		return nil
	}
}

func (s *State) BoundReadFramebuffer() gl.Framebuffer { return s.boundReadFramebuffer }

func (s *State) BindReadFramebuffer(f gl.Framebuffer) ContextUpdate {
	if f.Equal(s.boundReadFramebuffer) {
		return nil
	}
	s.boundReadFramebuffer = f
	return func(ctx gl.Context) error {
		ctx.BindFramebuffer(gl.READ_FRAMEBUFFER, f)
		return nil
	}
}

func (s *State) BoundRenderbuffer() gl.Renderbuffer { return s.boundRenderbuffer }

func (s *State) BindRenderbuffer(r gl.Renderbuffer) ContextUpdate {
	if r.Equal(s.boundRenderbuffer) {
		return nil
	}
	s.boundRenderbuffer = r
	return func(ctx gl.Context) error {
		ctx.BindRenderbuffer(gl.RENDERBUFFER, r)
		return nil
	}
}

func (s *State) BoundTexture2D() gl.Texture { return s.boundTexture2D }

// BindTexture2D binds t to the TEXTURE_2D target of the active texture
// unit. The per-unit occupancy record is updated as well, since a target
// bind is only visible on the unit that is currently active.
func (s *State) BindTexture2D(t gl.Texture) ContextUpdate {
	unit := &s.textureUnitTextures[s.activeTexture]
	if t.Equal(s.boundTexture2D) && t.Equal(*unit) {
		return nil
	}
	s.boundTexture2D = t
	*unit = t
	return func(ctx gl.Context) error {
		ctx.BindTexture(gl.TEXTURE_2D, t)
		return nil
	}
}

func (s *State) BoundTexture2DArray() gl.Texture { return s.boundTexture2DArray }

func (s *State) BindTexture2DArray(t gl.Texture) ContextUpdate {
	unit := &s.textureUnitTextures[s.activeTexture]
	if t.Equal(s.boundTexture2DArray) && t.Equal(*unit) {
		return nil
	}
	s.boundTexture2DArray = t
	*unit = t
	return func(ctx gl.Context) error {
		ctx.BindTexture(gl.TEXTURE_2D_ARRAY, t)
		return nil
	}
}

func (s *State) BoundTexture3D() gl.Texture { return s.boundTexture3D }

func (s *State) BindTexture3D(t gl.Texture) ContextUpdate {
	unit := &s.textureUnitTextures[s.activeTexture]
	if t.Equal(s.boundTexture3D) && t.Equal(*unit) {
		return nil
	}
	s.boundTexture3D = t
	*unit = t
	return func(ctx gl.Context) error {
		ctx.BindTexture(gl.TEXTURE_3D, t)
		return nil
	}
}

func (s *State) BoundTextureCubeMap() gl.Texture { return s.boundTextureCubeMap }

func (s *State) BindTextureCubeMap(t gl.Texture) ContextUpdate {
	unit := &s.textureUnitTextures[s.activeTexture]
	if t.Equal(s.boundTextureCubeMap) && t.Equal(*unit) {
		return nil
	}
	s.boundTextureCubeMap = t
	*unit = t
	return func(ctx gl.Context) error {
		ctx.BindTexture(gl.TEXTURE_CUBE_MAP, t)
		return nil
	}
}

func (s *State) BoundSampler(unit int) gl.Sampler { return s.boundSamplers[unit] }

func (s *State) BindSampler(unit int, sm gl.Sampler) ContextUpdate {
	if sm.Equal(s.boundSamplers[unit]) {
		return nil
	}
	s.boundSamplers[unit] = sm
	return func(ctx gl.Context) error {
		ctx.BindSampler(unit, sm)
		return nil
	}
}

func (s *State) ActiveTexture() int { return s.activeTexture }

func (s *State) SetActiveTexture(unit int) ContextUpdate {
	if unit == s.activeTexture {
		return nil
	}
	s.activeTexture = unit
	s.textureUnitsLRU.UseIndex(unit)
	return func(ctx gl.Context) error {
		ctx.ActiveTexture(TextureUnit(unit))
		return nil
	}
}

// SetActiveTextureLRU makes the least recently used texture unit active,
// for callers that need some free unit rather than a specific one. The
// returned update is always non-nil.
func (s *State) SetActiveTextureLRU() (int, ContextUpdate) {
	unit := s.textureUnitsLRU.UseLRUIndex()
	s.activeTexture = unit
	return unit, func(ctx gl.Context) error {
		ctx.ActiveTexture(TextureUnit(unit))
		return nil
	}
}

// TextureUnitTexture returns the texture believed to occupy the given unit.
func (s *State) TextureUnitTexture(unit int) gl.Texture {
	return s.textureUnitTextures[unit]
}

func (s *State) BoundVertexArray() gl.VertexArray { return s.boundVertexArray }

func (s *State) BindVertexArray(a gl.VertexArray) ContextUpdate {
	if a.Equal(s.boundVertexArray) {
		return nil
	}
	s.boundVertexArray = a
	return func(ctx gl.Context) error {
		ctx.BindVertexArray(a)
		return nil
	}
}

func (s *State) BoundTransformFeedback() gl.TransformFeedback { return s.boundTransformFeedback }

func (s *State) BindTransformFeedback(tf gl.TransformFeedback) ContextUpdate {
	if tf.Equal(s.boundTransformFeedback) {
		return nil
	}
	s.boundTransformFeedback = tf
	return func(ctx gl.Context) error {
		ctx.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, tf)
		return nil
	}
}

func (s *State) ClearColor() [4]float32 { return s.clearColor }

func (s *State) SetClearColor(color [4]float32) ContextUpdate {
	if color == s.clearColor {
		return nil
	}
	s.clearColor = color
	return func(ctx gl.Context) error {
		ctx.ClearColor(color[0], color[1], color[2], color[3])
		return nil
	}
}

func (s *State) ClearDepth() float32 { return s.clearDepth }

func (s *State) SetClearDepth(depth float32) ContextUpdate {
	if depth == s.clearDepth {
		return nil
	}
	s.clearDepth = depth
	return func(ctx gl.Context) error {
		ctx.ClearDepthf(depth)
		return nil
	}
}

func (s *State) ClearStencil() int { return s.clearStencil }

func (s *State) SetClearStencil(stencil int) ContextUpdate {
	if stencil == s.clearStencil {
		return nil
	}
	s.clearStencil = stencil
	return func(ctx gl.Context) error {
		ctx.ClearStencil(stencil)
		return nil
	}
}

func (s *State) DepthTest() bool { return s.depthTest }

func (s *State) SetDepthTest(enabled bool) ContextUpdate {
	return s.toggle(&s.depthTest, enabled, gl.DEPTH_TEST)
}

func (s *State) StencilTest() bool { return s.stencilTest }

func (s *State) SetStencilTest(enabled bool) ContextUpdate {
	return s.toggle(&s.stencilTest, enabled, gl.STENCIL_TEST)
}

func (s *State) ScissorTest() bool { return s.scissorTest }

func (s *State) SetScissorTest(enabled bool) ContextUpdate {
	return s.toggle(&s.scissorTest, enabled, gl.SCISSOR_TEST)
}

func (s *State) Blend() bool { return s.blend }

func (s *State) SetBlend(enabled bool) ContextUpdate {
	return s.toggle(&s.blend, enabled, gl.BLEND)
}

func (s *State) Dither() bool { return s.dither }

func (s *State) SetDither(enabled bool) ContextUpdate {
	return s.toggle(&s.dither, enabled, gl.DITHER)
}

func (s *State) PolygonOffsetFill() bool { return s.polygonOffsetFill }

func (s *State) SetPolygonOffsetFill(enabled bool) ContextUpdate {
	return s.toggle(&s.polygonOffsetFill, enabled, gl.POLYGON_OFFSET_FILL)
}

func (s *State) SampleAlphaToCoverage() bool { return s.sampleAlphaToCoverage }

func (s *State) SetSampleAlphaToCoverage(enabled bool) ContextUpdate {
	return s.toggle(&s.sampleAlphaToCoverage, enabled, gl.SAMPLE_ALPHA_TO_COVERAGE)
}

func (s *State) SampleCoverage() bool { return s.sampleCoverage }

func (s *State) SetSampleCoverage(enabled bool) ContextUpdate {
	return s.toggle(&s.sampleCoverage, enabled, gl.SAMPLE_COVERAGE)
}

func (s *State) RasterizerDiscard() bool { return s.rasterizerDiscard }

func (s *State) SetRasterizerDiscard(enabled bool) ContextUpdate {
	return s.toggle(&s.rasterizerDiscard, enabled, gl.RASTERIZER_DISCARD)
}

func (s *State) toggle(slot *bool, enabled bool, cap gl.Enum) ContextUpdate {
	if *slot == enabled {
		return nil
	}
	*slot = enabled
	return func(ctx gl.Context) error {
		if enabled {
			ctx.Enable(cap)
		} else {
			ctx.Disable(cap)
		}
		return nil
	}
}

func (s *State) DepthFunc() gl.Enum { return s.depthFunc }

func (s *State) SetDepthFunc(fn gl.Enum) ContextUpdate {
	if fn == s.depthFunc {
		return nil
	}
	s.depthFunc = fn
	return func(ctx gl.Context) error {
		ctx.DepthFunc(fn)
		return nil
	}
}

func (s *State) DepthMask() bool { return s.depthMask }

func (s *State) SetDepthMask(mask bool) ContextUpdate {
	if mask == s.depthMask {
		return nil
	}
	s.depthMask = mask
	return func(ctx gl.Context) error {
		ctx.DepthMask(mask)
		return nil
	}
}

func (s *State) DepthRange() (near, far float32) {
	return s.depthRange[0], s.depthRange[1]
}

func (s *State) SetDepthRange(near, far float32) ContextUpdate {
	r := [2]float32{near, far}
	if r == s.depthRange {
		return nil
	}
	s.depthRange = r
	return func(ctx gl.Context) error {
		ctx.DepthRangef(near, far)
		return nil
	}
}

func (s *State) PolygonOffset() (factor, units float32) {
	return s.polygonOffset[0], s.polygonOffset[1]
}

func (s *State) SetPolygonOffset(factor, units float32) ContextUpdate {
	o := [2]float32{factor, units}
	if o == s.polygonOffset {
		return nil
	}
	s.polygonOffset = o
	return func(ctx gl.Context) error {
		ctx.PolygonOffset(factor, units)
		return nil
	}
}

func (s *State) StencilFuncFront() StencilFunc { return s.stencilFuncFront }

func (s *State) SetStencilFuncFront(fn StencilFunc) ContextUpdate {
	if fn == s.stencilFuncFront {
		return nil
	}
	s.stencilFuncFront = fn
	return func(ctx gl.Context) error {
		ctx.StencilFuncSeparate(gl.FRONT, fn.Func, fn.Ref, fn.Mask)
		return nil
	}
}

func (s *State) StencilFuncBack() StencilFunc { return s.stencilFuncBack }

func (s *State) SetStencilFuncBack(fn StencilFunc) ContextUpdate {
	if fn == s.stencilFuncBack {
		return nil
	}
	s.stencilFuncBack = fn
	return func(ctx gl.Context) error {
		ctx.StencilFuncSeparate(gl.BACK, fn.Func, fn.Ref, fn.Mask)
		return nil
	}
}

func (s *State) StencilOpFront() StencilOp { return s.stencilOpFront }

func (s *State) SetStencilOpFront(op StencilOp) ContextUpdate {
	if op == s.stencilOpFront {
		return nil
	}
	s.stencilOpFront = op
	return func(ctx gl.Context) error {
		ctx.StencilOpSeparate(gl.FRONT, op.Fail, op.ZFail, op.ZPass)
		return nil
	}
}

func (s *State) StencilOpBack() StencilOp { return s.stencilOpBack }

func (s *State) SetStencilOpBack(op StencilOp) ContextUpdate {
	if op == s.stencilOpBack {
		return nil
	}
	s.stencilOpBack = op
	return func(ctx gl.Context) error {
		ctx.StencilOpSeparate(gl.BACK, op.Fail, op.ZFail, op.ZPass)
		return nil
	}
}

func (s *State) StencilWriteMaskFront() uint32 { return s.stencilWriteMaskFront }

func (s *State) SetStencilWriteMaskFront(mask uint32) ContextUpdate {
	if mask == s.stencilWriteMaskFront {
		return nil
	}
	s.stencilWriteMaskFront = mask
	return func(ctx gl.Context) error {
		ctx.StencilMaskSeparate(gl.FRONT, mask)
		return nil
	}
}

func (s *State) StencilWriteMaskBack() uint32 { return s.stencilWriteMaskBack }

func (s *State) SetStencilWriteMaskBack(mask uint32) ContextUpdate {
	if mask == s.stencilWriteMaskBack {
		return nil
	}
	s.stencilWriteMaskBack = mask
	return func(ctx gl.Context) error {
		ctx.StencilMaskSeparate(gl.BACK, mask)
		return nil
	}
}

func (s *State) BlendColor() [4]float32 { return s.blendColor }

func (s *State) SetBlendColor(color [4]float32) ContextUpdate {
	if color == s.blendColor {
		return nil
	}
	s.blendColor = color
	return func(ctx gl.Context) error {
		ctx.BlendColor(color[0], color[1], color[2], color[3])
		return nil
	}
}

func (s *State) BlendEquation() (modeRGB, modeAlpha gl.Enum) {
	return s.blendEquationRGB, s.blendEquationAlpha
}

func (s *State) SetBlendEquation(modeRGB, modeAlpha gl.Enum) ContextUpdate {
	if modeRGB == s.blendEquationRGB && modeAlpha == s.blendEquationAlpha {
		return nil
	}
	s.blendEquationRGB = modeRGB
	s.blendEquationAlpha = modeAlpha
	return func(ctx gl.Context) error {
		ctx.BlendEquationSeparate(modeRGB, modeAlpha)
		return nil
	}
}

func (s *State) BlendFunc() (srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	return s.blendFuncSrcRGB, s.blendFuncDstRGB, s.blendFuncSrcAlpha, s.blendFuncDstAlpha
}

func (s *State) SetBlendFunc(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) ContextUpdate {
	if srcRGB == s.blendFuncSrcRGB && dstRGB == s.blendFuncDstRGB &&
		srcAlpha == s.blendFuncSrcAlpha && dstAlpha == s.blendFuncDstAlpha {
		return nil
	}
	s.blendFuncSrcRGB = srcRGB
	s.blendFuncDstRGB = dstRGB
	s.blendFuncSrcAlpha = srcAlpha
	s.blendFuncDstAlpha = dstAlpha
	return func(ctx gl.Context) error {
		ctx.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
		return nil
	}
}

func (s *State) LineWidth() float32 { return s.lineWidth }

func (s *State) SetLineWidth(w float32) ContextUpdate {
	if w == s.lineWidth {
		return nil
	}
	s.lineWidth = w
	return func(ctx gl.Context) error {
		ctx.LineWidth(w)
		return nil
	}
}

func (s *State) PixelUnpackAlignment() int { return s.pixelUnpackAlignment }

func (s *State) SetPixelUnpackAlignment(alignment int) ContextUpdate {
	if alignment == s.pixelUnpackAlignment {
		return nil
	}
	s.pixelUnpackAlignment = alignment
	return func(ctx gl.Context) error {
		ctx.PixelStorei(gl.UNPACK_ALIGNMENT, alignment)
		return nil
	}
}

func (s *State) PixelUnpackRowLength() int { return s.pixelUnpackRowLength }

func (s *State) SetPixelUnpackRowLength(rowLength int) ContextUpdate {
	if rowLength == s.pixelUnpackRowLength {
		return nil
	}
	s.pixelUnpackRowLength = rowLength
	return func(ctx gl.Context) error {
		ctx.PixelStorei(gl.UNPACK_ROW_LENGTH, rowLength)
		return nil
	}
}

func (s *State) PixelUnpackImageHeight() int { return s.pixelUnpackImageHeight }

func (s *State) SetPixelUnpackImageHeight(imageHeight int) ContextUpdate {
	if imageHeight == s.pixelUnpackImageHeight {
		return nil
	}
	s.pixelUnpackImageHeight = imageHeight
	return func(ctx gl.Context) error {
		ctx.PixelStorei(gl.UNPACK_IMAGE_HEIGHT, imageHeight)
		return nil
	}
}

func (s *State) Scissor() (x, y, width, height int) {
	return s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3]
}

func (s *State) SetScissor(x, y, width, height int) ContextUpdate {
	box := [4]int{x, y, width, height}
	if box == s.scissor {
		return nil
	}
	s.scissor = box
	return func(ctx gl.Context) error {
		ctx.Scissor(x, y, width, height)
		return nil
	}
}

func (s *State) Viewport() (x, y, width, height int) {
	return s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3]
}

func (s *State) SetViewport(x, y, width, height int) ContextUpdate {
	box := [4]int{x, y, width, height}
	if box == s.viewport {
		return nil
	}
	s.viewport = box
	return func(ctx gl.Context) error {
		ctx.Viewport(x, y, width, height)
		return nil
	}
}

func (s *State) FrontFace() gl.Enum { return s.frontFace }

func (s *State) SetFrontFace(mode gl.Enum) ContextUpdate {
	if mode == s.frontFace {
		return nil
	}
	s.frontFace = mode
	return func(ctx gl.Context) error {
		ctx.FrontFace(mode)
		return nil
	}
}

// CullFace returns the culled face, or gl.NONE when face culling is
// disabled.
func (s *State) CullFace() gl.Enum { return s.cullFace }

func (s *State) SetCullFace(mode gl.Enum) ContextUpdate {
	if mode == s.cullFace {
		return nil
	}
	wasEnabled := s.cullFace != gl.NONE
	s.cullFace = mode
	return func(ctx gl.Context) error {
		if mode == gl.NONE {
			ctx.Disable(gl.CULL_FACE)
			return nil
		}
		if !wasEnabled {
			ctx.Enable(gl.CULL_FACE)
		}
		ctx.CullFace(mode)
		return nil
	}
}
