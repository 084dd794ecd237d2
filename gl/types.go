//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package gl

// On native platforms driver objects carry a monotonic creation-order id.
// Two handles refer to the same driver object exactly when their ids match;
// a zero id is the "no object" handle.
type (
	Buffer            struct{ V uint }
	Framebuffer       struct{ V uint }
	Program           struct{ V uint }
	Renderbuffer      struct{ V uint }
	Sampler           struct{ V uint }
	Shader            struct{ V uint }
	Sync              struct{ V uint }
	Texture           struct{ V uint }
	TransformFeedback struct{ V uint }
	VertexArray       struct{ V uint }
)

func (b Buffer) Valid() bool            { return b.V != 0 }
func (f Framebuffer) Valid() bool       { return f.V != 0 }
func (p Program) Valid() bool           { return p.V != 0 }
func (r Renderbuffer) Valid() bool      { return r.V != 0 }
func (s Sampler) Valid() bool           { return s.V != 0 }
func (s Shader) Valid() bool            { return s.V != 0 }
func (s Sync) Valid() bool              { return s.V != 0 }
func (t Texture) Valid() bool           { return t.V != 0 }
func (t TransformFeedback) Valid() bool { return t.V != 0 }
func (a VertexArray) Valid() bool       { return a.V != 0 }

func (b Buffer) Equal(o Buffer) bool                       { return b.V == o.V }
func (f Framebuffer) Equal(o Framebuffer) bool             { return f.V == o.V }
func (p Program) Equal(o Program) bool                     { return p.V == o.V }
func (r Renderbuffer) Equal(o Renderbuffer) bool           { return r.V == o.V }
func (s Sampler) Equal(o Sampler) bool                     { return s.V == o.V }
func (s Shader) Equal(o Shader) bool                       { return s.V == o.V }
func (s Sync) Equal(o Sync) bool                           { return s.V == o.V }
func (t Texture) Equal(o Texture) bool                     { return t.V == o.V }
func (t TransformFeedback) Equal(o TransformFeedback) bool { return t.V == o.V }
func (a VertexArray) Equal(o VertexArray) bool             { return a.V == o.V }
