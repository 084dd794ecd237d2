//go:build js

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "syscall/js"

type (
	Buffer            js.Value
	Framebuffer       js.Value
	Program           js.Value
	Renderbuffer      js.Value
	Sampler           js.Value
	Shader            js.Value
	Sync              js.Value
	Texture           js.Value
	TransformFeedback js.Value
	VertexArray       js.Value
)

func valid(v js.Value) bool { return !v.IsUndefined() && !v.IsNull() }

func equal(a, b js.Value) bool {
	if !valid(a) && !valid(b) {
		return true
	}
	return a.Equal(b)
}

func (b Buffer) Valid() bool            { return valid(js.Value(b)) }
func (f Framebuffer) Valid() bool       { return valid(js.Value(f)) }
func (p Program) Valid() bool           { return valid(js.Value(p)) }
func (r Renderbuffer) Valid() bool      { return valid(js.Value(r)) }
func (s Sampler) Valid() bool           { return valid(js.Value(s)) }
func (s Shader) Valid() bool            { return valid(js.Value(s)) }
func (s Sync) Valid() bool              { return valid(js.Value(s)) }
func (t Texture) Valid() bool           { return valid(js.Value(t)) }
func (t TransformFeedback) Valid() bool { return valid(js.Value(t)) }
func (a VertexArray) Valid() bool       { return valid(js.Value(a)) }

func (b Buffer) Equal(o Buffer) bool             { return equal(js.Value(b), js.Value(o)) }
func (f Framebuffer) Equal(o Framebuffer) bool   { return equal(js.Value(f), js.Value(o)) }
func (p Program) Equal(o Program) bool           { return equal(js.Value(p), js.Value(o)) }
func (r Renderbuffer) Equal(o Renderbuffer) bool { return equal(js.Value(r), js.Value(o)) }
func (s Sampler) Equal(o Sampler) bool           { return equal(js.Value(s), js.Value(o)) }
func (s Shader) Equal(o Shader) bool             { return equal(js.Value(s), js.Value(o)) }
func (s Sync) Equal(o Sync) bool                 { return equal(js.Value(s), js.Value(o)) }
func (t Texture) Equal(o Texture) bool           { return equal(js.Value(t), js.Value(o)) }
func (t TransformFeedback) Equal(o TransformFeedback) bool {
	return equal(js.Value(t), js.Value(o))
}
func (a VertexArray) Equal(o VertexArray) bool { return equal(js.Value(a), js.Value(o)) }
