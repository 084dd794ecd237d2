//go:build js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/go-glitz/glitz/gl"
)

// NewCanvasContext creates a rendering context on a canvas element. The
// canvas must not have been used with another context kind before.
func NewCanvasContext(canvas js.Value, opts ContextOptions) (*RenderingContext, error) {
	glctx := canvas.Call("getContext", "webgl2", opts.jsValue())
	if !glctx.Truthy() {
		return nil, errors.New("glitz: webgl2 is not supported")
	}
	fns, err := gl.NewFunctions(glctx)
	if err != nil {
		return nil, errors.Wrap(err, "glitz: initialize context")
	}
	return NewRenderingContext(fns), nil
}

func (o ContextOptions) jsValue() js.Value {
	attrs := js.Global().Get("Object").New()
	attrs.Set("alpha", o.Alpha)
	attrs.Set("depth", o.Depth)
	attrs.Set("stencil", o.Stencil)
	attrs.Set("antialias", o.Antialias)
	attrs.Set("premultipliedAlpha", o.PremultipliedAlpha)
	attrs.Set("preserveDrawingBuffer", o.PreserveDrawingBuffer)
	attrs.Set("failIfMajorPerformanceCaveat", o.FailIfMajorPerformanceCaveat)
	if o.PowerPreference != "" {
		attrs.Set("powerPreference", string(o.PowerPreference))
	}
	return attrs
}
