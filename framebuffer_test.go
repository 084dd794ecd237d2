//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-glitz/glitz/gl"
)

const incompleteAttachment gl.Enum = 0x8cd6

func TestFramebufferBuild(t *testing.T) {
	rc, ctx := newTestContext(t)
	tex, err := rc.CreateTexture2D(4, 4, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()
	depth, err := rc.CreateRenderbuffer(gl.DEPTH_COMPONENT24, 4, 4)
	require.NoError(t, err)
	defer depth.Release()

	fb, err := rc.NewFramebuffer().
		ColorTexture(tex, 0).
		DepthRenderbuffer(depth).
		Build()
	require.NoError(t, err)
	defer fb.Release()
	require.Equal(t, 1, fb.ColorAttachments())
	require.Equal(t, 1, ctx.Count("FramebufferTexture2D"))
	require.Equal(t, 1, ctx.Count("FramebufferRenderbuffer"))
	require.Equal(t, 1, ctx.Count("DrawBuffers"))
	require.Equal(t, 1, ctx.Count("CheckFramebufferStatus"))
}

func TestFramebufferIncomplete(t *testing.T) {
	rc, ctx := newTestContext(t)
	ctx.Status = incompleteAttachment
	tex, err := rc.CreateTexture2D(4, 4, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()

	_, err = rc.NewFramebuffer().ColorTexture(tex, 0).Build()
	var incomplete FramebufferIncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, incompleteAttachment, incomplete.Status)
	require.Equal(t, 1, ctx.Count("DeleteFramebuffer"), "incomplete framebuffer was not deleted")
}

func TestFramebufferBuilderValidation(t *testing.T) {
	rc, _ := newTestContext(t)
	tex, err := rc.CreateTexture2D(4, 4, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()
	depth, err := rc.CreateRenderbuffer(gl.DEPTH_COMPONENT24, 4, 4)
	require.NoError(t, err)
	defer depth.Release()

	_, err = rc.NewFramebuffer().Build()
	require.Error(t, err, "empty framebuffer built")

	_, err = rc.NewFramebuffer().
		ColorTexture(tex, 0).
		ColorTexture(tex, 0).
		Build()
	require.Error(t, err, "image attached to two color slots")

	_, err = rc.NewFramebuffer().
		DepthRenderbuffer(depth).
		DepthRenderbuffer(depth).
		Build()
	require.Error(t, err, "depth attachment set twice")
}

func rbAt(t *testing.T, rc *RenderingContext, i int) *Renderbuffer {
	t.Helper()
	rb, err := rc.CreateRenderbuffer(gl.RGBA8, 4, 4)
	require.NoError(t, err)
	t.Cleanup(rb.Release)
	return rb
}

func TestFramebufferLimitCheck(t *testing.T) {
	rc, _ := newTestContext(t)
	b := rc.NewFramebuffer()
	for i := 0; i < 9; i++ {
		b.ColorRenderbuffer(rbAt(t, rc, i))
	}
	_, err := b.Build()
	require.ErrorContains(t, err, "color attachments")
}

func TestFramebufferBindDraw(t *testing.T) {
	rc, _ := newTestContext(t)
	tex, err := rc.CreateTexture2D(4, 4, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()
	fb, err := rc.NewFramebuffer().ColorTexture(tex, 0).Build()
	require.NoError(t, err)
	defer fb.Release()

	_, err = fb.BindDraw().Result()
	require.NoError(t, err)
	_, state := rc.Connection().Unpack()
	require.True(t, state.BoundDrawFramebuffer().Valid())
}
