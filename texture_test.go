//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-glitz/glitz/gl"
)

func TestTexture2DUpload(t *testing.T) {
	rc, ctx := newTestContext(t)
	tex, err := rc.CreateTexture2D(2, 2, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()
	require.Equal(t, 2, tex.Width())
	require.Equal(t, 2, tex.Height())

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{G: 0xff, A: 0xff})
	src.SetNRGBA(0, 1, color.NRGBA{B: 0xff, A: 0xff})
	src.SetNRGBA(1, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	_, err = tex.Upload(0, 0, 0, src).Result()
	require.NoError(t, err)

	want := []byte{
		0xff, 0, 0, 0xff, 0, 0xff, 0, 0xff,
		0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	require.Equal(t, want, ctx.TexturePixels(tex.handle, 0))
}

func TestTexture2DUploadSubRectangle(t *testing.T) {
	rc, ctx := newTestContext(t)
	tex, err := rc.CreateTexture2D(4, 4, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()

	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0xaa, A: 0xff})
	_, err = tex.Upload(0, 2, 1, src).Result()
	require.NoError(t, err)

	pix := ctx.TexturePixels(tex.handle, 0)
	off := (1*4 + 2) * 4
	require.Equal(t, []byte{0xaa, 0, 0, 0xff}, pix[off:off+4])
}

func TestTexture2DUploadErrors(t *testing.T) {
	rc, _ := newTestContext(t)
	tex, err := rc.CreateTexture2D(2, 2, 1, gl.RGBA8)
	require.NoError(t, err)
	defer tex.Release()

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	_, err = tex.Upload(1, 0, 0, src).Result()
	require.Error(t, err, "upload to a missing level succeeded")
	_, err = tex.Upload(0, 1, 1, src).Result()
	require.Error(t, err, "upload past the level extent succeeded")

	_, err = rc.CreateTexture2D(0, 2, 1, gl.RGBA8)
	require.Error(t, err)
	_, err = rc.CreateTexture2D(2, 2, 0, gl.RGBA8)
	require.Error(t, err)
}

func TestTextureAllocationUsesLRUUnit(t *testing.T) {
	rc, ctx := newTestContext(t)
	a, err := rc.CreateTexture2D(1, 1, 1, gl.RGBA8)
	require.NoError(t, err)
	defer a.Release()
	b, err := rc.CreateTexture2D(1, 1, 1, gl.RGBA8)
	require.NoError(t, err)
	defer b.Release()

	_, state := rc.Connection().Unpack()
	require.True(t, state.TextureUnitTexture(0).Equal(a.handle))
	require.True(t, state.TextureUnitTexture(1).Equal(b.handle))
	require.Equal(t, 2, ctx.Count("ActiveTexture"))
}

func TestTextureReleaseScrubsUnits(t *testing.T) {
	rc, ctx := newTestContext(t)
	tex, err := rc.CreateTexture2D(1, 1, 1, gl.RGBA8)
	require.NoError(t, err)
	tex.Release()
	require.Equal(t, 1, ctx.Count("DeleteTexture"))
	_, state := rc.Connection().Unpack()
	require.False(t, state.TextureUnitTexture(0).Valid())
}
