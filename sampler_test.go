//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-glitz/glitz/gl"
)

func TestCreateSampler(t *testing.T) {
	rc, ctx := newTestContext(t)
	s, err := rc.CreateSampler(SamplerOptions{
		MinFilter: gl.NEAREST,
		MagFilter: gl.LINEAR,
		WrapS:     gl.CLAMP_TO_EDGE,
	})
	require.NoError(t, err)
	defer s.Release()

	require.Equal(t, int(gl.Enum(gl.NEAREST)), ctx.SamplerParameter(s.handle, gl.TEXTURE_MIN_FILTER))
	require.Equal(t, int(gl.Enum(gl.LINEAR)), ctx.SamplerParameter(s.handle, gl.TEXTURE_MAG_FILTER))
	require.Equal(t, int(gl.Enum(gl.CLAMP_TO_EDGE)), ctx.SamplerParameter(s.handle, gl.TEXTURE_WRAP_S))
	// Unset options keep the driver defaults.
	require.Zero(t, ctx.SamplerParameter(s.handle, gl.TEXTURE_WRAP_T))
}

func TestSamplerBindCached(t *testing.T) {
	rc, ctx := newTestContext(t)
	s, err := rc.CreateSampler(SamplerOptions{MinFilter: gl.LINEAR})
	require.NoError(t, err)
	defer s.Release()

	_, err = s.Bind(3).Result()
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Count("BindSampler"))

	// Binding the same sampler to the same unit again is elided.
	_, err = s.Bind(3).Result()
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Count("BindSampler"))

	_, err = s.Bind(4).Result()
	require.NoError(t, err)
	require.Equal(t, 2, ctx.Count("BindSampler"))
}

func TestSamplerReleaseScrubsUnits(t *testing.T) {
	rc, ctx := newTestContext(t)
	s, err := rc.CreateSampler(SamplerOptions{})
	require.NoError(t, err)
	_, err = s.Bind(0).Result()
	require.NoError(t, err)

	s.Release()
	require.Equal(t, 1, ctx.Count("DeleteSampler"))
	_, state := rc.Connection().Unpack()
	require.False(t, state.BoundSampler(0).Valid())
}
