//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-glitz/glitz/gl"
)

func TestBufferUploadDownloadRoundTrip(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(16, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer b.Release()
	require.Equal(t, 16, b.Size())

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	up := b.Upload(0, data)
	_, err = up.Result()
	require.NoError(t, err)
	require.Zero(t, ctx.Count("FenceSync"), "upload inserted a fence")

	down := b.Download(4, 8)
	_, err = down.Result()
	require.ErrorIs(t, err, ErrPending, "download resolved before the fence signalled")
	require.Equal(t, 1, ctx.Count("FenceSync"))

	ctx.SignalAll()
	require.False(t, rc.Tick())
	got, err := down.Result()
	require.NoError(t, err)
	require.Equal(t, data[4:12], got)
}

func TestBufferDownloadWholeRange(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(4, gl.DYNAMIC_READ)
	require.NoError(t, err)
	defer b.Release()
	data := []byte{9, 8, 7, 6}
	_, err = b.Upload(0, data).Result()
	require.NoError(t, err)

	down := b.Download(0, 4)
	ctx.SignalAll()
	rc.Tick()
	got, err := down.Result()
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, data, got)
}

func TestBufferRangeErrors(t *testing.T) {
	rc, _ := newTestContext(t)
	b, err := rc.CreateBuffer(8, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer b.Release()

	_, err = b.Upload(4, make([]byte, 8)).Result()
	require.Error(t, err)
	_, err = b.Download(-1, 4).Result()
	require.Error(t, err)
	_, err = b.Download(0, 9).Result()
	require.Error(t, err)

	_, err = rc.CreateBuffer(0, gl.STATIC_DRAW)
	require.Error(t, err)
}

func TestBufferReleaseDeletesThroughQueue(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(8, gl.STATIC_DRAW)
	require.NoError(t, err)
	require.Len(t, ctx.LiveBuffers(), 1)

	b.Retain()
	b.Release()
	require.Len(t, ctx.LiveBuffers(), 1, "buffer deleted while references remain")

	b.Release()
	require.Empty(t, ctx.LiveBuffers())
	require.Equal(t, 1, ctx.Count("DeleteBuffer"))
}

func TestDownloadStagingBufferIsTransient(t *testing.T) {
	rc, ctx := newTestContext(t)
	b, err := rc.CreateBuffer(8, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer b.Release()

	down := b.Download(0, 8)
	require.Len(t, ctx.LiveBuffers(), 2, "staging buffer missing while the download is in flight")
	ctx.SignalAll()
	rc.Tick()
	_, err = down.Result()
	require.NoError(t, err)
	require.Len(t, ctx.LiveBuffers(), 1, "staging buffer outlived the download")
}
