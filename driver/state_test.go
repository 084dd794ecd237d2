//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package driver

import (
	"testing"

	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/internal/gltest"
)

func newTestState(t *testing.T) (*gltest.Context, *State) {
	t.Helper()
	ctx := gltest.New()
	s := NewState(ctx)
	ctx.Reset()
	return ctx, s
}

func TestBindBufferIdempotent(t *testing.T) {
	ctx, s := newTestState(t)
	b := ctx.CreateBuffer()
	upd := s.BindArrayBuffer(b)
	if upd == nil {
		t.Fatal("first bind returned no update")
	}
	if err := upd.Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Count("BindBuffer"); got != 1 {
		t.Errorf("got %d BindBuffer calls, want 1", got)
	}
	if s.BindArrayBuffer(b) != nil {
		t.Error("rebinding the same buffer returned an update")
	}
	if !s.BoundArrayBuffer().Equal(b) {
		t.Error("cache does not reflect the bound buffer")
	}
}

func TestScalarSettersIdempotent(t *testing.T) {
	ctx, s := newTestState(t)
	red := [4]float32{1, 0, 0, 1}
	if upd := s.SetClearColor(red); upd == nil {
		t.Fatal("first SetClearColor returned no update")
	} else if err := upd.Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if s.SetClearColor(red) != nil {
		t.Error("second SetClearColor returned an update")
	}
	// Depth test starts disabled; disabling again is a no-op.
	if s.SetDepthTest(false) != nil {
		t.Error("SetDepthTest(false) on a fresh cache returned an update")
	}
	if s.SetDepthTest(true) == nil {
		t.Error("SetDepthTest(true) returned no update")
	}
	if s.SetDepthTest(true) != nil {
		t.Error("second SetDepthTest(true) returned an update")
	}
}

func TestDistinctBuffersNeverEqual(t *testing.T) {
	ctx, s := newTestState(t)
	a, b := ctx.CreateBuffer(), ctx.CreateBuffer()
	if err := s.BindArrayBuffer(a).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	// Two distinct driver objects are never considered equal, whatever
	// resource they describe.
	if s.BindArrayBuffer(b) == nil {
		t.Error("binding a distinct buffer returned no update")
	}
}

func TestElementArrayRebindUnderVAO(t *testing.T) {
	ctx, s := newTestState(t)
	b := ctx.CreateBuffer()
	if err := s.BindElementArrayBuffer(b).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if s.BindElementArrayBuffer(b) != nil {
		t.Error("rebind without a VAO returned an update")
	}
	a := ctx.CreateVertexArray()
	if err := s.BindVertexArray(a).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	// The element array binding belongs to the VAO now; the cached value
	// cannot be trusted and the bind must be issued again.
	if s.BindElementArrayBuffer(b) == nil {
		t.Error("rebind under a VAO returned no update")
	}
}

func TestBindTextureRecordsUnitOccupancy(t *testing.T) {
	ctx, s := newTestState(t)
	tex := ctx.CreateTexture()
	if err := s.SetActiveTexture(2).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.BindTexture2D(tex).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if !s.TextureUnitTexture(2).Equal(tex) {
		t.Error("unit 2 occupancy does not record the bound texture")
	}
	if !s.BoundTexture2D().Equal(tex) {
		t.Error("2D target cache does not record the bound texture")
	}
}

func TestSetActiveTextureLRUPrefersUntouchedUnits(t *testing.T) {
	ctx, s := newTestState(t)
	seen := make(map[int]bool)
	for i := 0; i < s.MaxTextureUnits(); i++ {
		unit, upd := s.SetActiveTextureLRU()
		if upd == nil {
			t.Fatal("SetActiveTextureLRU returned no update")
		}
		if err := upd.Apply(ctx); err != nil {
			t.Fatal(err)
		}
		if seen[unit] {
			t.Fatalf("unit %d handed out twice before all units were used", unit)
		}
		seen[unit] = true
	}
}

func TestBindUniformBufferTargetsActiveIndex(t *testing.T) {
	ctx, s := newTestState(t)
	b := ctx.CreateBuffer()
	s.SetActiveUniformBufferIndex(3)
	r := BufferRange{Buffer: b}
	if upd := s.BindUniformBuffer(r); upd == nil {
		t.Fatal("first uniform bind returned no update")
	} else if err := upd.Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if !s.BoundUniformBuffer(3).Equal(r) {
		t.Error("binding point 3 does not record the range")
	}
	if s.BindUniformBuffer(r) != nil {
		t.Error("rebinding the same range returned an update")
	}
	// A ranged binding of the same buffer is a different occupant.
	if s.BindUniformBuffer(BufferRange{Buffer: b, Offset: 0, Size: 16, Ranged: true}) == nil {
		t.Error("ranged rebind returned no update")
	}
}

func TestBufferRangeEqual(t *testing.T) {
	ctx, _ := newTestState(t)
	a, b := ctx.CreateBuffer(), ctx.CreateBuffer()
	tests := []struct {
		name string
		x, y BufferRange
		want bool
	}{
		{"both unbound", BufferRange{}, BufferRange{}, true},
		{"same buffer full", BufferRange{Buffer: a}, BufferRange{Buffer: a}, true},
		{"distinct buffers", BufferRange{Buffer: a}, BufferRange{Buffer: b}, false},
		{"full vs ranged", BufferRange{Buffer: a}, BufferRange{Buffer: a, Size: 8, Ranged: true}, false},
		{
			"same range",
			BufferRange{Buffer: a, Offset: 4, Size: 8, Ranged: true},
			BufferRange{Buffer: a, Offset: 4, Size: 8, Ranged: true},
			true,
		},
		{
			"different size",
			BufferRange{Buffer: a, Offset: 4, Size: 8, Ranged: true},
			BufferRange{Buffer: a, Offset: 4, Size: 16, Ranged: true},
			false,
		},
	}
	for _, tc := range tests {
		if got := tc.x.Equal(tc.y); got != tc.want {
			t.Errorf("%s: Equal = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestDeleteBufferScrubsCache(t *testing.T) {
	ctx, s := newTestState(t)
	b := ctx.CreateBuffer()
	if err := s.BindArrayBuffer(b).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.BindCopyReadBuffer(b).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	s.DeleteBuffer(ctx, b)
	if s.BoundArrayBuffer().Valid() {
		t.Error("array binding still references the deleted buffer")
	}
	if s.BoundCopyReadBuffer().Valid() {
		t.Error("copy read binding still references the deleted buffer")
	}
	if ctx.Count("DeleteBuffer") != 1 {
		t.Error("driver delete was not issued")
	}
}

func TestDeleteTextureScrubsUnits(t *testing.T) {
	ctx, s := newTestState(t)
	tex := ctx.CreateTexture()
	if err := s.SetActiveTexture(1).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.BindTexture2D(tex).Apply(ctx); err != nil {
		t.Fatal(err)
	}
	s.DeleteTexture(ctx, tex)
	if s.TextureUnitTexture(1).Valid() {
		t.Error("unit 1 still references the deleted texture")
	}
	if s.BoundTexture2D().Valid() {
		t.Error("2D target still references the deleted texture")
	}
}

func TestTextureUnitBounds(t *testing.T) {
	if got := TextureUnit(0); got != gl.TEXTURE0 {
		t.Errorf("TextureUnit(0) = 0x%x", uint(got))
	}
	if got := TextureUnit(5); got != gl.TEXTURE0+5 {
		t.Errorf("TextureUnit(5) = 0x%x", uint(got))
	}
	defer func() {
		if recover() == nil {
			t.Error("TextureUnit(-1) did not panic")
		}
	}()
	TextureUnit(-1)
}

func TestStateDefaults(t *testing.T) {
	_, s := newTestState(t)
	if s.DepthFunc() != gl.LESS {
		t.Error("depth func default is not LESS")
	}
	if s.ClearDepth() != 1 {
		t.Error("clear depth default is not 1")
	}
	if !s.Dither() {
		t.Error("dither is not enabled by default")
	}
	if s.CullFace() != gl.NONE {
		t.Error("face culling is not disabled by default")
	}
	if s.FrontFace() != gl.CCW {
		t.Error("front face default is not CCW")
	}
	if _, _, w, h := s.Viewport(); w != 640 || h != 480 {
		t.Errorf("viewport %dx%d does not match the drawing buffer", w, h)
	}
}
