// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "github.com/go-glitz/glitz/gl"

// ContextUpdate is zero or one pending driver call produced by a State
// setter. A nil ContextUpdate means the cached value was already current and
// no call is needed; a non-nil update must be applied against the live
// context before any other task progresses, otherwise the cache and the
// context diverge.
type ContextUpdate func(ctx gl.Context) error

// Apply invokes the pending operation, if any, exactly once.
func (u ContextUpdate) Apply(ctx gl.Context) error {
	if u == nil {
		return nil
	}
	return u(ctx)
}

// BufferRange describes the occupant of an indexed buffer binding point:
// unbound (the zero value), a whole buffer, or a byte range of a buffer when
// Ranged is set.
type BufferRange struct {
	Buffer gl.Buffer
	Offset int
	Size   int
	Ranged bool
}

// Equal reports whether two ranges describe the identical binding. Buffers
// compare by object identity; for ranged bindings the offset and size must
// also match.
func (r BufferRange) Equal(o BufferRange) bool {
	if !r.Buffer.Equal(o.Buffer) || r.Ranged != o.Ranged {
		return false
	}
	if r.Ranged {
		return r.Offset == o.Offset && r.Size == o.Size
	}
	return true
}

func (r BufferRange) bind(ctx gl.Context, target gl.Enum, index int) {
	switch {
	case !r.Buffer.Valid():
		ctx.BindBufferBase(target, index, gl.Buffer{})
	case r.Ranged:
		ctx.BindBufferRange(target, index, r.Buffer, r.Offset, r.Size)
	default:
		ctx.BindBufferBase(target, index, r.Buffer)
	}
}
