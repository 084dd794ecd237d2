// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"github.com/pkg/errors"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// SamplerOptions selects the filtering and wrapping behavior of a sampler.
// Zero fields fall back to the WebGL2 defaults.
type SamplerOptions struct {
	MinFilter gl.Enum
	MagFilter gl.Enum
	WrapS     gl.Enum
	WrapT     gl.Enum
	WrapR     gl.Enum
}

// Sampler is a reference counted handle to a sampler object.
type Sampler struct {
	rc     *RenderingContext
	refs   *refCount
	handle gl.Sampler
}

// CreateSampler builds a sampler with the given options.
func (rc *RenderingContext) CreateSampler(opts SamplerOptions) (*Sampler, error) {
	exec := Submit(rc, task.New(rc.ID(), func(c *driver.Connection) task.Progress[gl.Sampler] {
		ctx, _ := c.Unpack()
		handle := ctx.CreateSampler()
		for _, p := range []struct {
			pname gl.Enum
			param gl.Enum
		}{
			{gl.TEXTURE_MIN_FILTER, opts.MinFilter},
			{gl.TEXTURE_MAG_FILTER, opts.MagFilter},
			{gl.TEXTURE_WRAP_S, opts.WrapS},
			{gl.TEXTURE_WRAP_T, opts.WrapT},
			{gl.TEXTURE_WRAP_R, opts.WrapR},
		} {
			if p.param != gl.NONE {
				ctx.SamplerParameteri(handle, p.pname, int(p.param))
			}
		}
		return task.Finished(handle)
	}))
	handle, err := exec.Result()
	if err != nil {
		return nil, errors.Wrap(err, "glitz: create sampler")
	}
	return &Sampler{rc: rc, refs: newRefCount(), handle: handle}, nil
}

// Retain adds a reference. Every Retain must be paired with a Release.
func (s *Sampler) Retain() *Sampler {
	s.refs.retain()
	return s
}

// Release drops a reference. Releasing the last reference submits the
// deletion as an ordinary task.
func (s *Sampler) Release() {
	if s.refs.release() {
		s.rc.drop(DropSampler(s.rc.ID(), s.handle))
	}
}

// Bind attaches the sampler to a texture unit.
func (s *Sampler) Bind(unit int) *Execution[struct{}] {
	handle := s.handle
	return Submit(s.rc, task.New(s.rc.ID(), func(c *driver.Connection) task.Progress[struct{}] {
		ctx, state := c.Unpack()
		if err := state.BindSampler(unit, handle).Apply(ctx); err != nil {
			return task.Failed[struct{}](err)
		}
		return task.Finished(struct{}{})
	}))
}
