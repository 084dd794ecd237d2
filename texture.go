// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
	"github.com/go-glitz/glitz/task"
)

// Texture2D is a reference counted handle to an immutable-storage 2D
// texture.
type Texture2D struct {
	rc     *RenderingContext
	refs   *refCount
	handle gl.Texture
	width  int
	height int
	levels int
	format gl.Enum
}

// CreateTexture2D allocates storage for a 2D texture with the given number
// of mipmap levels. The texture is bound on the least recently used unit so
// that units holding textures still in active use are left alone.
func (rc *RenderingContext) CreateTexture2D(width, height, levels int, internalFormat gl.Enum) (*Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("glitz: texture size %dx%d out of range", width, height)
	}
	if levels < 1 {
		return nil, errors.Errorf("glitz: texture level count %d out of range", levels)
	}
	exec := Submit(rc, task.New(rc.ID(), func(c *driver.Connection) task.Progress[gl.Texture] {
		ctx, state := c.Unpack()
		handle := ctx.CreateTexture()
		_, upd := state.SetActiveTextureLRU()
		if err := upd.Apply(ctx); err != nil {
			return task.Failed[gl.Texture](err)
		}
		if err := state.BindTexture2D(handle).Apply(ctx); err != nil {
			return task.Failed[gl.Texture](err)
		}
		ctx.TexStorage2D(gl.TEXTURE_2D, levels, internalFormat, width, height)
		return task.Finished(handle)
	}))
	handle, err := exec.Result()
	if err != nil {
		return nil, errors.Wrap(err, "glitz: create texture")
	}
	return &Texture2D{
		rc:     rc,
		refs:   newRefCount(),
		handle: handle,
		width:  width,
		height: height,
		levels: levels,
		format: internalFormat,
	}, nil
}

// Width returns the width of the base level in pixels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the height of the base level in pixels.
func (t *Texture2D) Height() int { return t.height }

// Retain adds a reference. Every Retain must be paired with a Release.
func (t *Texture2D) Retain() *Texture2D {
	t.refs.retain()
	return t
}

// Release drops a reference. Releasing the last reference submits the
// deletion as an ordinary task.
func (t *Texture2D) Release() {
	if t.refs.release() {
		t.rc.drop(DropTexture(t.rc.ID(), t.handle))
	}
}

// Upload replaces the rectangle of the given mipmap level at (x, y) with
// the pixels of src. The image is converted to tightly packed RGBA on the
// host before the transfer.
func (t *Texture2D) Upload(level, x, y int, src image.Image) *Execution[struct{}] {
	exec := newExecution[struct{}]()
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if level < 0 || level >= t.levels {
		exec.deliver(struct{}{}, errors.Errorf("glitz: upload to level %d of a %d-level texture", level, t.levels))
		return exec
	}
	if x < 0 || y < 0 || x+w > t.width>>level || y+h > t.height>>level {
		exec.deliver(struct{}{}, errors.Errorf("glitz: upload rectangle %dx%d+%d+%d exceeds level %d", w, h, x, y, level))
		return exec
	}
	pix := packedRGBA(src)
	handle := t.handle
	return Submit(t.rc, task.New(t.rc.ID(), func(c *driver.Connection) task.Progress[struct{}] {
		ctx, state := c.Unpack()
		_, upd := state.SetActiveTextureLRU()
		if err := upd.Apply(ctx); err != nil {
			return task.Failed[struct{}](err)
		}
		for _, upd := range []driver.ContextUpdate{
			state.BindTexture2D(handle),
			state.BindPixelUnpackBuffer(gl.Buffer{}),
			state.SetPixelUnpackAlignment(4),
			state.SetPixelUnpackRowLength(0),
		} {
			if err := upd.Apply(ctx); err != nil {
				return task.Failed[struct{}](err)
			}
		}
		ctx.TexSubImage2D(gl.TEXTURE_2D, level, x, y, w, h, gl.RGBA, gl.UNSIGNED_BYTE, pix)
		return task.Finished(struct{}{})
	}))
}

// packedRGBA returns the pixels of src as tightly packed RGBA rows.
func packedRGBA(src image.Image) []byte {
	bounds := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == bounds.Dx()*4 {
		return rgba.Pix[rgba.PixOffset(bounds.Min.X, bounds.Min.Y):]
	}
	tmp := image.NewRGBA(image.Rectangle{Max: bounds.Size()})
	draw.Draw(tmp, tmp.Bounds(), src, bounds.Min, draw.Src)
	return tmp.Pix
}
