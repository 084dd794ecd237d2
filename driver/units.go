// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "github.com/go-glitz/glitz/gl"

// maxTextureUnitEnums is the number of TEXTUREi enum values the API
// defines; driver-reported unit counts never exceed it.
const maxTextureUnitEnums = 64

// TextureUnit returns the enum naming texture unit index. It panics when
// index is outside the range the API can express; callers are expected to
// stay within the driver-reported unit count.
func TextureUnit(index int) gl.Enum {
	if index < 0 || index >= maxTextureUnitEnums {
		panic("driver: texture unit index out of range")
	}
	return gl.TEXTURE0 + gl.Enum(index)
}
