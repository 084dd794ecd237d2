// SPDX-License-Identifier: Unlicense OR MIT

// Package gl is a thin layer over a WebGL2 rendering context. It exposes
// only the subset of the API that the glitz runtime issues; all calls are
// expected to go through a driver.Connection so that the state cache stays
// coherent with the context.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALREADY_SIGNALED                        = 0x911A
	ALWAYS                                  = 0x207
	ARRAY_BUFFER                            = 0x8892
	BACK                                    = 0x0405
	BLEND                                   = 0x0be2
	CCW                                     = 0x0901
	CLAMP_TO_EDGE                           = 0x812f
	COLOR_ATTACHMENT0                       = 0x8ce0
	COLOR_BUFFER_BIT                        = 0x4000
	CONDITION_SATISFIED                     = 0x911C
	COPY_READ_BUFFER                        = 0x8F36
	COPY_WRITE_BUFFER                       = 0x8F37
	CULL_FACE                               = 0x0B44
	CW                                      = 0x0900
	DEPTH_ATTACHMENT                        = 0x8d00
	DEPTH_BUFFER_BIT                        = 0x100
	DEPTH_COMPONENT16                       = 0x81a5
	DEPTH_COMPONENT24                       = 0x81A6
	DEPTH_COMPONENT32F                      = 0x8CAC
	DEPTH_STENCIL_ATTACHMENT                = 0x821A
	DEPTH_STENCIL                           = 0x84F9
	DEPTH24_STENCIL8                        = 0x88F0
	DEPTH_TEST                              = 0x0b71
	DITHER                                  = 0x0BD0
	DRAW_FRAMEBUFFER                        = 0x8CA9
	DST_COLOR                               = 0x306
	DYNAMIC_DRAW                            = 0x88E8
	DYNAMIC_READ                            = 0x88E9
	ELEMENT_ARRAY_BUFFER                    = 0x8893
	EQUAL                                   = 0x202
	FALSE                                   = 0
	FLOAT                                   = 0x1406
	FRAGMENT_SHADER                         = 0x8b30
	FRAMEBUFFER                             = 0x8d40
	FRAMEBUFFER_COMPLETE                    = 0x8cd5
	FRONT                                   = 0x0404
	FRONT_AND_BACK                          = 0x0408
	FUNC_ADD                                = 0x8006
	FUNC_REVERSE_SUBTRACT                   = 0x800B
	FUNC_SUBTRACT                           = 0x800A
	GEQUAL                                  = 0x206
	GREATER                                 = 0x204
	HALF_FLOAT                              = 0x140b
	INVALID_INDEX                           = ^uint(0)
	KEEP                                    = 0x1E00
	LEQUAL                                  = 0x203
	LESS                                    = 0x201
	LINEAR                                  = 0x2601
	LINEAR_MIPMAP_LINEAR                    = 0x2703
	MAX_COLOR_ATTACHMENTS                   = 0x8CDF
	MAX_COMBINED_TEXTURE_IMAGE_UNITS        = 0x8B4D
	MAX_DRAW_BUFFERS                        = 0x8824
	MAX_TEXTURE_SIZE                        = 0x0d33
	MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS = 0x8C8B
	MAX_UNIFORM_BUFFER_BINDINGS             = 0x8A2F
	MIRRORED_REPEAT                         = 0x8370
	NEAREST                                 = 0x2600
	NEVER                                   = 0x200
	NONE                                    = 0
	NOTEQUAL                                = 0x205
	NO_ERROR                                = 0x0
	ONE                                     = 0x1
	ONE_MINUS_SRC_ALPHA                     = 0x303
	PIXEL_PACK_BUFFER                       = 0x88EB
	PIXEL_UNPACK_BUFFER                     = 0x88EC
	POLYGON_OFFSET_FILL                     = 0x8037
	R8                                      = 0x8229
	RASTERIZER_DISCARD                      = 0x8C89
	READ_FRAMEBUFFER                        = 0x8ca8
	RED                                     = 0x1903
	RENDERBUFFER                            = 0x8d41
	REPEAT                                  = 0x2901
	REPLACE                                 = 0x1E01
	RGB                                     = 0x1907
	RGBA                                    = 0x1908
	RGBA8                                   = 0x8058
	SAMPLE_ALPHA_TO_COVERAGE                = 0x809E
	SAMPLE_COVERAGE                         = 0x80A0
	SCISSOR_TEST                            = 0x0C11
	SIGNALED                                = 0x9119
	SRC_ALPHA                               = 0x302
	SRGB8_ALPHA8                            = 0x8c43
	STATIC_DRAW                             = 0x88e4
	STENCIL_ATTACHMENT                      = 0x8D20
	STENCIL_BUFFER_BIT                      = 0x00000400
	STENCIL_INDEX8                          = 0x8D48
	STENCIL_TEST                            = 0x0B90
	STREAM_DRAW                             = 0x88E0
	STREAM_READ                             = 0x88E1
	SYNC_GPU_COMMANDS_COMPLETE              = 0x9117
	SYNC_STATUS                             = 0x9114
	TEXTURE_2D                              = 0x0de1
	TEXTURE_2D_ARRAY                        = 0x8C1A
	TEXTURE_3D                              = 0x806F
	TEXTURE_CUBE_MAP                        = 0x8513
	TEXTURE_MAG_FILTER                      = 0x2800
	TEXTURE_MIN_FILTER                      = 0x2801
	TEXTURE_WRAP_R                          = 0x8072
	TEXTURE_WRAP_S                          = 0x2802
	TEXTURE_WRAP_T                          = 0x2803
	TEXTURE0                                = 0x84c0
	TIMEOUT_EXPIRED                         = 0x911B
	TRANSFORM_FEEDBACK                      = 0x8E22
	TRANSFORM_FEEDBACK_BUFFER               = 0x8C8E
	TRIANGLES                               = 0x4
	TRIANGLE_STRIP                          = 0x5
	TRUE                                    = 1
	UNIFORM_BUFFER                          = 0x8A11
	UNPACK_ALIGNMENT                        = 0x0cf5
	UNPACK_IMAGE_HEIGHT                     = 0x806E
	UNPACK_ROW_LENGTH                       = 0x0CF2
	UNSIGNALED                              = 0x9118
	UNSIGNED_BYTE                           = 0x1401
	UNSIGNED_SHORT                          = 0x1403
	VERTEX_SHADER                           = 0x8b31
	ZERO                                    = 0x0
)
