// SPDX-License-Identifier: Unlicense OR MIT

package glitz

// PowerPreference hints which GPU the browser should pick for the context.
type PowerPreference string

const (
	PowerDefault         PowerPreference = "default"
	PowerHighPerformance PowerPreference = "high-performance"
	PowerLowPower        PowerPreference = "low-power"
)

// ContextOptions is the attribute dictionary passed to the canvas when the
// underlying context is created. The zero value is not useful; start from
// DefaultContextOptions.
type ContextOptions struct {
	Alpha                        bool
	Depth                        bool
	Stencil                      bool
	Antialias                    bool
	PremultipliedAlpha           bool
	PreserveDrawingBuffer        bool
	FailIfMajorPerformanceCaveat bool
	PowerPreference              PowerPreference
}

// DefaultContextOptions mirrors the browser defaults for a WebGL2 context.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		Alpha:              true,
		Depth:              true,
		Antialias:          true,
		PremultipliedAlpha: true,
		PowerPreference:    PowerDefault,
	}
}
