//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package glitz

// manualScheduler leaves re-polling to the host, which calls Tick from its
// own event loop.
type manualScheduler struct{}

func newTickScheduler(*RenderingContext) tickScheduler {
	return manualScheduler{}
}

func (manualScheduler) schedule() {}
