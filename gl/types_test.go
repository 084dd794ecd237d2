//go:build !js

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "testing"

func TestHandleValidity(t *testing.T) {
	if (Buffer{}).Valid() {
		t.Error("zero buffer is valid")
	}
	if !(Buffer{V: 1}).Valid() {
		t.Error("allocated buffer is invalid")
	}
}

func TestHandleIdentity(t *testing.T) {
	a, b := Buffer{V: 1}, Buffer{V: 2}
	if a.Equal(b) {
		t.Error("distinct handles compare equal")
	}
	if !a.Equal(Buffer{V: 1}) {
		t.Error("handle does not compare equal to itself")
	}
	if !(Buffer{}).Equal(Buffer{}) {
		t.Error("two zero handles do not compare equal")
	}
}
