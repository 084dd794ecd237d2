// SPDX-License-Identifier: Unlicense OR MIT

package driver

import (
	"fmt"

	"github.com/go-glitz/glitz/gl"
)

// ContextID identifies the rendering context a resource or task belongs to.
// The zero value is the "any context" id carried by tasks that do not touch
// context-owned objects.
type ContextID uint64

// MismatchedContextError reports an attempt to combine work belonging to
// two different rendering contexts.
type MismatchedContextError struct {
	A, B ContextID
}

func (e *MismatchedContextError) Error() string {
	return fmt.Sprintf("driver: objects from context %d used with context %d", e.B, e.A)
}

// Combine merges two context ids. Zero ids are compatible with anything;
// two distinct non-zero ids yield a MismatchedContextError.
func (id ContextID) Combine(other ContextID) (ContextID, error) {
	switch {
	case id == 0:
		return other, nil
	case other == 0 || other == id:
		return id, nil
	default:
		return 0, &MismatchedContextError{A: id, B: other}
	}
}

// Connection pairs a live context with the state cache that mirrors it. It
// is the only object through which driver calls are made: exactly one
// Connection exists per underlying context, and every task receives it
// exclusively for the duration of a single progress call.
type Connection struct {
	id    ContextID
	ctx   gl.Context
	state *State
}

// NewConnection wraps ctx and a freshly initialized state cache. The
// context must be in its initial state, and must not be mutated through any
// other handle afterwards.
func NewConnection(id ContextID, ctx gl.Context) *Connection {
	return &Connection{
		id:    id,
		ctx:   ctx,
		state: NewState(ctx),
	}
}

// ID returns the id of the underlying context.
func (c *Connection) ID() ContextID { return c.id }

// Unpack returns the live context and the state cache together.
//
// Callers that mutate the context directly, bypassing the cache setters,
// must update the cache to match before returning control; the runtime has
// no way to detect a stale cache and subsequent tasks would issue calls
// against state that no longer exists.
func (c *Connection) Unpack() (gl.Context, *State) {
	return c.ctx, c.state
}
