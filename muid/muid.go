// Package muid allocates and tracks 28-bit MIDI unique identifiers.
package muid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Broadcast addresses every device on the bus. It is reserved and never
// allocated.
const Broadcast MUID = 0x0FFFFFFF

// maxAttempts bounds the rejection loop in Allocate. A registry dense
// enough to exhaust it holds a meaningful fraction of the 28-bit space.
const maxAttempts = 1000

// ErrExhausted reports that Allocate could not find a free identifier
// within its retry budget.
var ErrExhausted = errors.New("muid: identifier space exhausted")

// MUID is a 28-bit identifier carried in System Exclusive negotiation
// payloads. Valid values lie in [0, Broadcast).
type MUID uint32

func (m MUID) String() string {
	return fmt.Sprintf("%07X", uint32(m)&0x0FFFFFFF)
}

// Bytes7 splits the identifier into four 7-bit bytes, least significant
// first, as it travels inside a System Exclusive body.
func (m MUID) Bytes7() [4]uint8 {
	v := uint32(m)
	return [4]uint8{
		uint8(v) & 0x7F,
		uint8(v>>7) & 0x7F,
		uint8(v>>14) & 0x7F,
		uint8(v>>21) & 0x7F,
	}
}

// Registry tracks the identifiers currently in use on one bus. The zero
// value is ready to use. It is not safe for concurrent use; callers
// serialize access.
type Registry struct {
	inUse map[MUID]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{inUse: make(map[MUID]struct{})}
}

// Contains reports whether id is currently allocated.
func (r *Registry) Contains(id MUID) bool {
	_, ok := r.inUse[id]
	return ok
}

// Len returns the number of allocated identifiers.
func (r *Registry) Len() int {
	return len(r.inUse)
}

// Release returns id to the free pool. Releasing an identifier that was
// never allocated is a no-op.
func (r *Registry) Release(id MUID) {
	delete(r.inUse, id)
}

// Allocate draws a fresh identifier from rng, registers it, and returns
// it. The broadcast value is never drawn. When every draw within the
// retry budget collides with an allocated identifier, Allocate returns
// ErrExhausted and the registry is unchanged.
func Allocate(r *Registry, rng *rand.Rand) (MUID, error) {
	if r.inUse == nil {
		r.inUse = make(map[MUID]struct{})
	}
	for i := 0; i < maxAttempts; i++ {
		id := MUID(rng.Int31n(int32(Broadcast)))
		if r.Contains(id) {
			continue
		}
		r.inUse[id] = struct{}{}
		return id, nil
	}
	return 0, fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}
