package muid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestAllocateDistinctAndRegistered(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(rand.NewSource(1))

	const n = 256
	seen := make(map[MUID]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := Allocate(r, rng)
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if id >= Broadcast {
			t.Fatalf("allocated out-of-range id %#x", uint32(id))
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %#x", uint32(id))
		}
		if !r.Contains(id) {
			t.Fatalf("id %#x not registered", uint32(id))
		}
		seen[id] = struct{}{}
	}
	if r.Len() != n {
		t.Fatalf("registry holds %d ids, want %d", r.Len(), n)
	}
}

func TestAllocateDeterministicPerSeed(t *testing.T) {
	a, err := Allocate(NewRegistry(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	b, err := Allocate(NewRegistry(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced %#x and %#x", uint32(a), uint32(b))
	}
}

func TestAllocateZeroValueRegistry(t *testing.T) {
	var r Registry
	rng := rand.New(rand.NewSource(3))

	id, err := Allocate(&r, rng)
	if err != nil {
		t.Fatalf("allocate on zero value: %v", err)
	}
	if !r.Contains(id) {
		t.Fatalf("id %#x not registered", uint32(id))
	}
	r.Release(id)
	if r.Len() != 0 {
		t.Fatalf("registry not empty: %d", r.Len())
	}

	var untouched Registry
	untouched.Release(5)
	if untouched.Contains(5) || untouched.Len() != 0 {
		t.Fatalf("release on empty zero value mutated the registry")
	}
}

// zeroSource always yields zero, so every draw lands on MUID 0.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestAllocateExhaustion(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(zeroSource{})

	id, err := Allocate(r, rng)
	if err != nil {
		t.Fatalf("first allocate: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected id 0 from zero source, got %#x", uint32(id))
	}

	if _, err := Allocate(r, rng); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("failed allocation must not grow the registry: %d", r.Len())
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(rand.NewSource(7))

	id, err := Allocate(r, rng)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	r.Release(id)
	if r.Contains(id) {
		t.Fatalf("id %#x still registered after release", uint32(id))
	}
	r.Release(id)
	if r.Len() != 0 {
		t.Fatalf("registry not empty: %d", r.Len())
	}
}

func TestBytes7RoundTrip(t *testing.T) {
	id := MUID(0x0ABCDEF)
	b := id.Bytes7()
	for i, v := range b {
		if v&0x80 != 0 {
			t.Fatalf("byte %d not 7-bit clean: %#x", i, v)
		}
	}
	back := MUID(uint32(b[0]) | uint32(b[1])<<7 | uint32(b[2])<<14 | uint32(b[3])<<21)
	if back != id {
		t.Fatalf("reassembled %#x, want %#x", uint32(back), uint32(id))
	}
}

func TestBroadcastNeverAllocated(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		id, err := Allocate(r, rng)
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if id == Broadcast {
			t.Fatalf("broadcast id allocated")
		}
	}
}
