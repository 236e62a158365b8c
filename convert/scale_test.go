package convert

import "testing"

func TestScale7To16Anchors(t *testing.T) {
	if got := Scale7To16(0); got != 0 {
		t.Fatalf("Scale7To16(0) = %#x", got)
	}
	if got := Scale7To16(0x40); got != 0x8000 {
		t.Fatalf("Scale7To16(center) = %#x, want 0x8000", got)
	}
	if got := Scale7To16(0x7F); got != 0xFFFF {
		t.Fatalf("Scale7To16(max) = %#x, want 0xFFFF", got)
	}
}

func TestScale7To16Monotonic(t *testing.T) {
	prev := uint16(0)
	for v := uint8(1); v < 0x80; v++ {
		got := Scale7To16(v)
		if got <= prev {
			t.Fatalf("Scale7To16(%d) = %#x not above Scale7To16(%d) = %#x", v, got, v-1, prev)
		}
		prev = got
	}
}

func TestScale7To32Anchors(t *testing.T) {
	if got := Scale7To32(0); got != 0 {
		t.Fatalf("Scale7To32(0) = %#x", got)
	}
	if got := Scale7To32(0x40); got != 0x80000000 {
		t.Fatalf("Scale7To32(center) = %#x, want 0x80000000", got)
	}
	if got := Scale7To32(0x7F); got != 0xFFFFFFFF {
		t.Fatalf("Scale7To32(max) = %#x, want 0xFFFFFFFF", got)
	}
}

func TestScale14To32Anchors(t *testing.T) {
	if got := Scale14To32(0); got != 0 {
		t.Fatalf("Scale14To32(0) = %#x", got)
	}
	if got := Scale14To32(0x2000); got != 0x80000000 {
		t.Fatalf("Scale14To32(center) = %#x, want 0x80000000", got)
	}
	if got := Scale14To32(0x3FFF); got != 0xFFFFFFFF {
		t.Fatalf("Scale14To32(max) = %#x, want 0xFFFFFFFF", got)
	}
}

func TestScale14To32Monotonic(t *testing.T) {
	prev := uint32(0)
	for v := uint16(1); v < 0x4000; v++ {
		got := Scale14To32(v)
		if got <= prev {
			t.Fatalf("Scale14To32(%d) = %#x not above previous %#x", v, got, prev)
		}
		prev = got
	}
}
