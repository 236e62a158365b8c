package ump

import "testing"

func TestWordCountTable(t *testing.T) {
	cases := []struct {
		typ  Type
		want int
	}{
		{TypeUtility, 1},
		{TypeSystem, 1},
		{TypeMidi1ChannelVoice, 1},
		{TypeData64, 2},
		{TypeMidi2ChannelVoice, 2},
		{TypeData128, 4},
		{TypeFlexData, 4},
		{TypeStream, 4},
	}
	for _, tc := range cases {
		n, ok := WordCount(tc.typ)
		if !ok {
			t.Fatalf("type %s: expected supported", tc.typ)
		}
		if n != tc.want {
			t.Fatalf("type %s: word count got %d want %d", tc.typ, n, tc.want)
		}
	}
}

func TestWordCountReservedNibblesUnsupported(t *testing.T) {
	for _, typ := range []Type{0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC, 0xE} {
		if _, ok := WordCount(typ); ok {
			t.Fatalf("nibble %#x: expected unsupported", uint8(typ))
		}
	}
}

func TestClassifyFirstWord(t *testing.T) {
	typ, n, ok := Classify(0x40903C00)
	if !ok {
		t.Fatalf("expected supported category")
	}
	if typ != TypeMidi2ChannelVoice || n != 2 {
		t.Fatalf("classify: got (%s, %d)", typ, n)
	}

	if _, _, ok := Classify(0xB0000000); ok {
		t.Fatalf("reserved nibble must not classify")
	}
}

func TestFirstWordFieldExtraction(t *testing.T) {
	const word0 = 0x2A914263
	if TypeOf(word0) != TypeMidi1ChannelVoice {
		t.Fatalf("type nibble: got %s", TypeOf(word0))
	}
	if GroupOf(word0) != 0xA {
		t.Fatalf("group nibble: got %d", GroupOf(word0))
	}
}
