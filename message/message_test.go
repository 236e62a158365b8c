package message

import (
	"bytes"
	"errors"
	"testing"
)

func TestConstructorsRejectOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"group", func() error { _, err := NewNoOp(16); return err }()},
		{"channel", func() error { _, err := NewMidi1NoteOn(0, 16, 60, 100); return err }()},
		{"note", func() error { _, err := NewMidi1NoteOn(0, 0, 0x80, 100); return err }()},
		{"velocity", func() error { _, err := NewMidi1NoteOn(0, 0, 60, 0x80); return err }()},
		{"pitch bend", func() error { _, err := NewMidi1PitchBend(0, 0, 0x4000); return err }()},
		{"song position", func() error { _, err := NewSongPositionPointer(0, 0x4000); return err }()},
		{"utility status", func() error { _, err := NewUtility(0, 5, 0); return err }()},
		{"noop value", func() error { _, err := NewUtility(0, UtilityNoOp, 1); return err }()},
		{"sysex7 length", func() error { _, err := NewSysEx7(0, FormatComplete, make([]byte, 7)); return err }()},
		{"sysex7 byte", func() error { _, err := NewSysEx7(0, FormatComplete, []byte{0x80}); return err }()},
		{"sysex8 length", func() error { _, err := NewSysEx8(0, FormatComplete, 0, make([]byte, 14)); return err }()},
		{"midi2 note", func() error { _, err := NewMidi2NoteOn(0, 0, 0x80, 0, AttrNone, 0); return err }()},
		{"midi2 bank", func() error { _, err := NewMidi2ProgramChange(0, 0, 0, true, 0x4000); return err }()},
		{"flex group channel", func() error { _, err := NewFlex(0, FormatComplete, FlexAddressGroup, 3, 0, 0, [3]uint32{}); return err }()},
		{"stream text", func() error { _, err := NewEndpointName(FormatComplete, make([]byte, 15)); return err }()},
	}

	for _, c := range cases {
		if !errors.Is(c.err, ErrFieldOutOfRange) {
			t.Fatalf("%s: expected ErrFieldOutOfRange, got %v", c.name, c.err)
		}
		var fe FieldError
		if !errors.As(c.err, &fe) {
			t.Fatalf("%s: expected FieldError, got %T", c.name, c.err)
		}
	}
}

func TestMidi1PitchBendSplitsFourteenBits(t *testing.T) {
	m, err := NewMidi1PitchBend(0, 0, 0x2ABC)
	if err != nil {
		t.Fatalf("build pitch bend: %v", err)
	}
	if m.Data1() != 0x3C || m.Data2() != 0x55 {
		t.Fatalf("unexpected split: data1=%#x data2=%#x", m.Data1(), m.Data2())
	}
	if m.PitchBend() != 0x2ABC {
		t.Fatalf("recombined %#x, want 0x2ABC", m.PitchBend())
	}
}

func TestSongPositionRecombines(t *testing.T) {
	m, err := NewSongPositionPointer(2, 0x1234)
	if err != nil {
		t.Fatalf("build song position: %v", err)
	}
	if m.SongPosition() != 0x1234 {
		t.Fatalf("song position %#x, want 0x1234", m.SongPosition())
	}
}

func TestMidi2ProgramChangeBankEncoding(t *testing.T) {
	m, err := NewMidi2ProgramChange(0, 0, 20, true, (5<<7)|10)
	if err != nil {
		t.Fatalf("build program change: %v", err)
	}
	if !m.BankValid() || m.Bank() != (5<<7)|10 || m.Program() != 20 {
		t.Fatalf("unexpected program change: %#v", m)
	}

	plain, err := NewMidi2ProgramChange(0, 0, 20, false, 0)
	if err != nil {
		t.Fatalf("build program change: %v", err)
	}
	if plain.BankValid() || plain.Bank() != 0 {
		t.Fatalf("bank fields must be empty without a bank: %#v", plain)
	}
}

func TestSysExPayloads(t *testing.T) {
	s7, err := NewSysEx7(0, FormatComplete, []byte{0x7E, 0x09})
	if err != nil {
		t.Fatalf("build sysex7: %v", err)
	}
	if !bytes.Equal(s7.Payload(), []byte{0x7E, 0x09}) {
		t.Fatalf("sysex7 payload %#v", s7.Payload())
	}

	s8, err := NewSysEx8(0, FormatEnd, 0x11, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("build sysex8: %v", err)
	}
	if s8.StreamID() != 0x11 || s8.Count() != 4 {
		t.Fatalf("unexpected sysex8 header: %#v", s8)
	}
	if !bytes.Equal(s8.Payload(), []byte{1, 2, 3}) {
		t.Fatalf("sysex8 payload %#v", s8.Payload())
	}
}

func TestFlexTempoBPM(t *testing.T) {
	m, err := NewFlexTempoBPM(0, 120)
	if err != nil {
		t.Fatalf("build tempo: %v", err)
	}
	if m.Tempo() != 50000000 {
		t.Fatalf("tempo %d, want 50000000", m.Tempo())
	}
	if bpm := m.BPM(); bpm < 119.99 || bpm > 120.01 {
		t.Fatalf("bpm %f, want 120", bpm)
	}
}

func TestFlexKeySignatureSigned(t *testing.T) {
	m, err := NewFlexKeySignature(0, 0, FlexAddressGroup, -3, 2)
	if err != nil {
		t.Fatalf("build key signature: %v", err)
	}
	sharps, tonic := m.KeySignature()
	if sharps != -3 || tonic != 2 {
		t.Fatalf("key signature (%d, %d), want (-3, 2)", sharps, tonic)
	}
}

func TestFlexTextTrimsPadding(t *testing.T) {
	m, err := NewFlexText(0, 0, FlexAddressGroup, FormatComplete,
		FlexBankPerformanceText, FlexStatusLyrics, []byte("la la"))
	if err != nil {
		t.Fatalf("build text: %v", err)
	}
	if !bytes.Equal(m.Text(), []byte("la la")) {
		t.Fatalf("text %q", m.Text())
	}
}

func TestStreamEndpointName(t *testing.T) {
	m, err := NewEndpointName(FormatComplete, []byte("wire synth"))
	if err != nil {
		t.Fatalf("build endpoint name: %v", err)
	}
	if !bytes.Equal(m.Name(), []byte("wire synth")) {
		t.Fatalf("name %q", m.Name())
	}
	if m.Group() != 0 {
		t.Fatalf("stream messages carry no group, got %d", m.Group())
	}
}

func TestStreamConfigurationBits(t *testing.T) {
	m, err := NewStreamConfigurationRequest(2, true, true)
	if err != nil {
		t.Fatalf("build configuration request: %v", err)
	}
	if m.Protocol() != 2 {
		t.Fatalf("protocol %d, want 2", m.Protocol())
	}
	if m.Data0()&0x03 != 0x03 {
		t.Fatalf("jitter-reduction bits not set: %#x", m.Data0())
	}
}

func TestStreamUnassignedStatus(t *testing.T) {
	for _, status := range []StreamStatus{0x07, 0x15, 0x3FF} {
		if _, err := NewStream(FormatComplete, status, 0, [3]uint32{}); !errors.Is(err, ErrFieldOutOfRange) {
			t.Fatalf("status %#x: expected ErrFieldOutOfRange, got %v", uint16(status), err)
		}
	}
	if !KnownStreamStatus(StreamFunctionBlockName) || KnownStreamStatus(0x13) {
		t.Fatalf("assigned status set is wrong")
	}
}

func TestPerNoteControllerName(t *testing.T) {
	if name := PerNoteControllerName(PerNotePitch725); name != "pitch-7.25" {
		t.Fatalf("unexpected name: %q", name)
	}
	if name := PerNoteControllerName(0x55); name != "other" {
		t.Fatalf("unexpected name for unassigned index: %q", name)
	}
}
