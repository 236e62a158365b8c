package bridge

import (
	"errors"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"github.com/danmuck/umpwire/message"
)

func TestToUMPChannelVoice(t *testing.T) {
	m, err := ToUMP(3, midi.NoteOn(2, 60, 100))
	if err != nil {
		t.Fatalf("to ump: %v", err)
	}
	if m.Group() != 3 || m.Status() != message.Midi1NoteOn || m.Channel() != 2 ||
		m.Note() != 60 || m.Velocity() != 100 {
		t.Fatalf("unexpected message: %#v", m)
	}

	cc, err := ToUMP(0, midi.ControlChange(5, 7, 127))
	if err != nil {
		t.Fatalf("to ump: %v", err)
	}
	if cc.Status() != message.Midi1ControlChange || cc.Controller() != 7 || cc.ControlValue() != 127 {
		t.Fatalf("unexpected control change: %#v", cc)
	}

	pb, err := ToUMP(0, midi.Pitchbend(1, 0))
	if err != nil {
		t.Fatalf("to ump: %v", err)
	}
	if pb.Status() != message.Midi1PitchBend || pb.PitchBend() != 0x2000 {
		t.Fatalf("center pitch bend lost: %#v", pb)
	}
}

func TestToUMPRejectsNonChannelVoice(t *testing.T) {
	_, err := ToUMP(0, midi.Activesense())
	if !errors.Is(err, ErrNotChannelVoice) {
		t.Fatalf("expected ErrNotChannelVoice, got %v", err)
	}
}

func TestFromUMPRoundTrip(t *testing.T) {
	build := func(m message.Midi1ChannelVoice, err error) message.Midi1ChannelVoice {
		t.Helper()
		if err != nil {
			t.Fatalf("build message: %v", err)
		}
		return m
	}

	msgs := []message.Midi1ChannelVoice{
		build(message.NewMidi1NoteOn(0, 2, 60, 100)),
		build(message.NewMidi1NoteOff(0, 2, 60, 40)),
		build(message.NewMidi1PolyPressure(0, 0, 60, 90)),
		build(message.NewMidi1ControlChange(0, 5, 7, 127)),
		build(message.NewMidi1ProgramChange(0, 1, 30)),
		build(message.NewMidi1ChannelPressure(0, 1, 64)),
		build(message.NewMidi1PitchBend(0, 3, 0x2000)),
	}

	for _, want := range msgs {
		got, err := ToUMP(0, FromUMP(want))
		if err != nil {
			t.Fatalf("%#v: round trip: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, want)
		}
	}
}
