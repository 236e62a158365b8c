package convert

import (
	"errors"
	"fmt"

	"github.com/danmuck/umpwire/message"
)

// ErrUnsupportedLegacy reports a legacy message with no MIDI 2.0
// equivalent. It is never returned for the seven assigned channel voice
// statuses.
var ErrUnsupportedLegacy = errors.New("convert: unsupported legacy message")

// State buffers pending bank select values per channel for one conversion
// stream. Two independent streams must use two States; the zero value is
// ready to use.
type State struct {
	channels [16]channelState
}

type channelState struct {
	bankMSB uint8
	bankLSB uint8
	msbSet  bool
	lsbSet  bool
}

// Result is the outcome of converting one legacy message.
type Result struct {
	// Message is the MIDI 2.0 equivalent when Emitted is true.
	Message message.Midi2ChannelVoice

	// Emitted is false when the input was buffered into the state and
	// nothing is produced yet (bank select controllers).
	Emitted bool
}

// Deferred reports whether the conversion buffered its input instead of
// emitting a message.
func (r Result) Deferred() bool { return !r.Emitted }

// Convert raises one legacy channel voice message to MIDI 2.0 resolution,
// updating per-channel bank state as a side effect.
func (s *State) Convert(m message.Midi1ChannelVoice) (Result, error) {
	group, channel := m.Group(), m.Channel()

	switch m.Status() {
	case message.Midi1NoteOn:
		velocity := uint16(0)
		if m.Velocity() != 0 {
			velocity = Scale7To16(m.Velocity())
		}
		out, err := message.NewMidi2NoteOn(group, channel, m.Note(), velocity, message.AttrNone, 0)
		return emitted(out, err)

	case message.Midi1NoteOff:
		velocity := uint16(0)
		if m.Velocity() != 0 {
			velocity = Scale7To16(m.Velocity())
		}
		out, err := message.NewMidi2NoteOff(group, channel, m.Note(), velocity, message.AttrNone, 0)
		return emitted(out, err)

	case message.Midi1PolyPressure:
		out, err := message.NewMidi2PolyPressure(group, channel, m.Note(), Scale7To32(m.PolyPressureValue()))
		return emitted(out, err)

	case message.Midi1ControlChange:
		ch := &s.channels[channel]
		switch m.Controller() {
		case message.ControllerBankSelectMSB:
			ch.bankMSB, ch.msbSet = m.ControlValue(), true
			return Result{}, nil
		case message.ControllerBankSelectLSB:
			ch.bankLSB, ch.lsbSet = m.ControlValue(), true
			return Result{}, nil
		}
		out, err := message.NewMidi2ControlChange(group, channel, m.Controller(), Scale7To32(m.ControlValue()))
		return emitted(out, err)

	case message.Midi1ProgramChange:
		ch := &s.channels[channel]
		bankValid := ch.msbSet || ch.lsbSet
		bank := uint16(ch.bankMSB)<<7 | uint16(ch.bankLSB)
		*ch = channelState{}
		if !bankValid {
			bank = 0
		}
		out, err := message.NewMidi2ProgramChange(group, channel, m.Program(), bankValid, bank)
		return emitted(out, err)

	case message.Midi1ChannelPressure:
		out, err := message.NewMidi2ChannelPressure(group, channel, Scale7To32(m.ChannelPressureValue()))
		return emitted(out, err)

	case message.Midi1PitchBend:
		out, err := message.NewMidi2PitchBend(group, channel, Scale14To32(m.PitchBend()))
		return emitted(out, err)
	}

	return Result{}, fmt.Errorf("%w: status %#x", ErrUnsupportedLegacy, uint8(m.Status()))
}

func emitted(m message.Midi2ChannelVoice, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Message: m, Emitted: true}, nil
}
