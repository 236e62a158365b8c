// Package bridge converts between the typed message set and the byte
// oriented messages used by gitlab.com/gomidi/midi/v2, so existing
// drivers and SMF tooling can feed or drain a packet stream.
package bridge

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/danmuck/umpwire/message"
)

// ErrNotChannelVoice reports a byte message outside the channel voice
// range, which has no legacy channel voice equivalent.
var ErrNotChannelVoice = errors.New("bridge: not a channel voice message")

// ToUMP lifts a gomidi channel voice message into the typed legacy
// message set on the given group.
func ToUMP(group uint8, msg midi.Message) (message.Midi1ChannelVoice, error) {
	var (
		channel, key, velocity uint8
		controller, value      uint8
		program, pressure      uint8
		rel                    int16
		abs                    uint16
	)

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return message.NewMidi1NoteOn(group, channel, key, velocity)
	case msg.GetNoteOff(&channel, &key, &velocity):
		return message.NewMidi1NoteOff(group, channel, key, velocity)
	case msg.GetPolyAfterTouch(&channel, &key, &pressure):
		return message.NewMidi1PolyPressure(group, channel, key, pressure)
	case msg.GetControlChange(&channel, &controller, &value):
		return message.NewMidi1ControlChange(group, channel, controller, value)
	case msg.GetProgramChange(&channel, &program):
		return message.NewMidi1ProgramChange(group, channel, program)
	case msg.GetAfterTouch(&channel, &pressure):
		return message.NewMidi1ChannelPressure(group, channel, pressure)
	case msg.GetPitchBend(&channel, &rel, &abs):
		return message.NewMidi1PitchBend(group, channel, abs)
	}

	return message.Midi1ChannelVoice{}, fmt.Errorf("%w: %s", ErrNotChannelVoice, msg.Type())
}

// FromUMP lowers a typed legacy message back into gomidi's byte form.
// The group is dropped; byte streams carry no group.
func FromUMP(m message.Midi1ChannelVoice) midi.Message {
	channel := m.Channel()
	switch m.Status() {
	case message.Midi1NoteOn:
		return midi.NoteOn(channel, m.Note(), m.Velocity())
	case message.Midi1NoteOff:
		return midi.NoteOffVelocity(channel, m.Note(), m.Velocity())
	case message.Midi1PolyPressure:
		return midi.PolyAfterTouch(channel, m.Note(), m.PolyPressureValue())
	case message.Midi1ControlChange:
		return midi.ControlChange(channel, m.Controller(), m.ControlValue())
	case message.Midi1ProgramChange:
		return midi.ProgramChange(channel, m.Program())
	case message.Midi1ChannelPressure:
		return midi.AfterTouch(channel, m.ChannelPressureValue())
	case message.Midi1PitchBend:
		return midi.Pitchbend(channel, int16(m.PitchBend())-8192)
	}

	// Status is validated at construction; the switch is exhaustive.
	return nil
}
