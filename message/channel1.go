package message

import "github.com/danmuck/umpwire/ump"

// Midi1Status is the status nibble of a MIDI 1.0 channel voice message.
type Midi1Status uint8

const (
	Midi1NoteOff         Midi1Status = 0x8
	Midi1NoteOn          Midi1Status = 0x9
	Midi1PolyPressure    Midi1Status = 0xA
	Midi1ControlChange   Midi1Status = 0xB
	Midi1ProgramChange   Midi1Status = 0xC
	Midi1ChannelPressure Midi1Status = 0xD
	Midi1PitchBend       Midi1Status = 0xE
)

// Bank select controller numbers, buffered by the resolution converter.
const (
	ControllerBankSelectMSB uint8 = 0
	ControllerBankSelectLSB uint8 = 32
)

// Midi1ChannelVoice carries a legacy 7-bit-resolution channel voice message
// in its UMP form.
type Midi1ChannelVoice struct {
	group   uint8
	status  Midi1Status
	channel uint8
	data1   uint8
	data2   uint8
}

func (Midi1ChannelVoice) sealed() {}

func (m Midi1ChannelVoice) Type() ump.Type      { return ump.TypeMidi1ChannelVoice }
func (m Midi1ChannelVoice) Group() uint8        { return m.group }
func (m Midi1ChannelVoice) Status() Midi1Status { return m.status }
func (m Midi1ChannelVoice) Channel() uint8      { return m.channel }
func (m Midi1ChannelVoice) Data1() uint8        { return m.data1 }
func (m Midi1ChannelVoice) Data2() uint8        { return m.data2 }

// Note returns the note number for note and poly pressure statuses.
func (m Midi1ChannelVoice) Note() uint8 { return m.data1 }

// Velocity returns the note velocity for note statuses.
func (m Midi1ChannelVoice) Velocity() uint8 { return m.data2 }

// Controller returns the control change index.
func (m Midi1ChannelVoice) Controller() uint8 { return m.data1 }

// ControlValue returns the control change value.
func (m Midi1ChannelVoice) ControlValue() uint8 { return m.data2 }

// Program returns the program change value.
func (m Midi1ChannelVoice) Program() uint8 { return m.data1 }

// PolyPressureValue returns the polyphonic key pressure value.
func (m Midi1ChannelVoice) PolyPressureValue() uint8 { return m.data2 }

// ChannelPressureValue returns the channel key pressure value.
func (m Midi1ChannelVoice) ChannelPressureValue() uint8 { return m.data1 }

// PitchBend returns the 14-bit pitch bend value, LSB in data1.
func (m Midi1ChannelVoice) PitchBend() uint16 {
	return uint16(m.data2)<<7 | uint16(m.data1)
}

func newMidi1(group uint8, status Midi1Status, channel, data1, data2 uint8) (Midi1ChannelVoice, error) {
	if err := checkGroup(group); err != nil {
		return Midi1ChannelVoice{}, err
	}
	if err := checkChannel(channel); err != nil {
		return Midi1ChannelVoice{}, err
	}
	if status < Midi1NoteOff || status > Midi1PitchBend {
		return Midi1ChannelVoice{}, FieldError{Field: "midi1 status", Value: uint32(status), Max: uint32(Midi1PitchBend)}
	}
	if err := checkField("midi1 data1", uint32(data1), 0x7F); err != nil {
		return Midi1ChannelVoice{}, err
	}
	if err := checkField("midi1 data2", uint32(data2), 0x7F); err != nil {
		return Midi1ChannelVoice{}, err
	}
	return Midi1ChannelVoice{group: group, status: status, channel: channel, data1: data1, data2: data2}, nil
}

// NewMidi1NoteOn builds a legacy note on message.
func NewMidi1NoteOn(group, channel, note, velocity uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1NoteOn, channel, note, velocity)
}

// NewMidi1NoteOff builds a legacy note off message.
func NewMidi1NoteOff(group, channel, note, velocity uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1NoteOff, channel, note, velocity)
}

// NewMidi1PolyPressure builds a legacy polyphonic key pressure message.
func NewMidi1PolyPressure(group, channel, note, pressure uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1PolyPressure, channel, note, pressure)
}

// NewMidi1ControlChange builds a legacy control change message.
func NewMidi1ControlChange(group, channel, controller, value uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1ControlChange, channel, controller, value)
}

// NewMidi1ProgramChange builds a legacy program change message.
func NewMidi1ProgramChange(group, channel, program uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1ProgramChange, channel, program, 0)
}

// NewMidi1ChannelPressure builds a legacy channel key pressure message.
func NewMidi1ChannelPressure(group, channel, pressure uint8) (Midi1ChannelVoice, error) {
	return newMidi1(group, Midi1ChannelPressure, channel, pressure, 0)
}

// NewMidi1PitchBend builds a legacy pitch bend message from a 14-bit value.
func NewMidi1PitchBend(group, channel uint8, value uint16) (Midi1ChannelVoice, error) {
	if err := checkField("pitch bend", uint32(value), 0x3FFF); err != nil {
		return Midi1ChannelVoice{}, err
	}
	return newMidi1(group, Midi1PitchBend, channel, uint8(value&0x7F), uint8(value>>7))
}
