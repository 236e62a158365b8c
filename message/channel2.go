package message

import "github.com/danmuck/umpwire/ump"

// Midi2Status is the status nibble of a MIDI 2.0 channel voice message.
type Midi2Status uint8

const (
	Midi2RegisteredPerNote  Midi2Status = 0x0
	Midi2AssignablePerNote  Midi2Status = 0x1
	Midi2RegisteredControl  Midi2Status = 0x2
	Midi2AssignableControl  Midi2Status = 0x3
	Midi2RelativeRegistered Midi2Status = 0x4
	Midi2RelativeAssignable Midi2Status = 0x5
	Midi2PerNotePitchBend   Midi2Status = 0x6
	Midi2NoteOff            Midi2Status = 0x8
	Midi2NoteOn             Midi2Status = 0x9
	Midi2PolyPressure       Midi2Status = 0xA
	Midi2ControlChange      Midi2Status = 0xB
	Midi2ProgramChange      Midi2Status = 0xC
	Midi2ChannelPressure    Midi2Status = 0xD
	Midi2PitchBend          Midi2Status = 0xE
	Midi2PerNoteManagement  Midi2Status = 0xF
)

// Note attribute types for MIDI 2.0 note on/off.
const (
	AttrNone         uint8 = 0x0
	AttrManufacturer uint8 = 0x1
	AttrProfile      uint8 = 0x2
	AttrPitch79      uint8 = 0x3
)

// Per-note management option flags.
const (
	PerNoteReset  uint8 = 0x01
	PerNoteDetach uint8 = 0x02
)

// Program change option flag: the bank fields are valid.
const programBankValid uint8 = 0x01

// Midi2ChannelVoice carries a MIDI 2.0 channel voice message. index1 and
// index2 are the third and fourth bytes of the first word; their meaning
// depends on the status, as does the 32-bit payload word.
type Midi2ChannelVoice struct {
	group   uint8
	status  Midi2Status
	channel uint8
	index1  uint8
	index2  uint8
	data    uint32
}

func (Midi2ChannelVoice) sealed() {}

func (m Midi2ChannelVoice) Type() ump.Type      { return ump.TypeMidi2ChannelVoice }
func (m Midi2ChannelVoice) Group() uint8        { return m.group }
func (m Midi2ChannelVoice) Status() Midi2Status { return m.status }
func (m Midi2ChannelVoice) Channel() uint8      { return m.channel }
func (m Midi2ChannelVoice) Index1() uint8       { return m.index1 }
func (m Midi2ChannelVoice) Index2() uint8       { return m.index2 }
func (m Midi2ChannelVoice) Data() uint32        { return m.data }

// Note returns the note number for note-scoped statuses.
func (m Midi2ChannelVoice) Note() uint8 { return m.index1 }

// Velocity returns the 16-bit note velocity.
func (m Midi2ChannelVoice) Velocity() uint16 { return uint16(m.data >> 16) }

// AttributeType returns the note attribute type nibble.
func (m Midi2ChannelVoice) AttributeType() uint8 { return m.index2 }

// AttributeData returns the 16-bit note attribute payload.
func (m Midi2ChannelVoice) AttributeData() uint16 { return uint16(m.data) }

// Controller returns the control change index.
func (m Midi2ChannelVoice) Controller() uint8 { return m.index1 }

// Value returns the full-width 32-bit payload, meaningful for control,
// pressure, and pitch bend statuses.
func (m Midi2ChannelVoice) Value() uint32 { return m.data }

// ControllerBank returns the bank byte of a registered or assignable
// controller message.
func (m Midi2ChannelVoice) ControllerBank() uint8 { return m.index1 }

// ControllerIndex returns the index byte of a registered or assignable
// controller message.
func (m Midi2ChannelVoice) ControllerIndex() uint8 { return m.index2 }

// Program returns the program change value.
func (m Midi2ChannelVoice) Program() uint8 { return uint8(m.data >> 24) }

// BankValid reports whether the program change carries a bank selection.
func (m Midi2ChannelVoice) BankValid() bool { return m.index2&programBankValid != 0 }

// Bank returns the 14-bit bank number of a program change.
func (m Midi2ChannelVoice) Bank() uint16 {
	return uint16(m.data>>8&0x7F)<<7 | uint16(m.data&0x7F)
}

// ManagementFlags returns the per-note management option flags.
func (m Midi2ChannelVoice) ManagementFlags() uint8 { return m.index2 }

func newMidi2(group uint8, status Midi2Status, channel, index1, index2 uint8, data uint32) (Midi2ChannelVoice, error) {
	if err := checkGroup(group); err != nil {
		return Midi2ChannelVoice{}, err
	}
	if err := checkChannel(channel); err != nil {
		return Midi2ChannelVoice{}, err
	}
	if err := checkField("midi2 status", uint32(status), 0x0F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return Midi2ChannelVoice{group: group, status: status, channel: channel, index1: index1, index2: index2, data: data}, nil
}

// NewMidi2NoteOn builds a MIDI 2.0 note on with 16-bit velocity and an
// optional attribute (AttrNone with zero data when unused).
func NewMidi2NoteOn(group, channel, note uint8, velocity uint16, attrType uint8, attrData uint16) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2NoteOn, channel, note, attrType, uint32(velocity)<<16|uint32(attrData))
}

// NewMidi2NoteOff builds a MIDI 2.0 note off with 16-bit release velocity.
func NewMidi2NoteOff(group, channel, note uint8, velocity uint16, attrType uint8, attrData uint16) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2NoteOff, channel, note, attrType, uint32(velocity)<<16|uint32(attrData))
}

// NewMidi2PolyPressure builds a polyphonic key pressure message with a
// 32-bit value.
func NewMidi2PolyPressure(group, channel, note uint8, pressure uint32) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2PolyPressure, channel, note, 0, pressure)
}

// NewMidi2ControlChange builds a control change with a 32-bit value.
func NewMidi2ControlChange(group, channel, controller uint8, value uint32) (Midi2ChannelVoice, error) {
	if err := checkField("controller", uint32(controller), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2ControlChange, channel, controller, 0, value)
}

// NewMidi2RegisteredControl builds a registered (RPN) controller message.
func NewMidi2RegisteredControl(group, channel, bank, index uint8, value uint32) (Midi2ChannelVoice, error) {
	return newControllerMessage(group, Midi2RegisteredControl, channel, bank, index, value)
}

// NewMidi2AssignableControl builds an assignable (NRPN) controller message.
func NewMidi2AssignableControl(group, channel, bank, index uint8, value uint32) (Midi2ChannelVoice, error) {
	return newControllerMessage(group, Midi2AssignableControl, channel, bank, index, value)
}

// NewMidi2RelativeRegisteredControl builds a relative RPN controller message.
func NewMidi2RelativeRegisteredControl(group, channel, bank, index uint8, value uint32) (Midi2ChannelVoice, error) {
	return newControllerMessage(group, Midi2RelativeRegistered, channel, bank, index, value)
}

// NewMidi2RelativeAssignableControl builds a relative NRPN controller message.
func NewMidi2RelativeAssignableControl(group, channel, bank, index uint8, value uint32) (Midi2ChannelVoice, error) {
	return newControllerMessage(group, Midi2RelativeAssignable, channel, bank, index, value)
}

func newControllerMessage(group uint8, status Midi2Status, channel, bank, index uint8, value uint32) (Midi2ChannelVoice, error) {
	if err := checkField("controller bank", uint32(bank), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	if err := checkField("controller index", uint32(index), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, status, channel, bank, index, value)
}

// NewMidi2RegisteredPerNote builds a registered per-note controller message.
func NewMidi2RegisteredPerNote(group, channel, note, index uint8, value uint32) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2RegisteredPerNote, channel, note, index, value)
}

// NewMidi2AssignablePerNote builds an assignable per-note controller message.
func NewMidi2AssignablePerNote(group, channel, note, index uint8, value uint32) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2AssignablePerNote, channel, note, index, value)
}

// NewMidi2PerNotePitchBend builds a per-note pitch bend message.
func NewMidi2PerNotePitchBend(group, channel, note uint8, value uint32) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2PerNotePitchBend, channel, note, 0, value)
}

// NewMidi2PerNoteManagement builds a per-note management message.
func NewMidi2PerNoteManagement(group, channel, note, flags uint8) (Midi2ChannelVoice, error) {
	if err := checkField("note", uint32(note), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	if err := checkField("management flags", uint32(flags), uint32(PerNoteReset|PerNoteDetach)); err != nil {
		return Midi2ChannelVoice{}, err
	}
	return newMidi2(group, Midi2PerNoteManagement, channel, note, flags, 0)
}

// NewMidi2ProgramChange builds a program change carrying an explicit
// bank-valid flag and 14-bit bank number.
func NewMidi2ProgramChange(group, channel, program uint8, bankValid bool, bank uint16) (Midi2ChannelVoice, error) {
	if err := checkField("program", uint32(program), 0x7F); err != nil {
		return Midi2ChannelVoice{}, err
	}
	if err := checkField("bank", uint32(bank), 0x3FFF); err != nil {
		return Midi2ChannelVoice{}, err
	}
	var options uint8
	var bankBytes uint32
	if bankValid {
		options = programBankValid
		bankBytes = uint32(bank>>7)<<8 | uint32(bank&0x7F)
	}
	return newMidi2(group, Midi2ProgramChange, channel, 0, options, uint32(program)<<24|bankBytes)
}

// NewMidi2ChannelPressure builds a channel pressure message with a 32-bit
// value.
func NewMidi2ChannelPressure(group, channel uint8, value uint32) (Midi2ChannelVoice, error) {
	return newMidi2(group, Midi2ChannelPressure, channel, 0, 0, value)
}

// NewMidi2PitchBend builds a pitch bend message with a 32-bit value whose
// center is 0x80000000.
func NewMidi2PitchBend(group, channel uint8, value uint32) (Midi2ChannelVoice, error) {
	return newMidi2(group, Midi2PitchBend, channel, 0, 0, value)
}
