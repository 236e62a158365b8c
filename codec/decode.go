package codec

import (
	"fmt"

	"github.com/danmuck/umpwire/message"
	"github.com/danmuck/umpwire/ump"
)

// Decode parses one packet from the front of words. The message-type table
// fixes the required length; extra trailing words are left untouched for
// the caller. Decode never holds state: a failure affects only this packet.
func Decode(words []uint32, mode Mode) (message.Message, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrMalformedPacket)
	}
	t, n, ok := ump.Classify(words[0])
	if !ok {
		return nil, fmt.Errorf("%w: nibble %#x", ErrUnsupportedMessageType, uint8(t))
	}
	if len(words) < n {
		return nil, fmt.Errorf("%w: have %d words, need %d", ErrMalformedPacket, len(words), n)
	}

	switch t {
	case ump.TypeUtility:
		return decodeUtility(words[0], mode)
	case ump.TypeSystem:
		return decodeSystem(words[0], mode)
	case ump.TypeMidi1ChannelVoice:
		return decodeMidi1(words[0], mode)
	case ump.TypeData64:
		return decodeData64(words[0], words[1], mode)
	case ump.TypeMidi2ChannelVoice:
		return decodeMidi2(words[0], words[1], mode)
	case ump.TypeData128:
		return decodeData128(words[:4], mode)
	case ump.TypeFlexData:
		return decodeFlex(words[:4], mode)
	case ump.TypeStream:
		return decodeStream(words[:4])
	}
	return nil, fmt.Errorf("%w: nibble %#x", ErrUnsupportedMessageType, uint8(t))
}

func reserved(mode Mode, bits uint32) error {
	if mode == Strict && bits != 0 {
		return fmt.Errorf("%w: nonzero bits %#x", ErrReservedBitViolation, bits)
	}
	return nil
}

func decodeUtility(w uint32, mode Mode) (message.Message, error) {
	status := message.UtilityStatus(w >> 20 & 0xF)
	if status > message.UtilityDeltaClockstamp {
		return nil, fmt.Errorf("%w: utility status %#x", ErrUnknownStatus, uint8(status))
	}
	if err := reserved(mode, w&0x000F0000); err != nil {
		return nil, err
	}
	value := uint16(w)
	if status == message.UtilityNoOp {
		// The no-op data field is documented reserved.
		if err := reserved(mode, uint32(value)); err != nil {
			return nil, err
		}
		value = 0
	}
	return message.NewUtility(ump.GroupOf(w), status, value)
}

func decodeSystem(w uint32, mode Mode) (message.Message, error) {
	group := ump.GroupOf(w)
	status := message.SystemStatus(w >> 16)
	n, ok := message.SystemDataBytes(status)
	if !ok {
		return nil, fmt.Errorf("%w: system status %#x", ErrUnknownStatus, uint8(status))
	}
	if err := reserved(mode, w&0x8080); err != nil {
		return nil, err
	}
	data1 := uint8(w>>8) & 0x7F
	data2 := uint8(w) & 0x7F
	if n < 2 {
		if err := reserved(mode, uint32(data2)); err != nil {
			return nil, err
		}
		data2 = 0
	}
	if n < 1 {
		if err := reserved(mode, uint32(data1)); err != nil {
			return nil, err
		}
		data1 = 0
	}

	switch status {
	case message.SystemTimeCode:
		return message.NewTimeCode(group, data1)
	case message.SystemSongPositionPointer:
		return message.NewSongPositionPointer(group, uint16(data2)<<7|uint16(data1))
	case message.SystemSongSelect:
		return message.NewSongSelect(group, data1)
	case message.SystemTuneRequest:
		return message.NewTuneRequest(group)
	case message.SystemTimingClock:
		return message.NewTimingClock(group)
	case message.SystemStart:
		return message.NewStart(group)
	case message.SystemContinue:
		return message.NewContinue(group)
	case message.SystemStop:
		return message.NewStop(group)
	case message.SystemActiveSensing:
		return message.NewActiveSensing(group)
	default:
		return message.NewReset(group)
	}
}

func decodeMidi1(w uint32, mode Mode) (message.Message, error) {
	group := ump.GroupOf(w)
	status := message.Midi1Status(w >> 20 & 0xF)
	if status < message.Midi1NoteOff || status > message.Midi1PitchBend {
		return nil, fmt.Errorf("%w: midi1 status %#x", ErrUnknownStatus, uint8(status))
	}
	if err := reserved(mode, w&0x8080); err != nil {
		return nil, err
	}
	channel := uint8(w >> 16 & 0xF)
	data1 := uint8(w>>8) & 0x7F
	data2 := uint8(w) & 0x7F

	switch status {
	case message.Midi1NoteOff:
		return message.NewMidi1NoteOff(group, channel, data1, data2)
	case message.Midi1NoteOn:
		return message.NewMidi1NoteOn(group, channel, data1, data2)
	case message.Midi1PolyPressure:
		return message.NewMidi1PolyPressure(group, channel, data1, data2)
	case message.Midi1ControlChange:
		return message.NewMidi1ControlChange(group, channel, data1, data2)
	case message.Midi1ProgramChange:
		if err := reserved(mode, uint32(data2)); err != nil {
			return nil, err
		}
		return message.NewMidi1ProgramChange(group, channel, data1)
	case message.Midi1ChannelPressure:
		if err := reserved(mode, uint32(data2)); err != nil {
			return nil, err
		}
		return message.NewMidi1ChannelPressure(group, channel, data1)
	default:
		return message.NewMidi1PitchBend(group, channel, uint16(data2)<<7|uint16(data1))
	}
}

func decodeData64(w0, w1 uint32, mode Mode) (message.Message, error) {
	format := message.Format(w0 >> 20 & 0xF)
	if format > message.FormatEnd {
		return nil, fmt.Errorf("%w: sysex7 format %#x", ErrUnknownStatus, uint8(format))
	}
	count := int(w0 >> 16 & 0xF)
	if count > 6 {
		return nil, fmt.Errorf("%w: sysex7 byte count %d", ErrMalformedPacket, count)
	}
	if err := reserved(mode, w0&0x8080|w1&0x80808080); err != nil {
		return nil, err
	}
	raw := [6]uint8{
		uint8(w0>>8) & 0x7F, uint8(w0) & 0x7F,
		uint8(w1>>24) & 0x7F, uint8(w1>>16) & 0x7F,
		uint8(w1>>8) & 0x7F, uint8(w1) & 0x7F,
	}
	for _, b := range raw[count:] {
		if err := reserved(mode, uint32(b)); err != nil {
			return nil, err
		}
	}
	return message.NewSysEx7(ump.GroupOf(w0), format, raw[:count])
}

func decodeMidi2(w0, w1 uint32, mode Mode) (message.Message, error) {
	group := ump.GroupOf(w0)
	status := message.Midi2Status(w0 >> 20 & 0xF)
	channel := uint8(w0 >> 16 & 0xF)
	index1 := uint8(w0 >> 8)
	index2 := uint8(w0)

	switch status {
	case message.Midi2NoteOn, message.Midi2NoteOff:
		if err := reserved(mode, uint32(index1&0x80)); err != nil {
			return nil, err
		}
		if mode == Strict && index2 > message.AttrPitch79 {
			return nil, fmt.Errorf("%w: note attribute type %#x", ErrUnknownStatus, index2)
		}
		if status == message.Midi2NoteOn {
			return message.NewMidi2NoteOn(group, channel, index1&0x7F, uint16(w1>>16), index2, uint16(w1))
		}
		return message.NewMidi2NoteOff(group, channel, index1&0x7F, uint16(w1>>16), index2, uint16(w1))

	case message.Midi2PolyPressure:
		if err := reserved(mode, uint32(index1&0x80)<<8|uint32(index2)); err != nil {
			return nil, err
		}
		return message.NewMidi2PolyPressure(group, channel, index1&0x7F, w1)

	case message.Midi2ControlChange:
		if err := reserved(mode, uint32(index1&0x80)<<8|uint32(index2)); err != nil {
			return nil, err
		}
		return message.NewMidi2ControlChange(group, channel, index1&0x7F, w1)

	case message.Midi2RegisteredControl, message.Midi2AssignableControl,
		message.Midi2RelativeRegistered, message.Midi2RelativeAssignable:
		if err := reserved(mode, uint32(index1&0x80)<<8|uint32(index2&0x80)); err != nil {
			return nil, err
		}
		bank, index := index1&0x7F, index2&0x7F
		switch status {
		case message.Midi2RegisteredControl:
			return message.NewMidi2RegisteredControl(group, channel, bank, index, w1)
		case message.Midi2AssignableControl:
			return message.NewMidi2AssignableControl(group, channel, bank, index, w1)
		case message.Midi2RelativeRegistered:
			return message.NewMidi2RelativeRegisteredControl(group, channel, bank, index, w1)
		default:
			return message.NewMidi2RelativeAssignableControl(group, channel, bank, index, w1)
		}

	case message.Midi2RegisteredPerNote:
		if err := reserved(mode, uint32(index1&0x80)); err != nil {
			return nil, err
		}
		return message.NewMidi2RegisteredPerNote(group, channel, index1&0x7F, index2, w1)

	case message.Midi2AssignablePerNote:
		if err := reserved(mode, uint32(index1&0x80)); err != nil {
			return nil, err
		}
		return message.NewMidi2AssignablePerNote(group, channel, index1&0x7F, index2, w1)

	case message.Midi2PerNotePitchBend:
		if err := reserved(mode, uint32(index1&0x80)<<8|uint32(index2)); err != nil {
			return nil, err
		}
		return message.NewMidi2PerNotePitchBend(group, channel, index1&0x7F, w1)

	case message.Midi2PerNoteManagement:
		if err := reserved(mode, uint32(index1&0x80)<<8|uint32(index2&^(message.PerNoteReset|message.PerNoteDetach))); err != nil {
			return nil, err
		}
		if err := reserved(mode, w1); err != nil {
			return nil, err
		}
		return message.NewMidi2PerNoteManagement(group, channel, index1&0x7F,
			index2&(message.PerNoteReset|message.PerNoteDetach))

	case message.Midi2ProgramChange:
		if err := reserved(mode, uint32(index1)<<8|uint32(index2&^0x01)); err != nil {
			return nil, err
		}
		if err := reserved(mode, w1&0x80FF8080); err != nil {
			return nil, err
		}
		program := uint8(w1>>24) & 0x7F
		bankValid := index2&0x01 != 0
		var bank uint16
		if bankValid {
			bank = uint16(w1>>8&0x7F)<<7 | uint16(w1&0x7F)
		} else if err := reserved(mode, w1&0xFFFF); err != nil {
			return nil, err
		}
		return message.NewMidi2ProgramChange(group, channel, program, bankValid, bank)

	case message.Midi2ChannelPressure:
		if err := reserved(mode, uint32(index1)<<8|uint32(index2)); err != nil {
			return nil, err
		}
		return message.NewMidi2ChannelPressure(group, channel, w1)

	case message.Midi2PitchBend:
		if err := reserved(mode, uint32(index1)<<8|uint32(index2)); err != nil {
			return nil, err
		}
		return message.NewMidi2PitchBend(group, channel, w1)
	}
	return nil, fmt.Errorf("%w: midi2 status %#x", ErrUnknownStatus, uint8(status))
}

func decodeData128(words []uint32, mode Mode) (message.Message, error) {
	w0 := words[0]
	group := ump.GroupOf(w0)
	format := message.Format(w0 >> 20 & 0xF)
	raw := [14]uint8{
		uint8(w0 >> 8), uint8(w0),
		uint8(words[1] >> 24), uint8(words[1] >> 16), uint8(words[1] >> 8), uint8(words[1]),
		uint8(words[2] >> 24), uint8(words[2] >> 16), uint8(words[2] >> 8), uint8(words[2]),
		uint8(words[3] >> 24), uint8(words[3] >> 16), uint8(words[3] >> 8), uint8(words[3]),
	}

	switch format {
	case message.FormatComplete, message.FormatStart, message.FormatContinue, message.FormatEnd:
		count := int(w0 >> 16 & 0xF)
		if count < 1 || count > 14 {
			return nil, fmt.Errorf("%w: sysex8 byte count %d", ErrMalformedPacket, count)
		}
		for _, b := range raw[count:] {
			if err := reserved(mode, uint32(b)); err != nil {
				return nil, err
			}
		}
		return message.NewSysEx8(group, format, raw[0], raw[1:count])

	case message.FormatMixedDataSetHeader:
		return message.NewMixedDataSetHeader(group, uint8(w0>>16&0xF), raw)

	case message.FormatMixedDataSetPayload:
		return message.NewMixedDataSetPayload(group, uint8(w0>>16&0xF), raw)
	}
	return nil, fmt.Errorf("%w: data128 format %#x", ErrUnknownStatus, uint8(format))
}

func decodeFlex(words []uint32, mode Mode) (message.Message, error) {
	w0 := words[0]
	format := message.Format(w0 >> 22 & 0x3)
	addrBits := w0 >> 20 & 0x3
	if addrBits > uint32(message.FlexAddressGroup) {
		return nil, fmt.Errorf("%w: flex address %#x", ErrUnknownStatus, addrBits)
	}
	address := message.FlexAddress(addrBits)
	channel := uint8(w0 >> 16 & 0xF)
	if address == message.FlexAddressGroup {
		if err := reserved(mode, uint32(channel)); err != nil {
			return nil, err
		}
		channel = 0
	}
	return message.NewFlex(ump.GroupOf(w0), format, address, channel,
		uint8(w0>>8), uint8(w0), [3]uint32{words[1], words[2], words[3]})
}

func decodeStream(words []uint32) (message.Message, error) {
	w0 := words[0]
	status := message.StreamStatus(w0 >> 16 & 0x3FF)
	if !message.KnownStreamStatus(status) {
		return nil, fmt.Errorf("%w: stream status %#x", ErrUnknownStatus, uint16(status))
	}
	return message.NewStream(
		message.Format(w0>>26&0x3),
		status,
		uint16(w0),
		[3]uint32{words[1], words[2], words[3]},
	)
}
