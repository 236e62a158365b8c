package message

import "github.com/danmuck/umpwire/ump"

// FlexAddress selects the destination scope of a flex data message.
type FlexAddress uint8

const (
	FlexAddressChannel FlexAddress = 0x0
	FlexAddressGroup   FlexAddress = 0x1
)

// Flex status banks.
const (
	FlexBankSetup           uint8 = 0x00
	FlexBankMetadataText    uint8 = 0x01
	FlexBankPerformanceText uint8 = 0x02
)

// Setup-and-performance bank statuses.
const (
	FlexStatusSetTempo         uint8 = 0x00
	FlexStatusSetTimeSignature uint8 = 0x01
	FlexStatusSetMetronome     uint8 = 0x02
	FlexStatusSetKeySignature  uint8 = 0x05
	FlexStatusSetChordName     uint8 = 0x06
)

// Metadata text bank statuses.
const (
	FlexStatusProjectName     uint8 = 0x01
	FlexStatusCompositionName uint8 = 0x02
	FlexStatusClipName        uint8 = 0x03
	FlexStatusCopyright       uint8 = 0x04
	FlexStatusComposerName    uint8 = 0x05
	FlexStatusLyricistName    uint8 = 0x06
)

// Performance text bank statuses.
const (
	FlexStatusLyrics         uint8 = 0x01
	FlexStatusLyricsLanguage uint8 = 0x02
)

// Flex carries real-time setup, metadata, and performance-text messages.
type Flex struct {
	group   uint8
	format  Format
	address FlexAddress
	channel uint8
	bank    uint8
	status  uint8
	data    [3]uint32
}

func (Flex) sealed() {}

func (m Flex) Type() ump.Type       { return ump.TypeFlexData }
func (m Flex) Group() uint8         { return m.group }
func (m Flex) Format() Format       { return m.format }
func (m Flex) Address() FlexAddress { return m.address }
func (m Flex) Channel() uint8       { return m.channel }
func (m Flex) Bank() uint8          { return m.bank }
func (m Flex) Status() uint8        { return m.status }
func (m Flex) Data() [3]uint32      { return m.data }

// Tempo returns the number of 10-nanosecond units per quarter note.
func (m Flex) Tempo() uint32 { return m.data[0] }

// BPM converts the tempo payload to beats per minute.
func (m Flex) BPM() float64 {
	if m.data[0] == 0 {
		return 0
	}
	return 6e9 / float64(m.data[0])
}

// TimeSignature returns numerator, denominator (as a negative power of two),
// and the number of 1/32 notes per 24 MIDI clocks.
func (m Flex) TimeSignature() (numerator, denominator, n32 uint8) {
	return uint8(m.data[0] >> 24), uint8(m.data[0] >> 16), uint8(m.data[0] >> 8)
}

// Metronome returns the primary click rate, bar accents, and subdivision
// click settings.
func (m Flex) Metronome() (clocksPerClick uint8, accents [3]uint8, subdivisions [2]uint8) {
	clocksPerClick = uint8(m.data[0] >> 24)
	accents = [3]uint8{uint8(m.data[0] >> 16), uint8(m.data[0] >> 8), uint8(m.data[0])}
	subdivisions = [2]uint8{uint8(m.data[1] >> 24), uint8(m.data[1] >> 16)}
	return clocksPerClick, accents, subdivisions
}

// KeySignature returns the sharps/flats count (negative for flats) and the
// tonic note number.
func (m Flex) KeySignature() (sharps int8, tonic uint8) {
	raw := uint8(m.data[0] >> 24)
	sharps = int8(raw >> 4)
	if sharps > 7 {
		sharps -= 16
	}
	return sharps, raw & 0x0F
}

// Text returns the packet's UTF-8 payload with trailing padding removed.
func (m Flex) Text() []byte {
	raw := make([]byte, 0, 12)
	for _, word := range m.data {
		raw = append(raw, uint8(word>>24), uint8(word>>16), uint8(word>>8), uint8(word))
	}
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	return raw[:end]
}

func newFlex(group uint8, format Format, address FlexAddress, channel, bank, status uint8, data [3]uint32) (Flex, error) {
	if err := checkGroup(group); err != nil {
		return Flex{}, err
	}
	if format > FormatEnd {
		return Flex{}, FieldError{Field: "flex format", Value: uint32(format), Max: uint32(FormatEnd)}
	}
	if address > FlexAddressGroup {
		return Flex{}, FieldError{Field: "flex address", Value: uint32(address), Max: uint32(FlexAddressGroup)}
	}
	if err := checkChannel(channel); err != nil {
		return Flex{}, err
	}
	if address == FlexAddressGroup && channel != 0 {
		return Flex{}, FieldError{Field: "flex group-addressed channel", Value: uint32(channel), Max: 0}
	}
	return Flex{group: group, format: format, address: address, channel: channel, bank: bank, status: status, data: data}, nil
}

// NewFlex builds a flex message from raw payload words.
func NewFlex(group uint8, format Format, address FlexAddress, channel, bank, status uint8, data [3]uint32) (Flex, error) {
	return newFlex(group, format, address, channel, bank, status, data)
}

// NewFlexTempo declares musical tempo in 10ns units per quarter note.
func NewFlexTempo(group uint8, tenNsPerQuarter uint32) (Flex, error) {
	return newFlex(group, FormatComplete, FlexAddressGroup, 0, FlexBankSetup, FlexStatusSetTempo,
		[3]uint32{tenNsPerQuarter, 0, 0})
}

// NewFlexTempoBPM declares musical tempo from beats per minute.
func NewFlexTempoBPM(group uint8, bpm float64) (Flex, error) {
	if bpm <= 0 {
		return Flex{}, FieldError{Field: "bpm", Value: 0, Max: 0}
	}
	return NewFlexTempo(group, uint32(6e9/bpm))
}

// NewFlexTimeSignature declares the time signature for subsequent bars.
func NewFlexTimeSignature(group, numerator, denominator, n32 uint8) (Flex, error) {
	return newFlex(group, FormatComplete, FlexAddressGroup, 0, FlexBankSetup, FlexStatusSetTimeSignature,
		[3]uint32{uint32(numerator)<<24 | uint32(denominator)<<16 | uint32(n32)<<8, 0, 0})
}

// NewFlexMetronome configures metronome clicks.
func NewFlexMetronome(group, clocksPerClick uint8, accents [3]uint8, subdivisions [2]uint8) (Flex, error) {
	word0 := uint32(clocksPerClick)<<24 | uint32(accents[0])<<16 | uint32(accents[1])<<8 | uint32(accents[2])
	word1 := uint32(subdivisions[0])<<24 | uint32(subdivisions[1])<<16
	return newFlex(group, FormatComplete, FlexAddressGroup, 0, FlexBankSetup, FlexStatusSetMetronome,
		[3]uint32{word0, word1, 0})
}

// NewFlexKeySignature declares a key signature. sharps runs -7..7, negative
// for flats; tonic is a note class 0-15.
func NewFlexKeySignature(group, channel uint8, address FlexAddress, sharps int8, tonic uint8) (Flex, error) {
	if sharps < -7 || sharps > 7 {
		return Flex{}, FieldError{Field: "sharps", Value: uint32(uint8(sharps)), Max: 7}
	}
	if err := checkField("tonic", uint32(tonic), 0x0F); err != nil {
		return Flex{}, err
	}
	raw := uint32(uint8(sharps)&0x0F)<<4 | uint32(tonic)
	return newFlex(group, FormatComplete, address, channel, FlexBankSetup, FlexStatusSetKeySignature,
		[3]uint32{raw << 24, 0, 0})
}

// NewFlexText builds a text packet for the metadata or performance-text
// banks. text is at most 12 bytes per packet; longer runs span packets via
// the format nibble.
func NewFlexText(group, channel uint8, address FlexAddress, format Format, bank, status uint8, text []byte) (Flex, error) {
	if bank != FlexBankMetadataText && bank != FlexBankPerformanceText {
		return Flex{}, FieldError{Field: "flex text bank", Value: uint32(bank), Max: uint32(FlexBankPerformanceText)}
	}
	if len(text) > 12 {
		return Flex{}, FieldError{Field: "flex text length", Value: uint32(len(text)), Max: 12}
	}
	var raw [12]byte
	copy(raw[:], text)
	var data [3]uint32
	for i := range data {
		data[i] = uint32(raw[4*i])<<24 | uint32(raw[4*i+1])<<16 | uint32(raw[4*i+2])<<8 | uint32(raw[4*i+3])
	}
	return newFlex(group, format, address, channel, bank, status, data)
}
