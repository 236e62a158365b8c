package message

import "github.com/danmuck/umpwire/ump"

// SystemStatus is the status byte of a system common or real-time message.
type SystemStatus uint8

const (
	SystemTimeCode            SystemStatus = 0xF1
	SystemSongPositionPointer SystemStatus = 0xF2
	SystemSongSelect          SystemStatus = 0xF3
	SystemTuneRequest         SystemStatus = 0xF6
	SystemTimingClock         SystemStatus = 0xF8
	SystemStart               SystemStatus = 0xFA
	SystemContinue            SystemStatus = 0xFB
	SystemStop                SystemStatus = 0xFC
	SystemActiveSensing       SystemStatus = 0xFE
	SystemReset               SystemStatus = 0xFF
)

// systemDataBytes maps each assigned status to its data byte count.
var systemDataBytes = map[SystemStatus]int{
	SystemTimeCode:            1,
	SystemSongPositionPointer: 2,
	SystemSongSelect:          1,
	SystemTuneRequest:         0,
	SystemTimingClock:         0,
	SystemStart:               0,
	SystemContinue:            0,
	SystemStop:                0,
	SystemActiveSensing:       0,
	SystemReset:               0,
}

// SystemDataBytes reports how many data bytes a status carries. ok is false
// for unassigned status bytes.
func SystemDataBytes(status SystemStatus) (n int, ok bool) {
	n, ok = systemDataBytes[status]
	return n, ok
}

// System carries system common and real-time messages.
type System struct {
	group  uint8
	status SystemStatus
	data1  uint8
	data2  uint8
}

func (System) sealed() {}

func (m System) Type() ump.Type       { return ump.TypeSystem }
func (m System) Group() uint8         { return m.group }
func (m System) Status() SystemStatus { return m.status }
func (m System) Data1() uint8         { return m.data1 }
func (m System) Data2() uint8         { return m.data2 }

// TimeCode returns the MIDI time code value. Status must be SystemTimeCode.
func (m System) TimeCode() uint8 { return m.data1 }

// Song returns the song number. Status must be SystemSongSelect.
func (m System) Song() uint8 { return m.data1 }

// SongPosition returns the 14-bit song position. Status must be
// SystemSongPositionPointer.
func (m System) SongPosition() uint16 {
	return uint16(m.data2)<<7 | uint16(m.data1)
}

func newSystem(group uint8, status SystemStatus, data1, data2 uint8) (System, error) {
	if err := checkGroup(group); err != nil {
		return System{}, err
	}
	if _, ok := systemDataBytes[status]; !ok {
		return System{}, FieldError{Field: "system status", Value: uint32(status), Max: uint32(SystemReset)}
	}
	if err := checkField("system data1", uint32(data1), 0x7F); err != nil {
		return System{}, err
	}
	if err := checkField("system data2", uint32(data2), 0x7F); err != nil {
		return System{}, err
	}
	return System{group: group, status: status, data1: data1, data2: data2}, nil
}

// NewTimeCode builds a MIDI time code quarter-frame message.
func NewTimeCode(group, value uint8) (System, error) {
	return newSystem(group, SystemTimeCode, value, 0)
}

// NewSongPositionPointer builds a song position pointer message from a
// 14-bit position.
func NewSongPositionPointer(group uint8, position uint16) (System, error) {
	if err := checkField("song position", uint32(position), 0x3FFF); err != nil {
		return System{}, err
	}
	return newSystem(group, SystemSongPositionPointer, uint8(position&0x7F), uint8(position>>7))
}

// NewSongSelect builds a song select message.
func NewSongSelect(group, song uint8) (System, error) {
	return newSystem(group, SystemSongSelect, song, 0)
}

// NewTuneRequest builds a tune request message.
func NewTuneRequest(group uint8) (System, error) {
	return newSystem(group, SystemTuneRequest, 0, 0)
}

// NewTimingClock builds a timing clock message.
func NewTimingClock(group uint8) (System, error) {
	return newSystem(group, SystemTimingClock, 0, 0)
}

// NewStart builds a transport start message.
func NewStart(group uint8) (System, error) {
	return newSystem(group, SystemStart, 0, 0)
}

// NewContinue builds a transport continue message.
func NewContinue(group uint8) (System, error) {
	return newSystem(group, SystemContinue, 0, 0)
}

// NewStop builds a transport stop message.
func NewStop(group uint8) (System, error) {
	return newSystem(group, SystemStop, 0, 0)
}

// NewActiveSensing builds an active sensing message.
func NewActiveSensing(group uint8) (System, error) {
	return newSystem(group, SystemActiveSensing, 0, 0)
}

// NewReset builds a system reset message.
func NewReset(group uint8) (System, error) {
	return newSystem(group, SystemReset, 0, 0)
}
