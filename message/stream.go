package message

import (
	"fmt"

	"github.com/danmuck/umpwire/ump"
)

// StreamStatus is the 10-bit status of a UMP stream message.
type StreamStatus uint16

const (
	StreamEndpointDiscovery         StreamStatus = 0x00
	StreamEndpointInfo              StreamStatus = 0x01
	StreamDeviceIdentity            StreamStatus = 0x02
	StreamEndpointName              StreamStatus = 0x03
	StreamProductInstanceID         StreamStatus = 0x04
	StreamConfigurationRequest      StreamStatus = 0x05
	StreamConfigurationNotification StreamStatus = 0x06
	StreamFunctionBlockDiscovery    StreamStatus = 0x10
	StreamFunctionBlockInfo         StreamStatus = 0x11
	StreamFunctionBlockName         StreamStatus = 0x12
	StreamStartOfClip               StreamStatus = 0x20
	StreamEndOfClip                 StreamStatus = 0x21
)

var streamStatuses = map[StreamStatus]struct{}{
	StreamEndpointDiscovery:         {},
	StreamEndpointInfo:              {},
	StreamDeviceIdentity:            {},
	StreamEndpointName:              {},
	StreamProductInstanceID:         {},
	StreamConfigurationRequest:      {},
	StreamConfigurationNotification: {},
	StreamFunctionBlockDiscovery:    {},
	StreamFunctionBlockInfo:         {},
	StreamFunctionBlockName:         {},
	StreamStartOfClip:               {},
	StreamEndOfClip:                 {},
}

// KnownStreamStatus reports whether status is an assigned stream status.
func KnownStreamStatus(status StreamStatus) bool {
	_, ok := streamStatuses[status]
	return ok
}

// Endpoint discovery filter bits.
const (
	DiscoverEndpointInfo      uint8 = 0x01
	DiscoverDeviceIdentity    uint8 = 0x02
	DiscoverEndpointName      uint8 = 0x04
	DiscoverProductInstanceID uint8 = 0x08
	DiscoverStreamConfig      uint8 = 0x10
)

// Stream carries UMP endpoint and function block negotiation messages.
// Stream messages are group-less: the group nibble position is part of the
// status field.
type Stream struct {
	format Format
	status StreamStatus
	data0  uint16
	data   [3]uint32
}

func (Stream) sealed() {}

func (m Stream) Type() ump.Type       { return ump.TypeStream }
func (m Stream) Group() uint8         { return 0 }
func (m Stream) Format() Format       { return m.format }
func (m Stream) Status() StreamStatus { return m.status }
func (m Stream) Data0() uint16        { return m.data0 }
func (m Stream) Data() [3]uint32      { return m.data }

// UMPVersion returns the UMP major/minor version of a discovery or info
// notification message.
func (m Stream) UMPVersion() (major, minor uint8) {
	return uint8(m.data0 >> 8), uint8(m.data0)
}

// DiscoveryFilter returns the requested-notification bitmap of an endpoint
// discovery message.
func (m Stream) DiscoveryFilter() uint8 { return uint8(m.data[0]) }

// Protocol returns the protocol byte of a stream configuration message.
func (m Stream) Protocol() uint8 { return uint8(m.data0 >> 8) }

// Name reassembles the 14 text bytes of an endpoint name or product
// instance ID packet, trailing padding removed.
func (m Stream) Name() []byte {
	raw := make([]byte, 0, 14)
	raw = append(raw, uint8(m.data0>>8), uint8(m.data0))
	for _, word := range m.data {
		raw = append(raw, uint8(word>>24), uint8(word>>16), uint8(word>>8), uint8(word))
	}
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	return raw[:end]
}

func newStream(format Format, status StreamStatus, data0 uint16, data [3]uint32) (Stream, error) {
	if format > FormatEnd {
		return Stream{}, FieldError{Field: "stream format", Value: uint32(format), Max: uint32(FormatEnd)}
	}
	if !KnownStreamStatus(status) {
		return Stream{}, fmt.Errorf("%w: unassigned stream status %#x", ErrFieldOutOfRange, uint16(status))
	}
	return Stream{format: format, status: status, data0: data0, data: data}, nil
}

// NewStream builds a stream message from raw payload words.
func NewStream(format Format, status StreamStatus, data0 uint16, data [3]uint32) (Stream, error) {
	return newStream(format, status, data0, data)
}

// NewEndpointDiscovery asks an endpoint to identify itself. filter selects
// which notifications are requested.
func NewEndpointDiscovery(umpMajor, umpMinor, filter uint8) (Stream, error) {
	return newStream(FormatComplete, StreamEndpointDiscovery,
		uint16(umpMajor)<<8|uint16(umpMinor), [3]uint32{uint32(filter), 0, 0})
}

// NewEndpointInfo answers endpoint discovery with version and capability
// information.
func NewEndpointInfo(umpMajor, umpMinor, functionBlocks uint8, staticBlocks, midi2, midi1 bool) (Stream, error) {
	if err := checkField("function blocks", uint32(functionBlocks), 0x7F); err != nil {
		return Stream{}, err
	}
	word1 := uint32(functionBlocks) << 24
	if staticBlocks {
		word1 |= 1 << 31
	}
	if midi2 {
		word1 |= 1 << 9
	}
	if midi1 {
		word1 |= 1 << 8
	}
	return newStream(FormatComplete, StreamEndpointInfo,
		uint16(umpMajor)<<8|uint16(umpMinor), [3]uint32{word1, 0, 0})
}

// NewDeviceIdentity reports the sysex identity of the endpoint's device.
func NewDeviceIdentity(manufacturer [3]uint8, family, model [2]uint8, revision [4]uint8) (Stream, error) {
	for _, b := range [][]uint8{manufacturer[:], family[:], model[:], revision[:]} {
		for _, v := range b {
			if err := checkField("identity byte", uint32(v), 0x7F); err != nil {
				return Stream{}, err
			}
		}
	}
	word1 := uint32(manufacturer[0])<<16 | uint32(manufacturer[1])<<8 | uint32(manufacturer[2])
	word2 := uint32(family[0])<<24 | uint32(family[1])<<16 | uint32(model[0])<<8 | uint32(model[1])
	word3 := uint32(revision[0])<<24 | uint32(revision[1])<<16 | uint32(revision[2])<<8 | uint32(revision[3])
	return newStream(FormatComplete, StreamDeviceIdentity, 0, [3]uint32{word1, word2, word3})
}

// NewEndpointName carries up to 14 bytes of the endpoint's name; longer
// names span packets via the format field.
func NewEndpointName(format Format, name []byte) (Stream, error) {
	return newStreamText(format, StreamEndpointName, name)
}

// NewProductInstanceID carries up to 14 bytes of the product instance ID.
func NewProductInstanceID(format Format, id []byte) (Stream, error) {
	return newStreamText(format, StreamProductInstanceID, id)
}

func newStreamText(format Format, status StreamStatus, text []byte) (Stream, error) {
	if len(text) > 14 {
		return Stream{}, FieldError{Field: "stream text length", Value: uint32(len(text)), Max: 14}
	}
	var raw [14]byte
	copy(raw[:], text)
	data0 := uint16(raw[0])<<8 | uint16(raw[1])
	var data [3]uint32
	for i := range data {
		o := 2 + 4*i
		data[i] = uint32(raw[o])<<24 | uint32(raw[o+1])<<16 | uint32(raw[o+2])<<8 | uint32(raw[o+3])
	}
	return newStream(format, status, data0, data)
}

// NewStreamConfigurationRequest asks the endpoint to switch protocols.
// protocol is 1 for MIDI 1.0, 2 for MIDI 2.0.
func NewStreamConfigurationRequest(protocol uint8, rxJR, txJR bool) (Stream, error) {
	return newStream(FormatComplete, StreamConfigurationRequest, configData0(protocol, rxJR, txJR), [3]uint32{})
}

// NewStreamConfigurationNotification reports the active protocol.
func NewStreamConfigurationNotification(protocol uint8, rxJR, txJR bool) (Stream, error) {
	return newStream(FormatComplete, StreamConfigurationNotification, configData0(protocol, rxJR, txJR), [3]uint32{})
}

func configData0(protocol uint8, rxJR, txJR bool) uint16 {
	data0 := uint16(protocol) << 8
	if rxJR {
		data0 |= 0x02
	}
	if txJR {
		data0 |= 0x01
	}
	return data0
}

// NewFunctionBlockDiscovery asks for function block information. blockNum
// 0xFF requests all blocks.
func NewFunctionBlockDiscovery(blockNum, filter uint8) (Stream, error) {
	return newStream(FormatComplete, StreamFunctionBlockDiscovery,
		uint16(blockNum)<<8|uint16(filter), [3]uint32{})
}

// NewStartOfClip marks the start of a clip in a UMP clip file stream.
func NewStartOfClip() (Stream, error) {
	return newStream(FormatComplete, StreamStartOfClip, 0, [3]uint32{})
}

// NewEndOfClip marks the end of a clip in a UMP clip file stream.
func NewEndOfClip() (Stream, error) {
	return newStream(FormatComplete, StreamEndOfClip, 0, [3]uint32{})
}
