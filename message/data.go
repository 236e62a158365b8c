package message

import "github.com/danmuck/umpwire/ump"

// Data64 carries a System Exclusive 7 chunk: up to six 7-bit bytes per
// 64-bit packet, positioned within a stream by its format nibble.
type Data64 struct {
	group  uint8
	format Format
	count  uint8
	data   [6]uint8
}

func (Data64) sealed() {}

func (m Data64) Type() ump.Type  { return ump.TypeData64 }
func (m Data64) Group() uint8    { return m.group }
func (m Data64) Format() Format  { return m.format }
func (m Data64) Count() uint8    { return m.count }
func (m Data64) Bytes() [6]uint8 { return m.data }

// Payload returns the valid data bytes.
func (m Data64) Payload() []byte { return append([]byte(nil), m.data[:m.count]...) }

// NewSysEx7 builds a SysEx7 chunk from up to six 7-bit payload bytes.
// Unused trailing bytes stay zero.
func NewSysEx7(group uint8, format Format, payload []byte) (Data64, error) {
	if err := checkGroup(group); err != nil {
		return Data64{}, err
	}
	if format > FormatEnd {
		return Data64{}, FieldError{Field: "sysex7 format", Value: uint32(format), Max: uint32(FormatEnd)}
	}
	if len(payload) > 6 {
		return Data64{}, FieldError{Field: "sysex7 payload length", Value: uint32(len(payload)), Max: 6}
	}
	m := Data64{group: group, format: format, count: uint8(len(payload))}
	for i, b := range payload {
		if err := checkField("sysex7 byte", uint32(b), 0x7F); err != nil {
			return Data64{}, err
		}
		m.data[i] = b
	}
	return m, nil
}

// Data128 carries a System Exclusive 8 chunk or a Mixed Data Set packet.
// For SysEx8 the count nibble includes the stream ID byte; for Mixed Data
// Set messages the same nibble holds the MDS ID.
type Data128 struct {
	group    uint8
	format   Format
	count    uint8
	streamID uint8
	data     [13]uint8
}

func (Data128) sealed() {}

func (m Data128) Type() ump.Type   { return ump.TypeData128 }
func (m Data128) Group() uint8     { return m.group }
func (m Data128) Format() Format   { return m.format }
func (m Data128) Count() uint8     { return m.count }
func (m Data128) StreamID() uint8  { return m.streamID }
func (m Data128) Bytes() [13]uint8 { return m.data }

// MdsID returns the Mixed Data Set ID. Meaningful only for MDS formats.
func (m Data128) MdsID() uint8 { return m.count }

// Payload returns the valid data bytes of a SysEx8 chunk, excluding the
// stream ID.
func (m Data128) Payload() []byte {
	if m.count == 0 {
		return nil
	}
	return append([]byte(nil), m.data[:m.count-1]...)
}

// NewSysEx8 builds a SysEx8 chunk from up to thirteen 8-bit payload bytes.
func NewSysEx8(group uint8, format Format, streamID uint8, payload []byte) (Data128, error) {
	if err := checkGroup(group); err != nil {
		return Data128{}, err
	}
	if format > FormatEnd {
		return Data128{}, FieldError{Field: "sysex8 format", Value: uint32(format), Max: uint32(FormatEnd)}
	}
	if len(payload) > 13 {
		return Data128{}, FieldError{Field: "sysex8 payload length", Value: uint32(len(payload)), Max: 13}
	}
	m := Data128{group: group, format: format, count: uint8(len(payload)) + 1, streamID: streamID}
	copy(m.data[:], payload)
	return m, nil
}

// NewMixedDataSetHeader builds a Mixed Data Set header packet. The 14 raw
// header bytes follow the packet's ID nibble.
func NewMixedDataSetHeader(group, mdsID uint8, header [14]uint8) (Data128, error) {
	return newMixedDataSet(group, FormatMixedDataSetHeader, mdsID, header)
}

// NewMixedDataSetPayload builds a Mixed Data Set payload packet.
func NewMixedDataSetPayload(group, mdsID uint8, payload [14]uint8) (Data128, error) {
	return newMixedDataSet(group, FormatMixedDataSetPayload, mdsID, payload)
}

func newMixedDataSet(group uint8, format Format, mdsID uint8, raw [14]uint8) (Data128, error) {
	if err := checkGroup(group); err != nil {
		return Data128{}, err
	}
	if err := checkField("mds id", uint32(mdsID), 0x0F); err != nil {
		return Data128{}, err
	}
	m := Data128{group: group, format: format, count: mdsID, streamID: raw[0]}
	copy(m.data[:], raw[1:])
	return m, nil
}
