package ump

// Type is the 4-bit message-type nibble carried in the top of a packet's
// first word. It alone determines the packet's word count.
type Type uint8

// Message type nibbles from the UMP contract.
const (
	TypeUtility           Type = 0x0
	TypeSystem            Type = 0x1
	TypeMidi1ChannelVoice Type = 0x2
	TypeData64            Type = 0x3
	TypeMidi2ChannelVoice Type = 0x4
	TypeData128           Type = 0x5
	TypeFlexData          Type = 0xD
	TypeStream            Type = 0xF
)

func (t Type) String() string {
	switch t {
	case TypeUtility:
		return "utility"
	case TypeSystem:
		return "system"
	case TypeMidi1ChannelVoice:
		return "midi1-channel-voice"
	case TypeData64:
		return "data64"
	case TypeMidi2ChannelVoice:
		return "midi2-channel-voice"
	case TypeData128:
		return "data128"
	case TypeFlexData:
		return "flex-data"
	case TypeStream:
		return "stream"
	}
	return "reserved"
}

// wordCounts maps each supported type nibble to its fixed packet length.
// Reserved nibbles are absent: their lengths are never guessed.
var wordCounts = map[Type]int{
	TypeUtility:           1,
	TypeSystem:            1,
	TypeMidi1ChannelVoice: 1,
	TypeData64:            2,
	TypeMidi2ChannelVoice: 2,
	TypeData128:           4,
	TypeFlexData:          4,
	TypeStream:            4,
}

// WordCount returns the packet length implied by t. ok is false for
// reserved or unassigned type nibbles.
func WordCount(t Type) (n int, ok bool) {
	n, ok = wordCounts[t]
	return n, ok
}

// Classify inspects a packet's first word and returns its category and
// required word count. ok is false when the type nibble is not in the table.
func Classify(word0 uint32) (t Type, n int, ok bool) {
	t = TypeOf(word0)
	n, ok = wordCounts[t]
	return t, n, ok
}

// TypeOf extracts the message-type nibble from a packet's first word.
func TypeOf(word0 uint32) Type {
	return Type(word0 >> 28)
}

// GroupOf extracts the group nibble from a packet's first word. Stream
// messages carry no group; for them this nibble is part of the status field.
func GroupOf(word0 uint32) uint8 {
	return uint8(word0>>24) & 0x0F
}
