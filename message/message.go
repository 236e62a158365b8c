package message

import "github.com/danmuck/umpwire/ump"

// Message is the tagged-variant contract covering every UMP category.
// The set is closed: only types in this package implement it.
type Message interface {
	// Type reports the category nibble the message encodes under.
	Type() ump.Type

	// Group reports the group nibble. Stream messages are group-less and
	// report zero.
	Group() uint8

	sealed()
}

// Format is the stream-position nibble shared by the data categories.
type Format uint8

const (
	FormatComplete Format = 0x0
	FormatStart    Format = 0x1
	FormatContinue Format = 0x2
	FormatEnd      Format = 0x3

	// Mixed Data Set forms, valid only for the 128-bit data category.
	FormatMixedDataSetHeader  Format = 0x8
	FormatMixedDataSetPayload Format = 0x9
)

func (f Format) String() string {
	switch f {
	case FormatComplete:
		return "complete"
	case FormatStart:
		return "start"
	case FormatContinue:
		return "continue"
	case FormatEnd:
		return "end"
	case FormatMixedDataSetHeader:
		return "mds-header"
	case FormatMixedDataSetPayload:
		return "mds-payload"
	}
	return "reserved"
}
