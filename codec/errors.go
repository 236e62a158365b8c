package codec

import "errors"

var (
	ErrMalformedPacket        = errors.New("codec: malformed packet")
	ErrUnsupportedMessageType = errors.New("codec: unsupported message type")
	ErrReservedBitViolation   = errors.New("codec: reserved bit violation")
	ErrUnknownStatus          = errors.New("codec: unknown status")
)
