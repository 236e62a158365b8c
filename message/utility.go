package message

import "github.com/danmuck/umpwire/ump"

// UtilityStatus is the status nibble of a utility message.
type UtilityStatus uint8

const (
	UtilityNoOp               UtilityStatus = 0x0
	UtilityJRClock            UtilityStatus = 0x1
	UtilityJRTimestamp        UtilityStatus = 0x2
	UtilityDeltaClockstampTPQ UtilityStatus = 0x3
	UtilityDeltaClockstamp    UtilityStatus = 0x4
)

// maxUtilityStatus bounds the assigned utility status values.
const maxUtilityStatus = uint32(UtilityDeltaClockstamp)

// Utility carries jitter-reduction and clockstamp messages.
type Utility struct {
	group  uint8
	status UtilityStatus
	value  uint16
}

func (Utility) sealed() {}

func (m Utility) Type() ump.Type        { return ump.TypeUtility }
func (m Utility) Group() uint8          { return m.group }
func (m Utility) Status() UtilityStatus { return m.status }
func (m Utility) Value() uint16         { return m.value }

// NewUtility builds a utility message with an arbitrary assigned status.
func NewUtility(group uint8, status UtilityStatus, value uint16) (Utility, error) {
	if err := checkGroup(group); err != nil {
		return Utility{}, err
	}
	if err := checkField("utility status", uint32(status), maxUtilityStatus); err != nil {
		return Utility{}, err
	}
	if status == UtilityNoOp && value != 0 {
		return Utility{}, FieldError{Field: "noop value", Value: uint32(value), Max: 0}
	}
	return Utility{group: group, status: status, value: value}, nil
}

// NewNoOp builds the utility no-op message.
func NewNoOp(group uint8) (Utility, error) {
	return NewUtility(group, UtilityNoOp, 0)
}

// NewJRClock builds a jitter-reduction clock message.
func NewJRClock(group uint8, senderClock uint16) (Utility, error) {
	return NewUtility(group, UtilityJRClock, senderClock)
}

// NewJRTimestamp builds a jitter-reduction timestamp message.
func NewJRTimestamp(group uint8, timestamp uint16) (Utility, error) {
	return NewUtility(group, UtilityJRTimestamp, timestamp)
}

// NewDeltaClockstampTPQ declares the ticks-per-quarternote unit used by
// subsequent delta clockstamps.
func NewDeltaClockstampTPQ(group uint8, ticks uint16) (Utility, error) {
	return NewUtility(group, UtilityDeltaClockstampTPQ, ticks)
}

// NewDeltaClockstamp builds a delta clockstamp message.
func NewDeltaClockstamp(group uint8, ticks uint16) (Utility, error) {
	return NewUtility(group, UtilityDeltaClockstamp, ticks)
}
