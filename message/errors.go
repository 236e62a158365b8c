package message

import (
	"errors"
	"fmt"
)

// ErrFieldOutOfRange is wrapped by every constructor range failure.
var ErrFieldOutOfRange = errors.New("message: field out of range")

// FieldError reports a constructor argument wider than its protocol field.
type FieldError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e FieldError) Error() string {
	return fmt.Sprintf("message: %s value %d exceeds maximum %d", e.Field, e.Value, e.Max)
}

func (e FieldError) Unwrap() error { return ErrFieldOutOfRange }

func checkField(field string, value, max uint32) error {
	if value > max {
		return FieldError{Field: field, Value: value, Max: max}
	}
	return nil
}

func checkGroup(group uint8) error {
	return checkField("group", uint32(group), 0x0F)
}

func checkChannel(channel uint8) error {
	return checkField("channel", uint32(channel), 0x0F)
}
