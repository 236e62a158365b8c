package codec

import (
	"fmt"
	"strings"
)

// Mode selects how strictly Decode polices documented reserved bits.
type Mode int

const (
	// Strict rejects any nonzero documented reserved bit.
	Strict Mode = iota

	// Lenient ignores reserved bits, decoding as if they were zero.
	Lenient
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a configuration string to a conformance mode.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict", "":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, fmt.Errorf("codec: unknown conformance mode %q", raw)
}
