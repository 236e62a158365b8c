package observability

import (
	"testing"
	"time"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/internal/testutil/testlog"
	"github.com/danmuck/umpwire/ump"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)

	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("umpmon", "GET", "/health", 200, 12*time.Millisecond)
	RecordDecode("umpmon", ump.TypeMidi2ChannelVoice)
	RecordDecodeError("umpmon", codec.ErrMalformedPacket)
	RecordConversion("umpmon", "emitted")
}

func TestDecodeErrorKinds(t *testing.T) {
	testlog.Start(t)

	cases := map[error]string{
		codec.ErrMalformedPacket:        "malformed_packet",
		codec.ErrUnsupportedMessageType: "unsupported_type",
		codec.ErrReservedBitViolation:   "reserved_bits",
		codec.ErrUnknownStatus:          "unknown_status",
	}
	for err, want := range cases {
		if got := decodeErrorKind(err); got != want {
			t.Fatalf("decodeErrorKind(%v) = %q, want %q", err, got, want)
		}
	}
}
