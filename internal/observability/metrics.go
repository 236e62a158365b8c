package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/ump"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umpwire",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"app", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "umpwire",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "method", "path", "status"},
	)
	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umpwire",
			Subsystem: "codec",
			Name:      "packets_decoded_total",
			Help:      "Packets decoded, by message type.",
		},
		[]string{"app", "type"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umpwire",
			Subsystem: "codec",
			Name:      "decode_errors_total",
			Help:      "Decode failures, by error kind.",
		},
		[]string{"app", "kind"},
	)
	convertOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umpwire",
			Subsystem: "convert",
			Name:      "messages_total",
			Help:      "Legacy conversion outcomes.",
		},
		[]string{"app", "outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, packetsDecoded, decodeErrors, convertOutcomes)
	})
}

func RecordHTTPRequest(app, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(app, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(app, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordDecode(app string, t ump.Type) {
	RegisterMetrics()
	packetsDecoded.WithLabelValues(app, t.String()).Inc()
}

func RecordDecodeError(app string, err error) {
	RegisterMetrics()
	decodeErrors.WithLabelValues(app, decodeErrorKind(err)).Inc()
}

func RecordConversion(app, outcome string) {
	RegisterMetrics()
	convertOutcomes.WithLabelValues(app, outcome).Inc()
}

func decodeErrorKind(err error) string {
	switch {
	case errors.Is(err, codec.ErrMalformedPacket):
		return "malformed_packet"
	case errors.Is(err, codec.ErrUnsupportedMessageType):
		return "unsupported_type"
	case errors.Is(err, codec.ErrReservedBitViolation):
		return "reserved_bits"
	case errors.Is(err, codec.ErrUnknownStatus):
		return "unknown_status"
	default:
		return "other"
	}
}
