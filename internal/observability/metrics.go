package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vbanctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"app", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vbanctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "method", "path", "status"},
	)
	headsEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vbanctl",
			Subsystem: "codec",
			Name:      "heads_encoded_total",
			Help:      "Packet heads encoded, by protocol.",
		},
		[]string{"protocol"},
	)
	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vbanctl",
			Subsystem: "codec",
			Name:      "packets_decoded_total",
			Help:      "Packets decoded successfully, by protocol.",
		},
		[]string{"protocol"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vbanctl",
			Subsystem: "codec",
			Name:      "decode_failures_total",
			Help:      "Decode rejections, by validation gate.",
		},
		[]string{"reason"},
	)
	payloadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vbanctl",
			Subsystem: "codec",
			Name:      "payload_bytes",
			Help:      "Payload size of decoded packets.",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 8),
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			headsEncoded, packetsDecoded, decodeFailures, payloadBytes,
		)
	})
}

func RecordHTTPRequest(app, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(app, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(app, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordHeadEncoded(protocol string) {
	RegisterMetrics()
	headsEncoded.WithLabelValues(protocol).Inc()
}

func RecordPacketDecoded(protocol string, payloadLen int) {
	RegisterMetrics()
	packetsDecoded.WithLabelValues(protocol).Inc()
	payloadBytes.Observe(float64(payloadLen))
}

func RecordDecodeFailure(reason string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(reason).Inc()
}
