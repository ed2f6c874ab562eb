package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "decoder",
		Name:      "operations_total",
		Help:      "Count of decode requests by outcome kind.",
	}, []string{"operation", "protocol", "network", "kind"})

	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "decoder",
		Name:      "operation_duration_seconds",
		Help:      "Duration of decode requests including the provider round trip.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "protocol", "network", "status"})

	decodePayloadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "decoder",
		Name:      "payload_bytes",
		Help:      "Size of reassembled payloads.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 8), // 16..262144
	}, []string{"protocol", "network"})
)

// Decoder tracks decode request outcomes.
type Decoder struct {
	network model.Network
}

// NewDecoder constructs a metrics collector for decode requests.
func NewDecoder(network model.Network) *Decoder {
	if network == "" {
		network = "unknown"
	}
	return &Decoder{network: network}
}

func (m Decoder) ObserveDecode(operation string, protocol model.Protocol, err error, started time.Time) {
	kind := model.Kind(err)
	status := "success"
	if err != nil {
		status = "error"
	} else {
		kind = "ok"
	}
	decodeTotal.WithLabelValues(operation, string(protocol), string(m.network), kind).Inc()
	decodeDuration.WithLabelValues(operation, string(protocol), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m Decoder) ObservePayloadSize(protocol model.Protocol, size int) {
	decodePayloadBytes.WithLabelValues(string(protocol), string(m.network)).Observe(float64(size))
}
