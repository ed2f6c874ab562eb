package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "blocks_total",
		Help:      "Count of scanned blocks.",
	}, []string{"network", "status"})

	scanBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "block_duration_seconds",
		Help:      "Duration of scanning a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scanBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "block_transactions",
		Help:      "Number of transactions per scanned block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})

	scanEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "events_total",
		Help:      "Count of decoded payloads found while scanning.",
	}, []string{"network", "protocol"})

	scanSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "skipped_total",
		Help:      "Count of candidate transactions that failed to decode.",
	}, []string{"network", "protocol", "kind"})

	scanHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scanner",
		Name:      "height",
		Help:      "Last fully scanned block height.",
	}, []string{"network"})
)

// Scanner tracks block scanning progress.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a metrics collector for block scanning.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

func (m Scanner) ObserveBlock(err error, height uint64, transactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scanBlockTotal.WithLabelValues(string(m.network), status).Inc()
	scanBlockDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		scanBlockTransactions.WithLabelValues(string(m.network)).Observe(float64(transactions))
		scanHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}

func (m Scanner) ObserveEvent(protocol model.Protocol) {
	scanEventsTotal.WithLabelValues(string(m.network), string(protocol)).Inc()
}

func (m Scanner) ObserveSkipped(protocol model.Protocol, err error) {
	scanSkippedTotal.WithLabelValues(string(m.network), string(protocol), model.Kind(err)).Inc()
}
