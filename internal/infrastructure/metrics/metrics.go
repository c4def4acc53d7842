package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Record metrics
	RecordsProcessed *prometheus.CounterVec
	RecordsDropped   *prometheus.CounterVec
	ReplayDuration   prometheus.Histogram

	// Dispute metrics
	DisputesOpened   prometheus.Counter
	DisputesResolved prometheus.Counter
	Chargebacks      prometheus.Counter

	// Account metrics
	AccountsLocked prometheus.Counter
}

// New creates all Prometheus metrics and registers them on reg. Each replay
// run uses its own registry so repeated runs in one process never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tproc_records_processed_total",
				Help: "Total number of records applied, by operation",
			},
			[]string{"op"},
		),
		RecordsDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tproc_records_dropped_total",
				Help: "Total number of records dropped, by reason",
			},
			[]string{"reason"},
		),
		ReplayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tproc_replay_duration_seconds",
			Help:    "Duration of full stream replays",
			Buckets: prometheus.DefBuckets,
		}),

		DisputesOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "tproc_disputes_opened_total",
			Help: "Total number of disputes opened",
		}),
		DisputesResolved: factory.NewCounter(prometheus.CounterOpts{
			Name: "tproc_disputes_resolved_total",
			Help: "Total number of disputes resolved",
		}),
		Chargebacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "tproc_chargebacks_total",
			Help: "Total number of chargebacks applied",
		}),

		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "tproc_accounts_locked_total",
			Help: "Total number of accounts frozen by a chargeback",
		}),
	}
}
