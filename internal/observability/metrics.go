// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the trade engine.
type Metrics struct {
	// Evaluation metrics
	EvaluationsTotal    *prometheus.CounterVec
	EvaluationsRejected prometheus.Counter
	EvaluationLatency   prometheus.Histogram

	// Negotiation metrics
	NegotiationsTotal  *prometheus.CounterVec
	NegotiationRounds  prometheus.Histogram
	CandidatesScored   prometheus.Counter
	OffersSolicited    prometheus.Counter
	OffersReturned     prometheus.Counter

	// Execution metrics
	TradesCommitted prometheus.Counter
	TradesRejected  prometheus.Counter
	PlayersMoved    prometheus.Counter
	PicksMoved      prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "frontoffice"
	}

	return &Metrics{
		EvaluationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trade",
			Name:      "evaluations_total",
			Help:      "Total number of trade delta evaluations by outcome",
		}, []string{"outcome"}),
		EvaluationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trade",
			Name:      "evaluations_rejected_total",
			Help:      "Total number of evaluations hard-rejected for incoming picks",
		}),
		EvaluationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "trade",
			Name:      "evaluation_latency_seconds",
			Help:      "Trade delta evaluation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		NegotiationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "searches_total",
			Help:      "Total number of negotiation searches by result",
		}, []string{"result"}),
		NegotiationRounds: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "rounds",
			Help:      "Assets added per negotiation search",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}),
		CandidatesScored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "candidates_scored_total",
			Help:      "Total number of candidate assets evaluated during searches",
		}),
		OffersSolicited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "offers_solicited_total",
			Help:      "Total number of AI teams asked for offers",
		}),
		OffersReturned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "offers_returned_total",
			Help:      "Total number of acceptable offers returned",
		}),
		TradesCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "execution",
			Name:      "trades_committed_total",
			Help:      "Total number of trades committed",
		}),
		TradesRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "execution",
			Name:      "trades_rejected_total",
			Help:      "Total number of proposed trades rejected at execution",
		}),
		PlayersMoved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "execution",
			Name:      "players_moved_total",
			Help:      "Total number of players reassigned by committed trades",
		}),
		PicksMoved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "execution",
			Name:      "picks_moved_total",
			Help:      "Total number of draft picks reassigned by committed trades",
		}),
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordEvaluation records one trade delta evaluation.
func RecordEvaluation(outcome string, seconds float64) {
	DefaultMetrics.EvaluationsTotal.WithLabelValues(outcome).Inc()
	DefaultMetrics.EvaluationLatency.Observe(seconds)
}

// RecordHardReject increments the incoming-pick rejection counter.
func RecordHardReject() {
	DefaultMetrics.EvaluationsRejected.Inc()
	DefaultMetrics.EvaluationsTotal.WithLabelValues("rejected").Inc()
}

// RecordNegotiation records a finished negotiation search.
func RecordNegotiation(result string, rounds int) {
	DefaultMetrics.NegotiationsTotal.WithLabelValues(result).Inc()
	DefaultMetrics.NegotiationRounds.Observe(float64(rounds))
}

// RecordTradeCommit records a committed trade and its moved assets.
func RecordTradeCommit(players, picks int) {
	DefaultMetrics.TradesCommitted.Inc()
	DefaultMetrics.PlayersMoved.Add(float64(players))
	DefaultMetrics.PicksMoved.Add(float64(picks))
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}

// QueryOp extracts the leading SQL verb for use as an operation label.
func QueryOp(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
