package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values beyond checker outcomes.
const (
	outcomeUnchecked = "unchecked"
)

// Metrics holds the benchmark collectors. A nil *Metrics records nothing.
type Metrics struct {
	queries       *prometheus.CounterVec
	generated     *prometheus.HistogramVec
	solutions     *prometheus.HistogramVec
	queryDuration *prometheus.HistogramVec
	initDuration  *prometheus.HistogramVec
}

// NewMetrics registers the benchmark collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "namoa_queries_total",
			Help: "Pareto queries by engine, variant and oracle outcome",
		}, []string{"engine", "variant", "outcome"}),

		generated: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "namoa_generated_labels",
			Help:    "Labels popped from the queue per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}, []string{"engine", "variant"}),

		solutions: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "namoa_pareto_set_size",
			Help:    "Pareto-optimal cost vectors per query",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"engine", "variant"}),

		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "namoa_query_duration_seconds",
			Help:    "Search time per query, heuristic excluded",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
		}, []string{"engine", "variant"}),

		initDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "namoa_heuristic_duration_seconds",
			Help:    "Heuristic set-up time per query",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 18),
		}, []string{"engine"}),
	}
}

func (m *Metrics) observe(r QueryResult) {
	if m == nil {
		return
	}
	outcome := outcomeUnchecked
	if r.Checked {
		outcome = r.Outcome.String()
	}
	m.queries.WithLabelValues(r.Engine, r.Variant, outcome).Inc()
	m.generated.WithLabelValues(r.Engine, r.Variant).Observe(float64(r.Generated))
	m.solutions.WithLabelValues(r.Engine, r.Variant).Observe(float64(len(r.Solutions)))
	m.queryDuration.WithLabelValues(r.Engine, r.Variant).Observe(r.QueryTime.Seconds())
	m.initDuration.WithLabelValues(r.Engine).Observe(r.HeuristicTime.Seconds())
}
