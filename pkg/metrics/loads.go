package metrics

import "github.com/prometheus/client_golang/prometheus"

// LoadMetrics counts load board mutations by operation and outcome.
type LoadMetrics struct {
	mutations *prometheus.CounterVec
	rows      *prometheus.CounterVec
}

// NewLoadMetrics registers the load mutation counters on the provided registerer.
func NewLoadMetrics(reg prometheus.Registerer) *LoadMetrics {
	if reg == nil {
		return &LoadMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "load_mutations_total",
		Help: "Load mutations grouped by operation and outcome.",
	}, []string{"operation", "outcome"})
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "load_rows_affected_total",
		Help: "Load rows touched by successful mutations.",
	}, []string{"operation"})
	reg.MustRegister(mutations, rows)
	return &LoadMetrics{mutations: mutations, rows: rows}
}

// Observe records one mutation attempt. affected is ignored when err is set.
func (m *LoadMetrics) Observe(operation string, affected int, err error) {
	if m == nil || m.mutations == nil {
		return
	}
	op := normalizeLabel(operation)
	if err != nil {
		m.mutations.WithLabelValues(op, "error").Inc()
		return
	}
	m.mutations.WithLabelValues(op, "ok").Inc()
	if affected > 0 {
		m.rows.WithLabelValues(op).Add(float64(affected))
	}
}
