package catalog

import "github.com/prometheus/client_golang/prometheus"

type queryMetrics struct {
	total *prometheus.CounterVec
}

func newQueryMetrics(reg prometheus.Registerer) *queryMetrics {
	m := &queryMetrics{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_queries_total",
				Help: "Catalog queries by result kind",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.total)
	return m
}

// observe is a no-op on a nil receiver so handlers work without a registry.
func (m *queryMetrics) observe(kind string) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(kind).Inc()
}
