// Package metrics exposes prometheus counters for field lifecycle events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FieldMetrics counts what happens to field values on read and save.
type FieldMetrics struct {
	normalizeTotal  *prometheus.CounterVec
	decodeFailures  *prometheus.CounterVec
	validationTotal *prometheus.CounterVec
}

// NewFieldMetrics registers the field counters on reg, or on the default
// registerer when reg is nil.
func NewFieldMetrics(reg prometheus.Registerer) *FieldMetrics {
	m := &FieldMetrics{
		normalizeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telephone",
			Subsystem: "field",
			Name:      "normalize_total",
			Help:      "Field values normalized, by resulting state",
		}, []string{"field", "state"}),
		decodeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telephone",
			Subsystem: "field",
			Name:      "decode_failures_total",
			Help:      "Stored field values that could not be decoded",
		}, []string{"field"}),
		validationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telephone",
			Subsystem: "field",
			Name:      "validation_total",
			Help:      "Field validation passes, by outcome",
		}, []string{"field", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.normalizeTotal, m.decodeFailures, m.validationTotal)
	return m
}

func (m *FieldMetrics) ObserveNormalize(field, state string) {
	if m == nil {
		return
	}
	m.normalizeTotal.WithLabelValues(field, state).Inc()
}

func (m *FieldMetrics) ObserveDecodeFailure(field string) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(field).Inc()
}

func (m *FieldMetrics) ObserveValidation(field string, valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.validationTotal.WithLabelValues(field, outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
