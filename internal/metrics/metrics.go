// Package metrics exposes Prometheus counters for stored health records.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's collectors. It implements services.Recorder.
type Metrics struct {
	registry            *prometheus.Registry
	dailyDataSaved      *prometheus.CounterVec
	medicalHistoryAdded prometheus.Counter
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dailyDataSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthtrack",
			Name:      "daily_data_saved_total",
			Help:      "Daily data submissions stored, by outcome.",
		}, []string{"outcome"}),
		medicalHistoryAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "healthtrack",
			Name:      "medical_history_added_total",
			Help:      "Medical history entries stored.",
		}),
	}
	m.registry.MustRegister(
		m.dailyDataSaved,
		m.medicalHistoryAdded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// DailyDataSaved counts a stored daily data submission.
func (m *Metrics) DailyDataSaved(created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	m.dailyDataSaved.WithLabelValues(outcome).Inc()
}

// MedicalHistoryAdded counts a stored medical history entry.
func (m *Metrics) MedicalHistoryAdded() {
	m.medicalHistoryAdded.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
