// Package metrics exposes prometheus counters for species submissions and
// data store requests.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeSucceeded    = "succeeded"
	OutcomeInvalid      = "invalid"
	OutcomeBackendError = "backend_error"
)

// Metrics holds the catalog's collectors.
type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	StoreRequestsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		registry: registry,
		SubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "species_submissions_total",
				Help: "Species form submissions partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		StoreRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "species_store_requests_total",
				Help: "Requests made to the species data store partitioned by operation and result.",
			},
			[]string{"operation", "result"},
		),
	}

	for _, c := range []prometheus.Collector{m.SubmissionsTotal, m.StoreRequestsTotal} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register species metrics: %w", err)
		}
	}
	return m, nil
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSubmission counts one submission outcome.
func (m *Metrics) ObserveSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveStoreRequest counts one data store request.
func (m *Metrics) ObserveStoreRequest(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreRequestsTotal.WithLabelValues(operation, result).Inc()
}
