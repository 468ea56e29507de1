// Package metrics records per-strategy run statistics in a private
// Prometheus registry and renders them in the text exposition format.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
)

const namespace = "stencilcalc"

// Run status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics groups the collectors for one application run.
type Metrics struct {
	registry     *prometheus.Registry
	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	cellsWritten *prometheus.GaugeVec
	mismatches   *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry, so repeated
// construction in tests never collides on registration.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of averaging runs by strategy and status.",
		}, []string{"strategy", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of averaging runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
		cellsWritten: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cells_written",
			Help:      "Interior cells written by the last run of a strategy.",
		}, []string{"strategy"}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Cells outside tolerance when compared with the reference strategy.",
		}, []string{"strategy"}),
	}
	m.registry.MustRegister(
		m.runs, m.duration, m.cellsWritten, m.mismatches,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveRun records the outcome of one strategy run.
func (m *Metrics) ObserveRun(strategy string, d time.Duration, cells int, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.runs.WithLabelValues(strategy, status).Inc()
	m.duration.WithLabelValues(strategy).Observe(d.Seconds())
	if err == nil {
		m.cellsWritten.WithLabelValues(strategy).Set(float64(cells))
	}
}

// AddMismatches records n out-of-tolerance cells for strategy.
func (m *Metrics) AddMismatches(strategy string, n int) {
	m.mismatches.WithLabelValues(strategy).Add(float64(n))
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteText gathers every metric and writes it to w in the Prometheus text
// format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return apperrors.WrapError(err, "write metric family %s", mf.GetName())
		}
	}
	return nil
}
