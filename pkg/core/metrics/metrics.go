// ============================================================================
// calcalc - Calendar Distance Calculator
// ============================================================================
//
// Package:     metrics
// Description: Prometheus counters and timings for calculator operations
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name
const Namespace = "calcalc"

// Result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder owns a private registry so several recorders can coexist in one
// process (tests, embedded use).
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total calculator operations by result.",
		}, []string{"operation", "result"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operation_errors_total",
			Help:      "Total failed calculator operations by error code.",
		}, []string{"operation", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of calculator operations.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"operation"}),
	}
}

// Observe records one finished operation. code is only used when err is set.
func (r *Recorder) Observe(operation string, started time.Time, err error, code string) {
	if r == nil {
		return
	}

	r.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())

	if err != nil {
		r.operations.WithLabelValues(operation, ResultError).Inc()
		r.errors.WithLabelValues(operation, code).Inc()
		return
	}
	r.operations.WithLabelValues(operation, ResultOK).Inc()
}

// Operations returns the operations counter vector
func (r *Recorder) Operations() *prometheus.CounterVec { return r.operations }

// Errors returns the error counter vector
func (r *Recorder) Errors() *prometheus.CounterVec { return r.errors }

// WriteText writes all collected metrics in the Prometheus text exposition
// format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
