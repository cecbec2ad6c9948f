// ============================================================================
// calcalc - Calendar Distance Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator service shared by the CLI and the terminal UI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"time"

	"github.com/google/uuid"

	"github.com/msto63/calcalc/foundation/core/log"
	"github.com/msto63/calcalc/pkg/calendar"
	"github.com/msto63/calcalc/pkg/core/metrics"
)

// Operation names used in logs and metrics
const (
	OpBetween = "between"
	OpAdd     = "add"
	OpNow     = "now"
)

// DistanceResult is the outcome of a Between call
type DistanceResult struct {
	From     calendar.Timestamp `json:"from" yaml:"from"`
	To       calendar.Timestamp `json:"to" yaml:"to"`
	Distance calendar.Distance  `json:"distance" yaml:"distance"`
}

// AddResult is the outcome of an Add call
type AddResult struct {
	Start    calendar.Timestamp `json:"start" yaml:"start"`
	Quantity calendar.Quantity  `json:"quantity" yaml:"quantity"`
	Result   calendar.Timestamp `json:"result" yaml:"result"`
}

// Service parses user input and runs the calendar operations
type Service struct {
	clock   calendar.Clock
	logger  *log.Logger
	metrics *metrics.Recorder
	id      string
}

// Config holds service configuration
type Config struct {
	Clock   calendar.Clock    // default: calendar.SystemClock{}
	Logger  *log.Logger       // default: log.Discard()
	Metrics *metrics.Recorder // default: a private recorder
}

// NewService creates a new calculator service
func NewService(cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = calendar.SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Discard()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewRecorder()
	}

	id := uuid.NewString()
	return &Service{
		clock:   cfg.Clock,
		logger:  cfg.Logger.WithName("calculator").WithCorrelationID(id),
		metrics: cfg.Metrics,
		id:      id,
	}
}

// ID returns the correlation ID attached to every log entry of this service
func (s *Service) ID() string {
	return s.id
}

// Metrics returns the recorder the service reports to
func (s *Service) Metrics() *metrics.Recorder {
	return s.metrics
}

// Between parses two timestamps and returns their distance
func (s *Service) Between(a, b string) (DistanceResult, error) {
	started := time.Now()

	from, err := calendar.Parse(a)
	if err != nil {
		return DistanceResult{}, s.fail(OpBetween, started, err)
	}
	to, err := calendar.Parse(b)
	if err != nil {
		return DistanceResult{}, s.fail(OpBetween, started, err)
	}

	d := calendar.Between(from, to)
	s.succeed(OpBetween, started, log.Fields{
		"from":      from.String(),
		"to":        to.String(),
		"seconds":   d.Seconds,
		"days":      d.Days,
		"sundays":   d.Sundays,
		"saturdays": d.Saturdays,
	})

	return DistanceResult{From: from, To: to, Distance: d}, nil
}

// Add parses a timestamp and a quantity and returns the moved timestamp
func (s *Service) Add(ts, amount, unit string) (AddResult, error) {
	started := time.Now()

	start, err := calendar.Parse(ts)
	if err != nil {
		return AddResult{}, s.fail(OpAdd, started, err)
	}
	q, err := calendar.ParseQuantity(amount, unit)
	if err != nil {
		return AddResult{}, s.fail(OpAdd, started, err)
	}
	result, err := calendar.AddQuantity(start, q)
	if err != nil {
		return AddResult{}, s.fail(OpAdd, started, err)
	}

	fields := log.Fields{
		"start":    start.String(),
		"quantity": q.String(),
		"result":   result.String(),
	}
	if (q.Unit == calendar.Month || q.Unit == calendar.Year) && result.Day() != start.Day() {
		s.logger.Info("day clamped to end of month", fields)
	}
	s.succeed(OpAdd, started, fields)

	return AddResult{Start: start, Quantity: q, Result: result}, nil
}

// Now returns the current timestamp of the configured clock
func (s *Service) Now() (calendar.Timestamp, error) {
	started := time.Now()

	now, err := calendar.Now(s.clock)
	if err != nil {
		return calendar.Timestamp{}, s.fail(OpNow, started, err)
	}

	s.succeed(OpNow, started, log.Fields{"now": now.String()})
	return now, nil
}

func (s *Service) succeed(op string, started time.Time, fields log.Fields) {
	s.metrics.Observe(op, started, nil, "")
	s.logger.Debug(op+" completed", fields.With("operation", op))
}

func (s *Service) fail(op string, started time.Time, err error) error {
	s.metrics.Observe(op, started, err, string(calendar.Kind(err)))
	s.logger.LogError(err)
	return err
}
