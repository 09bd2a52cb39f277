// Package telemetry provides structured counter/gauge/histogram emission
// helpers shared by the distance, pairwise, and tcrdist packages.
//
// This is a trimmed rendition of the Fulmen telemetry standard: the upstream
// system validates every emitted event against a JSON-schema-governed metrics
// taxonomy pulled from a sibling Crucible module. That module is an internal
// monorepo dependency this repository does not have access to, so schema
// validation is dropped here — emission and optional batching are kept.
package telemetry

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MetricType represents the type of metric being emitted.
type MetricType string

const (
	TypeCounter   MetricType = "counter"
	TypeHistogram MetricType = "histogram"
	TypeGauge     MetricType = "gauge"
)

// MetricsEmitter defines the interface for emitting structured metrics.
type MetricsEmitter interface {
	Counter(name string, value float64, tags map[string]string) error
	Histogram(name string, duration time.Duration, tags map[string]string) error
	Gauge(name string, value float64, tags map[string]string) error
}

// MetricsEvent represents a structured metric event.
type MetricsEvent struct {
	Timestamp string            `json:"timestamp"`
	Name      string            `json:"name"`
	Type      MetricType        `json:"type"`
	Value     interface{}       `json:"value"`
	Tags      map[string]string `json:"tags,omitempty"`
	Unit      string            `json:"unit,omitempty"`
}

// Config holds configuration for the telemetry system.
type Config struct {
	Enabled       bool
	Emitter       MetricsEmitter
	BatchSize     int           // maximum number of metrics in a batch (0 = no batching)
	BatchInterval time.Duration // flush on the first emission after this long since the last flush, or on Flush (0 = no interval)
}

// DefaultConfig returns a default telemetry configuration: enabled, unbatched.
func DefaultConfig() *Config {
	return &Config{Enabled: true}
}

// System manages telemetry operations for a batch distance run.
type System struct {
	config *Config
	mu     sync.Mutex

	metricBuffer  []MetricsEvent
	lastFlushTime time.Time
	flushTimer    *time.Timer
}

// NewSystem creates a new telemetry system.
func NewSystem(config *Config) (*System, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return &System{config: config, lastFlushTime: time.Now()}, nil
}

// Counter emits a counter metric increment.
func (s *System) Counter(name string, value float64, tags map[string]string) error {
	if !s.isEnabled() {
		return nil
	}
	return s.emit(MetricsEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      name,
		Type:      TypeCounter,
		Value:     value,
		Tags:      tags,
	})
}

// Gauge emits a gauge metric with the current value.
func (s *System) Gauge(name string, value float64, tags map[string]string) error {
	if !s.isEnabled() {
		return nil
	}
	return s.emit(MetricsEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      name,
		Type:      TypeGauge,
		Value:     value,
		Tags:      tags,
	})
}

// Histogram emits a histogram metric with timing data.
func (s *System) Histogram(name string, duration time.Duration, tags map[string]string) error {
	if !s.isEnabled() {
		return nil
	}
	ms := float64(duration.Nanoseconds()) / 1e6
	return s.emit(MetricsEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      name,
		Type:      TypeHistogram,
		Value:     ms,
		Tags:      tags,
		Unit:      "ms",
	})
}

func (s *System) emit(event MetricsEvent) error {
	if s.config.BatchSize > 0 || s.config.BatchInterval > 0 {
		return s.bufferMetric(event)
	}
	return s.emitImmediate(event)
}

func (s *System) bufferMetric(event MetricsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metricBuffer = append(s.metricBuffer, event)

	if s.config.BatchSize > 0 && len(s.metricBuffer) >= s.config.BatchSize {
		return s.flushBufferLocked()
	}
	if s.config.BatchInterval > 0 && time.Since(s.lastFlushTime) >= s.config.BatchInterval {
		return s.flushBufferLocked()
	}
	return nil
}

func (s *System) flushBufferLocked() error {
	if len(s.metricBuffer) == 0 {
		return nil
	}
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
	for _, event := range s.metricBuffer {
		if err := s.emitImmediate(event); err != nil {
			return err
		}
	}
	s.metricBuffer = s.metricBuffer[:0]
	s.lastFlushTime = time.Now()
	return nil
}

// Flush manually flushes any buffered metrics.
func (s *System) Flush() error {
	if !s.isEnabled() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushBufferLocked()
}

func (s *System) emitImmediate(event MetricsEvent) error {
	if s.config.Emitter != nil {
		switch event.Type {
		case TypeCounter:
			v, _ := event.Value.(float64)
			return s.config.Emitter.Counter(event.Name, v, event.Tags)
		case TypeGauge:
			v, _ := event.Value.(float64)
			return s.config.Emitter.Gauge(event.Name, v, event.Tags)
		case TypeHistogram:
			v, _ := event.Value.(float64)
			return s.config.Emitter.Histogram(event.Name, time.Duration(v*1e6)*time.Nanosecond, event.Tags)
		default:
			return fmt.Errorf("unsupported metric type: %s", event.Type)
		}
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal metric event: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

func (s *System) isEnabled() bool {
	return s.config != nil && s.config.Enabled
}
