// Package metrics exports dispatch telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "report_relay"

// PrometheusRecorder implements contract.Recorder.
type PrometheusRecorder struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	skipped    *prometheus.CounterVec
}

// NewPrometheusRecorder registers the dispatch metrics on reg. Registering twice
// on the same registry reuses the existing collectors.
func NewPrometheusRecorder(namespace string, reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	dispatches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatches_total",
		Help:      "Dispatch cycles by trigger and outcome.",
	}, []string{"trigger", "status"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Latency of a full dispatch cycle, generation plus delivery.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"trigger"}))
	if err != nil {
		return nil, err
	}

	skipped, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "triggers_skipped_total",
		Help:      "Triggers that did not start a cycle, by trigger and reason.",
	}, []string{"trigger", "reason"}))
	if err != nil {
		return nil, err
	}

	return &PrometheusRecorder{
		dispatches: dispatches,
		duration:   duration,
		skipped:    skipped,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register relay metric: %w", err)
	}
	return collector, nil
}

func (r *PrometheusRecorder) ObserveDispatch(trigger entity.TriggerKind, status entity.OutcomeStatus, duration time.Duration) {
	if r == nil {
		return
	}
	r.dispatches.WithLabelValues(string(trigger), string(status)).Inc()
	r.duration.WithLabelValues(string(trigger)).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) TriggerSkipped(trigger entity.TriggerKind, reason string) {
	if r == nil {
		return
	}
	r.skipped.WithLabelValues(string(trigger), reason).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
