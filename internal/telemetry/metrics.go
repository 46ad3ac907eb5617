// Package telemetry exposes Prometheus counters for the batch runner.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/segaug/internal/logging"
)

// Metrics groups the batch collectors. Each runner owns its registry so tests
// and concurrent runs do not collide on the default one.
type Metrics struct {
	Registry *prometheus.Registry

	Samples  *prometheus.CounterVec // by mode and outcome (ok|error)
	Redraws  prometheus.Counter     // singular affine draws retried
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		Samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "segaug",
			Name:      "samples_total",
			Help:      "Augmented image/label pairs, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		Redraws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "segaug",
			Name:      "affine_redraws_total",
			Help:      "Affine parameter draws rejected as singular and redrawn.",
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "segaug",
			Name:      "sample_duration_seconds",
			Help:      "Time to augment one pair, decode and encode included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"mode"}),
	}
	reg.MustRegister(m.Samples, m.Redraws, m.Duration)

	return m
}

// Observe records one finished sample.
func (m *Metrics) Observe(mode string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Samples.WithLabelValues(mode, outcome).Inc()
	m.Duration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Expose serves /metrics on addr until ctx is done.
func (m *Metrics) Expose(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.With("metrics").Warn("metrics listener stopped", "addr", addr, "err", err)
		}
	}()
}
