// Package metrics counts transform outcomes and diagnostics.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
)

const (
	OutcomeProduced = "produced"
	OutcomeRejected = "rejected"
)

// Metrics owns its registry so that a one-shot CLI run can export exactly the
// series it recorded.
type Metrics struct {
	Registry *prometheus.Registry

	Transforms       *prometheus.CounterVec
	Diagnostics      *prometheus.CounterVec
	TransformLatency prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Transforms: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pixfeed_transforms_total",
			Help: "Registration transforms by outcome",
		}, []string{"outcome"}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pixfeed_diagnostics_total",
			Help: "Diagnostics recorded by severity and code",
		}, []string{"severity", "code"}),
		TransformLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pixfeed_transform_duration_seconds",
			Help:    "Duration of a registration transform",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// ObserveTransform records one transform call.
func (m *Metrics) ObserveTransform(produced bool, diags []diagnostics.Diagnostic, d time.Duration) {
	if m == nil {
		return
	}

	outcome := OutcomeRejected
	if produced {
		outcome = OutcomeProduced
	}
	m.Transforms.WithLabelValues(outcome).Inc()
	for _, diag := range diags {
		m.Diagnostics.WithLabelValues(diag.Severity.String(), string(diag.Code)).Inc()
	}
	m.TransformLatency.Observe(d.Seconds())
}

// WriteToTextfile writes the registry in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
