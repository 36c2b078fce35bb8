package metric

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sokoverse/level-predictor/app/artifact"
)

type Metrics struct {
	RequestCount       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	PredictionFailures prometheus.Counter
	PredictionDuration prometheus.Histogram
	ArtifactLoads      *prometheus.CounterVec
}

var (
	success = "success"
	failure = "failure"
)

// RequestCount provides metrics for total predict requests by status code
func RequestCount() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "level_predictor_requests_total",
			Help: "Total number of predict requests by response status",
		},
		[]string{"code"},
	)
}

// ValidationFailures provides metrics for rejected requests by failing check
func ValidationFailures() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "level_predictor_validation_failures_total",
			Help: "Total number of requests rejected by validation",
		},
		[]string{"field"},
	)
}

// PredictionFailures provides metrics for requests that failed after validation
func PredictionFailures() prometheus.Counter {
	return prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "level_predictor_prediction_failures_total",
			Help: "Total number of predictions that failed to load or apply the artifacts",
		},
	)
}

// PredictionDuration provides metrics for time spent loading artifacts and running inference
func PredictionDuration() prometheus.Histogram {
	return prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "level_predictor_prediction_duration_seconds",
			Help:    "Time spent producing a prediction",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)
}

// ArtifactLoads provides metrics for artifact load attempts
func ArtifactLoads() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "level_predictor_artifact_loads_total",
			Help: "Total number of artifact load attempts",
		},
		[]string{"result"},
	)
}

// RegisterMetrics creates the metrics and registers them with reg.
func RegisterMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCount:       RequestCount(),
		ValidationFailures: ValidationFailures(),
		PredictionFailures: PredictionFailures(),
		PredictionDuration: PredictionDuration(),
		ArtifactLoads:      ArtifactLoads(),
	}
	reg.MustRegister(m.RequestCount, m.ValidationFailures, m.PredictionFailures, m.PredictionDuration, m.ArtifactLoads)
	return m
}

// ObserveStatus counts one response with the given status code.
func (m *Metrics) ObserveStatus(code int) {
	m.RequestCount.WithLabelValues(strconv.Itoa(code)).Inc()
}

// InstrumentSource counts every load made through src.
func (m *Metrics) InstrumentSource(src artifact.Source) artifact.Source {
	return &instrumentedSource{Source: src, loads: m.ArtifactLoads}
}

type instrumentedSource struct {
	artifact.Source
	loads *prometheus.CounterVec
}

func (s *instrumentedSource) Load(ctx context.Context) (*artifact.Bundle, error) {
	b, err := s.Source.Load(ctx)
	if err != nil {
		s.loads.WithLabelValues(failure).Inc()
		return nil, err
	}
	s.loads.WithLabelValues(success).Inc()
	return b, nil
}
