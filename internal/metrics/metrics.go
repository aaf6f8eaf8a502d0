// Package metrics provides Prometheus instrumentation for the compute
// core's two entry points: indicator registry dispatch and options
// portfolio analysis. The core itself performs no I/O, so there is
// nothing here beyond compute-duration histograms and invocation counters.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder holds the Prometheus metrics for this module. A nil *Recorder
// is valid and every method on it is a no-op, so callers that don't care
// about metrics can pass nil through registry.Compute /
// boundary.HandleOptionsRequest.
type Recorder struct {
	IndicatorComputeDur    *prometheus.HistogramVec
	IndicatorComputeTotal  *prometheus.CounterVec
	IndicatorComputeErrors *prometheus.CounterVec

	OptionsAnalyzeDur   prometheus.Histogram
	OptionsAnalyzeTotal prometheus.Counter
}

// NewRecorder creates and registers the compute-core metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		IndicatorComputeDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stoxcore_indicator_compute_duration_seconds",
			Help:    "Indicator compute latency, labeled by kind",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"kind"}),
		IndicatorComputeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stoxcore_indicator_compute_total",
			Help: "Total indicator invocations, labeled by kind",
		}, []string{"kind"}),
		IndicatorComputeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stoxcore_indicator_compute_errors_total",
			Help: "Total indicator invocation errors, labeled by kind and error kind",
		}, []string{"kind", "error_kind"}),
		OptionsAnalyzeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stoxcore_options_analyze_duration_seconds",
			Help:    "Portfolio analysis compute latency",
			Buckets: prometheus.DefBuckets,
		}),
		OptionsAnalyzeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stoxcore_options_analyze_total",
			Help: "Total portfolio analysis invocations",
		}),
	}

	prometheus.MustRegister(
		r.IndicatorComputeDur,
		r.IndicatorComputeTotal,
		r.IndicatorComputeErrors,
		r.OptionsAnalyzeDur,
		r.OptionsAnalyzeTotal,
	)

	return r
}

func (r *Recorder) ObserveIndicatorCompute(kind string, seconds float64) {
	if r == nil {
		return
	}
	r.IndicatorComputeDur.WithLabelValues(kind).Observe(seconds)
	r.IndicatorComputeTotal.WithLabelValues(kind).Inc()
}

func (r *Recorder) ObserveIndicatorError(kind, errorKind string) {
	if r == nil {
		return
	}
	r.IndicatorComputeErrors.WithLabelValues(kind, errorKind).Inc()
}

func (r *Recorder) ObserveOptionsAnalyze(seconds float64) {
	if r == nil {
		return
	}
	r.OptionsAnalyzeDur.Observe(seconds)
	r.OptionsAnalyzeTotal.Inc()
}
