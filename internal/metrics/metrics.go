// Package metrics exposes Prometheus instruments for recognition work.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transcriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcriber_transcriptions_total",
		Help: "Total number of transcriptions by strategy and status",
	}, []string{"strategy", "status"})

	transcriptionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transcriber_transcription_duration_seconds",
		Help:    "Duration of transcriptions in seconds",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
	}, []string{"strategy"})

	results = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcriber_results_total",
		Help: "Total number of recognition results",
	}, []string{"kind"}) // kind: "partial" or "final"

	audioBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcriber_audio_bytes_total",
		Help: "Total audio bytes sent to recognizers",
	}, []string{"strategy"})

	permitsInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "transcriber_recognizer_permits_in_use",
		Help: "Number of recognizer permits currently held",
	})

	workerPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transcriber_worker_panics_total",
		Help: "Total number of recovered worker panics",
	})

	sessionRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "transcriber_live_session_running",
		Help: "Whether the live session is capturing (0 or 1)",
	})
)

// Transcription tracks one strategy execution.
type Transcription struct {
	strategy  string
	startTime time.Time
}

func StartTranscription(strategy string) *Transcription {
	return &Transcription{strategy: strategy, startTime: time.Now()}
}

// End records the outcome of the execution.
func (t *Transcription) End(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	transcriptions.WithLabelValues(t.strategy, status).Inc()
	transcriptionDuration.WithLabelValues(t.strategy).Observe(time.Since(t.startTime).Seconds())
}

// AudioRead counts audio bytes read by a strategy.
func AudioRead(strategy string, n int) {
	audioBytes.WithLabelValues(strategy).Add(float64(n))
}

func RecordResult(final bool) {
	if final {
		results.WithLabelValues("final").Inc()
		return
	}
	results.WithLabelValues("partial").Inc()
}

func PermitAcquired() { permitsInUse.Inc() }
func PermitReleased() { permitsInUse.Dec() }
func WorkerPanicked() { workerPanics.Inc() }

func SetSessionRunning(running bool) {
	if running {
		sessionRunning.Set(1)
		return
	}
	sessionRunning.Set(0)
}
