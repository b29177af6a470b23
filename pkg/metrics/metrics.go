// Package metrics provides Prometheus instrumentation for the HTTP surface
// and the voice pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// VoiceTurnsTotal counts processed voice turns by resulting action.
	VoiceTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_turns_total",
			Help: "Total voice turns processed",
		},
		[]string{"action", "success"},
	)

	// VoiceTurnDuration tracks end-to-end turn latency.
	VoiceTurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_turn_duration_seconds",
			Help:    "Voice turn duration in seconds",
			Buckets: []float64{.25, .5, 1, 2, 3, 5, 8, 13, 20, 30},
		},
	)

	// CollaboratorDuration tracks calls to the transcriber, NLU backend,
	// synthesizer and stores.
	CollaboratorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voice_collaborator_duration_seconds",
			Help:    "External collaborator call duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2, 5, 10, 20},
		},
		[]string{"collaborator", "status"},
	)

	// ContextConflictsTotal counts turns rejected by the session version check.
	ContextConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_context_conflicts_total",
			Help: "Total conversation context write conflicts",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

func RecordTurn(action string, success bool, duration time.Duration) {
	VoiceTurnsTotal.WithLabelValues(action, strconv.FormatBool(success)).Inc()
	VoiceTurnDuration.Observe(duration.Seconds())
}

// ObserveCollaborator records one collaborator call started at start.
func ObserveCollaborator(collaborator string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CollaboratorDuration.WithLabelValues(collaborator, status).Observe(time.Since(start).Seconds())
}

func IncrementContextConflicts() {
	ContextConflictsTotal.Inc()
}
