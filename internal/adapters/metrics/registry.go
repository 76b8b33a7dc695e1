package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "palletsim"
	// Subsystem for daemon metrics
	subsystem = "daemon"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalRoundCollector is the singleton round metrics collector.
	// Set by SetGlobalRoundCollector() when metrics are enabled.
	globalRoundCollector RoundMetricsRecorder
)

// RoundMetricsRecorder defines the interface for recording round results.
// Application handlers record through the package-level functions, which
// are no-ops while metrics are disabled.
type RoundMetricsRecorder interface {
	RecordRound(gameID string, round int, balance, satisfaction, costs, income float64, duration time.Duration)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalRoundCollector sets the global round metrics collector
func SetGlobalRoundCollector(collector RoundMetricsRecorder) {
	globalRoundCollector = collector
}

// RecordRound records a completed round advance globally
func RecordRound(gameID string, round int, balance, satisfaction, costs, income float64, duration time.Duration) {
	if globalRoundCollector != nil {
		globalRoundCollector.RecordRound(gameID, round, balance, satisfaction, costs, income, duration)
	}
}
