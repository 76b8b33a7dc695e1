package config

// MetricsConfig controls the Prometheus endpoint the daemon exposes.
// Round and command metrics are only collected while Enabled is true.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Host to bind the metrics server; stays on localhost unless the
	// scrape target genuinely needs to be reachable from elsewhere.
	Host string `mapstructure:"host"`

	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Path of the scrape endpoint, normally /metrics
	Path string `mapstructure:"path"`
}
