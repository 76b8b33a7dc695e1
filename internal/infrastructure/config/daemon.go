package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// HTTP listen address (host:port) serving the websocket notification
	// endpoint and the health check
	Address string `mapstructure:"address" validate:"required"`

	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Run schema auto-migration on startup
	AutoMigrate bool `mapstructure:"auto_migrate"`
}
