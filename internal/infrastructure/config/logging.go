package config

import (
	"fmt"
	"io"
	"os"
)

// LoggingConfig controls the daemon's log output. The domain and
// application layers return errors instead of logging; this only shapes
// what the daemon process itself writes.
type LoggingConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output destination: stdout, stderr, file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// File path, required when output is "file"
	FilePath string `mapstructure:"file_path"`
}

// Writer opens the configured log destination. The caller owns the
// returned closer; for stdout and stderr closing is a no-op.
func (c *LoggingConfig) Writer() (io.WriteCloser, error) {
	switch c.Output {
	case "stderr":
		return nopCloser{os.Stderr}, nil
	case "file":
		if c.FilePath == "" {
			return nil, fmt.Errorf("logging output is \"file\" but file_path is empty")
		}
		return os.OpenFile(c.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	default:
		return nopCloser{os.Stdout}, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
