package threadlog

import (
	"path/filepath"
	"time"
)

// Config describes one sink. It is read once at Initialize and treated as
// immutable for the lifetime of the registry built from it.
type Config struct {
	// Dir is the directory log files are written to. Created if missing.
	Dir string `validate:"required"`

	// Basename is the stem of every log filename. A goroutine with identity
	// `worker` logs to `{Dir}/{Basename}.worker.log`.
	Basename string `validate:"required"`

	// BufferSize is the per-file write buffer in bytes. Zero disables
	// buffering so every record reaches the file immediately.
	BufferSize int `validate:"gte=0"`

	// Level is the minimum level that is written; records below it are
	// dropped. Accepts zerolog level names ("trace", "debug", ...).
	Level string `validate:"required"`

	// Rotation settings, applied per file. Rotation is enabled when
	// LogFileMaxSizeMB is positive.
	LogFileMaxSizeMB  int `validate:"gte=0"`
	LogFileMaxBackups int `validate:"gte=0"`
	LogFileMaxAgeDays int `validate:"gte=0"`
	LogFileCompress   bool

	// ShutdownTimeoutMS bounds how long a drain waits for in-flight writes
	// to settle before closing the files anyway. Zero selects a default.
	ShutdownTimeoutMS      int `validate:"gte=0"`
	ShutdownTimeoutWarning bool
}

// filePath returns the log target for the given goroutine identity.
func (c *Config) filePath(identity string) string {
	return filepath.Join(c.Dir, c.Basename+"."+identity+logFileSuffix)
}

func (c *Config) shutdownTimeout() time.Duration {
	if c.ShutdownTimeoutMS <= 0 {
		return defaultShutdownTimeout
	}
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}
