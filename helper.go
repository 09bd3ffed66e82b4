package threadlog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// parseLevel parses a string log level into a zerolog.Level.
// Returns zerolog.NoLevel and an error if parsing fails.
func parseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// levelTag returns the upper-case level name padded to levelTagWidth columns,
// so the module tag that follows it lines up across records.
func levelTag(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel:
		return "TRACE"
	case zerolog.DebugLevel:
		return "DEBUG"
	case zerolog.InfoLevel:
		return "INFO "
	case zerolog.WarnLevel:
		return "WARN "
	case zerolog.ErrorLevel:
		return "ERROR"
	case zerolog.FatalLevel:
		return "FATAL"
	case zerolog.PanicLevel:
		return "PANIC"
	default:
		return fmt.Sprintf("%-*s", levelTagWidth, strings.ToUpper(l.String()))
	}
}
