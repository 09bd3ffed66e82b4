package threadlog

import "github.com/rs/zerolog"

// Logger is the record-level surface implemented by Service. Hosts that
// inject the sink rather than using the package-level functions depend on
// this interface.
type Logger interface {
	Log(rec Record)
	Logf(level zerolog.Level, module, format string, args ...interface{})
	Tracef(module, format string, args ...interface{})
	Debugf(module, format string, args ...interface{})
	Infof(module, format string, args ...interface{})
	Warnf(module, format string, args ...interface{})
	Errorf(module, format string, args ...interface{})
	Flush()
}

var _ Logger = (*Service)(nil)
