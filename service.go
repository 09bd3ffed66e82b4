package threadlog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service is one sink instance. The zero value is inert and safe to call;
// Initialize arms it. The cell holds the active registry and is the only
// state shared across goroutines: log calls load it, Close swaps it out.
type Service struct {
	Config Config

	cell          atomic.Pointer[shim]
	isInitialized atomic.Bool
	m             counters
}

// sprintPool is a buffer pool for the print-style helpers to reduce allocations.
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

func New(cfg Config) *Service {
	return &Service{Config: cfg}
}

// Initialize validates the configuration, creates the log directory and
// installs a fresh registry. Calling it again while the service is active is
// a no-op; calling it after Close re-arms the service.
func (l *Service) Initialize() error {
	if l == nil {
		return errors.New(errMsgNilService)
	}
	if err := validateConfig(&l.Config); err != nil {
		return err
	}
	if err := os.MkdirAll(l.Config.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// CAS so concurrent Initialize calls cannot replace an installed registry.
	if l.cell.Load() == nil {
		l.cell.CompareAndSwap(nil, newShim(&l.Config, &l.m))
	}
	l.isInitialized.Store(true)
	return nil
}

// Initialized reports whether Initialize has completed successfully at least
// once.
func (l *Service) Initialized() bool {
	return l != nil && l.isInitialized.Load()
}

// Close disables the sink and drains the registry that was active: the swap
// is a single atomic exchange, so exactly one caller wins and flushes/closes
// every per-goroutine file. Records submitted concurrently either complete
// against the old registry or are dropped; none observe a half-drained state.
// It's safe to call Close multiple times.
func (l *Service) Close() error {
	if l == nil {
		return nil
	}
	old := l.cell.Swap(nil)
	if old == nil {
		return nil
	}
	old.shutdown()
	return nil
}

// Log submits one record. It never returns an error and never blocks beyond
// the underlying file write; failures are reported on stderr and the record
// is dropped.
func (l *Service) Log(rec Record) {
	if l == nil {
		return
	}
	sh := l.cell.Load()
	if sh == nil {
		l.m.dropped.Inc()
		return
	}
	sh.log(rec)
}

// Logf formats and submits one record at the given level.
func (l *Service) Logf(level zerolog.Level, module, format string, args ...interface{}) {
	if l == nil {
		return
	}
	sh := l.cell.Load()
	if sh == nil {
		l.m.dropped.Inc()
		return
	}
	if level < sh.min {
		l.m.dropped.Inc()
		return
	}
	sh.log(Record{Time: time.Now(), Level: level, Module: module, Message: fmt.Sprintf(format, args...)})
}

// Flush flushes the calling goroutine's log file, creating it if this
// goroutine has not logged yet.
func (l *Service) Flush() {
	if l == nil {
		return
	}
	if sh := l.cell.Load(); sh != nil {
		sh.flush()
	}
}

// Stats returns a snapshot of the service's delivery counters.
func (l *Service) Stats() Stats {
	if l == nil {
		return Stats{}
	}
	return l.m.snapshot()
}

func (l *Service) Tracef(module, format string, args ...interface{}) {
	l.Logf(zerolog.TraceLevel, module, format, args...)
}

func (l *Service) Debugf(module, format string, args ...interface{}) {
	l.Logf(zerolog.DebugLevel, module, format, args...)
}

func (l *Service) Infof(module, format string, args ...interface{}) {
	l.Logf(zerolog.InfoLevel, module, format, args...)
}

func (l *Service) Warnf(module, format string, args ...interface{}) {
	l.Logf(zerolog.WarnLevel, module, format, args...)
}

func (l *Service) Errorf(module, format string, args ...interface{}) {
	l.Logf(zerolog.ErrorLevel, module, format, args...)
}

func (l *Service) print(level zerolog.Level, module string, fields []interface{}) {
	if l == nil {
		return
	}
	sh := l.cell.Load()
	if sh == nil {
		l.m.dropped.Inc()
		return
	}
	if level < sh.min {
		l.m.dropped.Inc()
		return
	}

	// Use the buffer pool to avoid allocations
	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	fmt.Fprint(buf, fields...)
	sh.log(Record{Time: time.Now(), Level: level, Module: module, Message: buf.String()})
}

func (l *Service) Debug(module string, fields ...interface{}) {
	l.print(zerolog.DebugLevel, module, fields)
}

func (l *Service) Info(module string, fields ...interface{}) {
	l.print(zerolog.InfoLevel, module, fields)
}

func (l *Service) Warn(module string, fields ...interface{}) {
	l.print(zerolog.WarnLevel, module, fields)
}

func (l *Service) Error(module string, fields ...interface{}) {
	l.print(zerolog.ErrorLevel, module, fields)
}
