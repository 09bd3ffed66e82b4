package threadlog

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// active is the process-wide sink slot. Setup installs a Service with a
// single compare-and-swap; the package-level logging functions read through
// it without blocking.
var active atomic.Pointer[Service]

// Handle owns the process-wide registration made by Setup. Closing it
// unregisters the sink and drains every per-goroutine log exactly once.
type Handle struct {
	svc *Service
}

// Setup builds a Service from cfg, initializes it and registers it as the
// process-wide sink. While a previous Handle is still active it fails with
// ErrAlreadyRegistered; after that Handle is closed the slot is free again.
func Setup(cfg Config) (*Handle, error) {
	svc := New(cfg)
	if err := svc.Initialize(); err != nil {
		return nil, err
	}
	if !active.CompareAndSwap(nil, svc) {
		_ = svc.Close()
		return nil, ErrAlreadyRegistered
	}
	return &Handle{svc: svc}, nil
}

// Shutdown frees the process-wide slot and drains the sink. Concurrent and
// repeated calls are safe: the drain runs once, everyone else returns
// immediately.
func (h *Handle) Shutdown() {
	if h == nil || h.svc == nil {
		return
	}
	active.CompareAndSwap(h.svc, nil)
	_ = h.svc.Close()
}

// Close implements io.Closer. It always returns nil: drain problems are
// reported on stderr, not escalated to the caller.
func (h *Handle) Close() error {
	h.Shutdown()
	return nil
}

// Service returns the sink this handle registered, for hosts that want to
// inject it instead of using the package-level functions.
func (h *Handle) Service() *Service {
	if h == nil {
		return nil
	}
	return h.svc
}

// Package-level entry points, forwarding to the registered sink. All of them
// are no-ops while no sink is registered.

func Log(rec Record) { active.Load().Log(rec) }

func Logf(level zerolog.Level, module, format string, args ...interface{}) {
	active.Load().Logf(level, module, format, args...)
}

func Tracef(module, format string, args ...interface{}) {
	active.Load().Tracef(module, format, args...)
}

func Debugf(module, format string, args ...interface{}) {
	active.Load().Debugf(module, format, args...)
}

func Infof(module, format string, args ...interface{}) {
	active.Load().Infof(module, format, args...)
}

func Warnf(module, format string, args ...interface{}) {
	active.Load().Warnf(module, format, args...)
}

func Errorf(module, format string, args ...interface{}) {
	active.Load().Errorf(module, format, args...)
}

// Flush flushes the calling goroutine's log file of the registered sink.
func Flush() { active.Load().Flush() }
