package threadlog

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// shim maps goroutines to their per-goroutine logs. An entry is created on
// its goroutine's first call and only ever used by that goroutine afterwards;
// the map itself is the single structure touched cross-goroutine, with one
// writer per key.
type shim struct {
	cfg *Config
	min zerolog.Level
	m   *counters

	entries  sync.Map // goroutine id -> *perThreadLog
	inflight atomic.Int64
	drained  atomic.Bool
}

func newShim(cfg *Config, m *counters) *shim {
	// Config already validated; parseLevel cannot fail here.
	min, _ := parseLevel(cfg.Level)
	return &shim{cfg: cfg, min: min, m: m}
}

// perThread resolves the calling goroutine's log, creating it on first use.
// A creation failure is not memoized: the next call retries the open.
func (s *shim) perThread(id uint64) (*perThreadLog, error) {
	if v, ok := s.entries.Load(id); ok {
		return v.(*perThreadLog), nil
	}
	ptl, err := newPerThreadLog(s.cfg, id)
	if err != nil {
		return nil, err
	}
	// Only the owning goroutine inserts this key, so the store cannot race.
	s.entries.Store(id, ptl)
	return ptl, nil
}

func (s *shim) log(rec Record) {
	if rec.Level < s.min {
		s.m.dropped.Inc()
		return
	}
	if !utf8.ValidString(rec.Module) || !utf8.ValidString(rec.Message) {
		s.m.encodingErrors.Inc()
		diag.Error().Err(&EncodingError{Module: rec.Module}).Msg("dropping record")
		return
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	s.inflight.Inc()
	defer s.inflight.Dec()

	// A drain may already have won the cell swap while we were resolving the
	// registry. Records that lose this race are dropped, never corrupted.
	if s.drained.Load() {
		s.m.dropped.Inc()
		return
	}

	ptl, err := s.perThread(goID())
	if err != nil {
		s.m.creationFailures.Inc()
		diag.Error().Err(err).Msg("could not create per-goroutine log")
		return
	}
	if ptl.log(rec) {
		s.m.written.Inc()
	} else {
		s.m.writeFailures.Inc()
	}
}

func (s *shim) flush() {
	// Same ordering as log: the increment must precede the drained check so
	// the drain's settle wait covers any entry this call is about to create.
	s.inflight.Inc()
	defer s.inflight.Dec()

	if s.drained.Load() {
		return
	}
	ptl, err := s.perThread(goID())
	if err != nil {
		diag.Error().Err(err).Msg("could not create per-goroutine log")
		return
	}
	ptl.flush()
}

// shutdown drains the registry: it waits (bounded) for in-flight writes to
// settle, then flushes and closes every entry that existed at swap time.
// Idempotent; only the first call does the work.
func (s *shim) shutdown() {
	if !s.drained.CompareAndSwap(false, true) {
		return
	}

	timeout := s.cfg.shutdownTimeout()
	if !s.waitSettled(time.Now().Add(timeout)) && s.cfg.ShutdownTimeoutWarning {
		diag.Warn().Dur("timeout", timeout).
			Msg("shutdown drain proceeding before all in-flight writes settled")
	}

	s.entries.Range(func(k, v any) bool {
		ptl := v.(*perThreadLog)
		ptl.flush()
		if err := ptl.close(); err != nil {
			diag.Error().Err(err).Str("identity", ptl.identity).
				Msg("failed to close per-goroutine log")
		}
		s.entries.Delete(k)
		return true
	})
}

func (s *shim) waitSettled(deadline time.Time) bool {
	for s.inflight.Load() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}
