package threadlog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rawWriter owns one opened output target: an append-mode file, or a
// lumberjack rolling file when rotation is configured, optionally behind a
// write buffer. Only the owning goroutine writes through it; flush and close
// are additionally reachable from the drain path after the registry swap.
// The mutex serializes those two paths: it is uncontended in steady state and
// only matters when a drain that timed out waiting for an in-flight write
// closes the writer while that write is still running.
type rawWriter struct {
	path   string
	out    io.WriteCloser
	buf    *bufio.Writer // nil when BufferSize is zero
	mu     sync.Mutex
	closed atomic.Bool
}

func openRawWriter(cfg *Config, path string) (*rawWriter, error) {
	var out io.WriteCloser
	if cfg.LogFileMaxSizeMB > 0 {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.LogFileMaxSizeMB,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAge:     cfg.LogFileMaxAgeDays,
			Compress:   cfg.LogFileCompress,
		}
	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, &CreationError{Path: path, BufferSize: cfg.BufferSize, Err: err}
		}
		out = f
	}

	w := &rawWriter{path: path, out: out}
	if cfg.BufferSize > 0 {
		w.buf = bufio.NewWriterSize(out, cfg.BufferSize)
	}
	return w, nil
}

// write appends msg to the target. A false return means the write failed or
// was short; the failure has already been reported on the diagnostic stream.
func (w *rawWriter) write(msg []byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Load() {
		return false
	}
	dst := io.Writer(w.out)
	if w.buf != nil {
		dst = w.buf
	}
	n, err := dst.Write(msg)
	if err != nil || n < len(msg) {
		diag.Error().Err(err).Str("path", w.path).
			Int("wrote", n).Int("want", len(msg)).
			Msg("failed to write to log")
		return false
	}
	return true
}

func (w *rawWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Load() || w.buf == nil {
		return
	}
	if err := w.buf.Flush(); err != nil {
		diag.Error().Err(err).Str("path", w.path).Msg("failed to flush log buffer")
	}
}

// close flushes the buffer and closes the target. Safe to call more than once.
func (w *rawWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Swap(true) {
		return nil
	}
	var flushErr error
	if w.buf != nil {
		flushErr = w.buf.Flush()
	}
	return errors.Join(flushErr, w.out.Close())
}
