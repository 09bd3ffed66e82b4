// Package threadlog provides per-goroutine, line-oriented file logging with a
// lock-free shutdown handoff. Each goroutine that logs gets its own append-only
// file, so the per-record hot path never touches a shared lock.
//
// Key features
//   - One log file per goroutine: {dir}/{basename}.{identity}.log, where the
//     identity is an assigned name (SetName/Named) or the numeric goroutine id
//   - Lazily created, goroutine-confined writers: creation and writes happen
//     only from the owning goroutine
//   - Coordinated shutdown: an atomically swapped registry slot guarantees
//     exactly one drain that flushes and closes every live writer
//   - File rotation via lumberjack and a configurable write buffer
//   - Logging never perturbs the caller: per-record failures are reported on
//     stderr and the record is dropped
//
// Typical usage
//
//	h, err := threadlog.Setup(threadlog.Config{Dir: dir, Basename: "app", Level: "debug"})
//	if err != nil {
//		panic(err)
//	}
//	defer h.Close()
//
//	threadlog.Infof("server", "listening on %s", addr)
//
//	go threadlog.Named("worker-1", func() {
//		threadlog.Debugf("worker", "tick")
//	})
package threadlog
