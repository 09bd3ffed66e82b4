package threadlog

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// names maps goroutine id -> assigned name. Each goroutine only ever stores
// or deletes its own key.
var names sync.Map

// goID returns the numeric id of the calling goroutine, parsed from its stack
// header ("goroutine 123 [running]:"). Go never reuses these ids within a
// process, which makes them a stable per-goroutine key.
func goID() uint64 {
	var b [64]byte
	n := runtime.Stack(b[:], false)
	s := b[len("goroutine "):n]
	i := bytes.IndexByte(s, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(s[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// identity returns the log identity for the goroutine with the given id: its
// assigned name if one is set, otherwise the decimal id.
func identity(id uint64) string {
	if v, ok := names.Load(id); ok {
		return v.(string)
	}
	return strconv.FormatUint(id, 10)
}

// SetName assigns a stable identity to the calling goroutine. Log files for
// this goroutine use the name instead of its numeric id. Assign the name
// before the first log call; a per-goroutine log already opened under the
// numeric id keeps its file.
func SetName(name string) {
	if name == emptyString {
		return
	}
	names.Store(goID(), name)
}

// UnsetName removes the calling goroutine's assigned name.
func UnsetName() {
	names.Delete(goID())
}

// Named runs fn with the given goroutine name bound for its duration.
// Intended to be spawned directly:
//
//	go threadlog.Named("worker-1", func() { ... })
func Named(name string, fn func()) {
	SetName(name)
	defer UnsetName()
	fn()
}
