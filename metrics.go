package threadlog

import "go.uber.org/atomic"

// counters aggregate delivery outcomes across registry generations of one
// Service. All fields are lock-free; the hot path only increments.
type counters struct {
	written          atomic.Uint64
	dropped          atomic.Uint64
	writeFailures    atomic.Uint64
	creationFailures atomic.Uint64
	encodingErrors   atomic.Uint64
}

// Stats is a point-in-time snapshot of a Service's delivery counters.
// Dropped counts records rejected by level filtering, lost to the shutdown
// race, or submitted while the sink was disabled.
type Stats struct {
	Written          uint64
	Dropped          uint64
	WriteFailures    uint64
	CreationFailures uint64
	EncodingErrors   uint64
}

func (m *counters) snapshot() Stats {
	return Stats{
		Written:          m.written.Load(),
		Dropped:          m.dropped.Load(),
		WriteFailures:    m.writeFailures.Load(),
		CreationFailures: m.creationFailures.Load(),
		EncodingErrors:   m.encodingErrors.Load(),
	}
}
