package threadlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// diag is the subsystem's own error stream. Logging must never perturb caller
// control flow, so anything that goes wrong mid-record (creation failures,
// short writes, bad payloads, drain timeouts) is reported here instead of
// being returned.
var diag = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Str("subsystem", "threadlog").Logger()
