package threadlog

import (
	"time"

	"github.com/rs/zerolog"
)

// Record is one log entry as produced by call sites elsewhere in the host
// process. A zero Time is stamped when the record is accepted.
type Record struct {
	Time    time.Time
	Level   zerolog.Level
	Module  string
	Message string
}

// appendRecord formats rec into buf as
//
//	YYYY-MM-DD HH:MM:SS.ffffff LEVEL [module] message\n
//
// and returns the extended buffer.
func appendRecord(buf []byte, rec Record) []byte {
	buf = rec.Time.AppendFormat(buf, timestampLayout)
	buf = append(buf, ' ')
	buf = append(buf, levelTag(rec.Level)...)
	buf = append(buf, " ["...)
	buf = append(buf, rec.Module...)
	buf = append(buf, "] "...)
	buf = append(buf, rec.Message...)
	buf = append(buf, '\n')
	return buf
}
