package threadlog

import "time"

const (
	emptyString = ""

	// timestampLayout renders wall-clock time with microsecond precision,
	// matching the on-disk line format `YYYY-MM-DD HH:MM:SS.ffffff`.
	timestampLayout = "2006-01-02 15:04:05.000000"

	// scratchBufSize is the initial capacity of each goroutine's formatting
	// buffer. Records longer than this grow the buffer, which is then reused.
	scratchBufSize = 4096

	// levelTagWidth is the column width of the level tag in a formatted line.
	levelTagWidth = 5

	logFileSuffix = ".log"

	defaultShutdownTimeout = 500 * time.Millisecond
)

const (
	errMsgNilService    = "Logger service is nil."
	errMsgNilConfig     = "Logging config is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
)
