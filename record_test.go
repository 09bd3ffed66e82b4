package threadlog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRecordFormat(t *testing.T) {
	rec := Record{
		Time:    time.Date(2024, 3, 1, 12, 34, 56, 789012000, time.UTC),
		Level:   zerolog.ErrorLevel,
		Module:  "server",
		Message: "boom",
	}

	line := string(appendRecord(nil, rec))
	assert.Equal(t, "2024-03-01 12:34:56.789012 ERROR [server] boom\n", line)
}

func TestAppendRecordPadsShortLevels(t *testing.T) {
	rec := Record{
		Time:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Level:   zerolog.InfoLevel,
		Module:  "m",
		Message: "x",
	}
	line := string(appendRecord(nil, rec))
	assert.Equal(t, "2024-03-01 00:00:00.000000 INFO  [m] x\n", line)
}

func TestAppendRecordReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, scratchBufSize)
	rec := Record{Time: time.Now(), Level: zerolog.DebugLevel, Module: "m", Message: "y"}

	out := appendRecord(buf, rec)
	assert.Equal(t, cap(buf), cap(out), "a short record must not grow the scratch buffer")
}

func TestLevelTagWidths(t *testing.T) {
	levels := []zerolog.Level{
		zerolog.TraceLevel,
		zerolog.DebugLevel,
		zerolog.InfoLevel,
		zerolog.WarnLevel,
		zerolog.ErrorLevel,
		zerolog.FatalLevel,
		zerolog.PanicLevel,
	}
	for _, l := range levels {
		assert.Len(t, levelTag(l), levelTagWidth, "tag for %v", l)
	}

	assert.Equal(t, "ERROR", levelTag(zerolog.ErrorLevel))
	assert.Equal(t, "WARN ", levelTag(zerolog.WarnLevel))
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l)

	_, err = parseLevel("notalevel")
	require.Error(t, err)
}
