package threadlog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRawWriterCreationError(t *testing.T) {
	cfg := &Config{Dir: t.TempDir(), Basename: "w", BufferSize: 16, Level: "debug"}
	path := filepath.Join(cfg.Dir, "missing", "sub", "w.log")

	_, err := openRawWriter(cfg, path)
	require.Error(t, err)

	var ce *CreationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, path, ce.Path)
	assert.Equal(t, 16, ce.BufferSize)
	assert.Contains(t, ce.Error(), "buffer_size: 16")
}

func TestRawWriterUnbuffered(t *testing.T) {
	cfg := &Config{Dir: t.TempDir(), Basename: "w", Level: "debug"}
	path := filepath.Join(cfg.Dir, "w.log")

	w, err := openRawWriter(cfg, path)
	require.NoError(t, err)

	require.True(t, w.write([]byte("first line\n")))
	require.True(t, w.write([]byte("second line\n")))

	// unbuffered writes land immediately
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\n", string(data))

	require.NoError(t, w.close())
}

func TestRawWriterBuffered(t *testing.T) {
	cfg := &Config{Dir: t.TempDir(), Basename: "w", BufferSize: 4096, Level: "debug"}
	path := filepath.Join(cfg.Dir, "w.log")

	w, err := openRawWriter(cfg, path)
	require.NoError(t, err)

	require.True(t, w.write([]byte("held back\n")))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, fi.Size())

	w.flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "held back\n", string(data))

	require.True(t, w.write([]byte("closed out\n")))
	require.NoError(t, w.close())

	// close flushes the remainder
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "held back\nclosed out\n", string(data))
}

// A close racing an in-progress write must serialize against it: the write
// either completes against the open buffer or observes the closed writer and
// reports false. Run with -race to verify.
func TestRawWriterConcurrentWriteAndClose(t *testing.T) {
	cfg := &Config{Dir: t.TempDir(), Basename: "w", BufferSize: 4096, Level: "debug"}
	w, err := openRawWriter(cfg, filepath.Join(cfg.Dir, "w.log"))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			if !w.write([]byte("spinning\n")) {
				return
			}
		}
	}()

	require.NoError(t, w.close())
	<-done

	assert.False(t, w.write([]byte("too late\n")))
	w.flush()
}

func TestRawWriterAfterClose(t *testing.T) {
	cfg := &Config{Dir: t.TempDir(), Basename: "w", Level: "debug"}
	w, err := openRawWriter(cfg, filepath.Join(cfg.Dir, "w.log"))
	require.NoError(t, err)

	require.NoError(t, w.close())
	assert.NoError(t, w.close(), "double close must be a no-op")

	assert.False(t, w.write([]byte("too late\n")))
	w.flush() // must not panic
}
