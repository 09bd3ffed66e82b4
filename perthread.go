package threadlog

// perThreadLog owns one goroutine's output file and formatting buffer.
// It is confined by construction: the registry hands it out only to the
// goroutine that created it, so log and flush need no synchronization.
// The drain path touches it only after the registry has been swapped out of
// the active cell.
type perThreadLog struct {
	identity string
	w        *rawWriter
	scratch  []byte
}

func newPerThreadLog(cfg *Config, id uint64) (*perThreadLog, error) {
	ident := identity(id)
	w, err := openRawWriter(cfg, cfg.filePath(ident))
	if err != nil {
		return nil, err
	}
	return &perThreadLog{
		identity: ident,
		w:        w,
		scratch:  make([]byte, 0, scratchBufSize),
	}, nil
}

func (p *perThreadLog) log(rec Record) bool {
	p.scratch = appendRecord(p.scratch[:0], rec)
	return p.w.write(p.scratch)
}

func (p *perThreadLog) flush() {
	p.w.flush()
}

func (p *perThreadLog) close() error {
	return p.w.close()
}
