package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// TraceWriter appends one gzip-compressed JSON line per sweep point, for
// offline inspection without re-running the sweep. The match command
// does not open a trace.
type TraceWriter struct {
	file *os.File
	gz   *gzip.Writer
	enc  *json.Encoder
}

// OpenTrace creates (or truncates) the gzip trace file at path.
func OpenTrace(path string) (*TraceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open trace %s: %w: %w", path, err, ErrLedgerUnavailable)
	}
	gz := gzip.NewWriter(f)

	return &TraceWriter{file: f, gz: gz, enc: json.NewEncoder(gz)}, nil
}

// Write appends one sweep point as a JSON line.
func (t *TraceWriter) Write(p SweepPoint) error {
	if err := t.enc.Encode(p); err != nil {
		return fmt.Errorf("ledger: trace write: %w: %w", err, ErrLedgerUnavailable)
	}

	return nil
}

// Close flushes and closes the gzip stream and underlying file.
func (t *TraceWriter) Close() error {
	if err := t.gz.Close(); err != nil {
		t.file.Close()

		return fmt.Errorf("ledger: closing trace gzip: %w", err)
	}

	return t.file.Close()
}
