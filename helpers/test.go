package helpers

import (
	"fmt"
	"sync"
	"time"
)

// TestNow returns a fixed time (2026-10-17 12:00:00 UTC) for deterministic tests (recorded event timestamps, etc.).
//
// Called from tests (e.g. handlers/http_test, service/time_provider_test) when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
}

// RecordingLogger is a go-kit log.Logger that keeps every record in memory so tests can assert on log output
// (e.g. "exactly one warning"). Safe for concurrent use by worker goroutines.
type RecordingLogger struct {
	mu      sync.Mutex
	records []map[string]string
}

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Log stores keyvals as one record; values are rendered with fmt.Sprint (level values become "warn", "error", ...).
func (r *RecordingLogger) Log(keyvals ...any) error {
	rec := make(map[string]string, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		rec[fmt.Sprint(keyvals[i])] = fmt.Sprint(keyvals[i+1])
	}
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return nil
}

// Records returns a copy of all records logged so far.
func (r *RecordingLogger) Records() []map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]map[string]string, len(r.records))
	copy(out, r.records)
	return out
}

// AtLevel returns the records whose "level" key equals lvl.
func (r *RecordingLogger) AtLevel(lvl string) []map[string]string {
	var out []map[string]string
	for _, rec := range r.Records() {
		if rec["level"] == lvl {
			out = append(out, rec)
		}
	}
	return out
}
