// Package persist holds the pipeline's output side: one file-backed
// listener per persisted record type, each writing
// "<posix-timestamp>, " + record.FormattedRecord() to its output file.
// Unlike the design it replaces, a Writer opens its file once and keeps
// the handle for its lifetime instead of opening and closing per record.
package persist

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cshen/tsyflow/internal/soa"
)

// Clock returns the current wall-clock time, injectable for deterministic
// tests.
type Clock func() time.Time

// Writer is a soa.Listener that appends every record it receives to an
// open file, logging and dropping the record on a write failure rather
// than aborting the pipeline — persistence is best-effort.
type Writer[V soa.Record] struct {
	file   *os.File
	now    Clock
	logger *slog.Logger
}

// NewWriter opens path in append mode, creating it if necessary, and
// returns a Writer that stamps every record with now().
func NewWriter[V soa.Record](path string, now Clock, logger *slog.Logger) (*Writer[V], error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	return &Writer[V]{file: f, now: now, logger: logger}, nil
}

func (w *Writer[V]) ProcessAdd(data V) {
	line := fmt.Sprintf("%d, %s\n", w.now().Unix(), data.FormattedRecord())
	if _, err := w.file.WriteString(line); err != nil {
		w.logger.Error("persistence write failed",
			slog.String("identifier", data.FormattedIdentifier()),
			slog.String("error", err.Error()))
	}
}

func (w *Writer[V]) ProcessRemove(V) {}
func (w *Writer[V]) ProcessUpdate(V) {}

// Close closes the underlying file. Callers should close every Writer on
// pipeline shutdown.
func (w *Writer[V]) Close() error {
	return w.file.Close()
}
