// Package connector is the pipeline's input side: subscribe-only
// adapters that read a CSV file to EOF and dispatch each parsed line
// into its owning service, skipping and logging malformed or
// unresolvable records rather than aborting the subscription.
package connector

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cshen/tsyflow/internal/domain"
)

// splitCSVLine splits a comma-separated line into exactly want fields.
func splitCSVLine(line string, want int) ([]string, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}
	return fields, nil
}

// scanLines runs handle over every non-empty line of r, logging and
// skipping any line handle rejects. An I/O error reading r is fatal to
// the subscription and returned to the caller.
func scanLines(r io.Reader, logger *slog.Logger, source string, handle func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := handle(line); err != nil {
			recErr := &domain.RecordError{Line: line, Err: err}
			logger.Error("skipping malformed record",
				slog.String("source", source),
				slog.String("line", line),
				slog.String("error", recErr.Error()))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("connector: reading %s: %w", source, err)
	}
	return nil
}
