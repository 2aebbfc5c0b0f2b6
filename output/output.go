// Package output renders busq results as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writer handles structured output. Results go to one stream and
// informational notes to another, so piped output stays parseable.
type Writer struct {
	encoder *json.Encoder
	notes   io.Writer
}

// Config holds output configuration.
type Config struct {
	// Compact drops indentation for context-limited consumers.
	Compact bool

	// Output receives results. Defaults to stdout.
	Output io.Writer

	// Notes receives informational messages. Defaults to stderr.
	Notes io.Writer
}

// New creates a new output Writer.
func New(cfg Config) *Writer {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Notes == nil {
		cfg.Notes = os.Stderr
	}

	enc := json.NewEncoder(cfg.Output)
	enc.SetEscapeHTML(false)
	if !cfg.Compact {
		enc.SetIndent("", "  ")
	}

	return &Writer{encoder: enc, notes: cfg.Notes}
}

// Write outputs a value as JSON.
func (w *Writer) Write(v any) error {
	return w.encoder.Encode(v)
}

// Notef prints an informational message to the notes stream.
func (w *Writer) Notef(format string, args ...any) {
	fmt.Fprintf(w.notes, format+"\n", args...)
}

// WriteError writes an error as JSON to stderr.
func WriteError(err error) {
	enc := json.NewEncoder(os.Stderr)
	enc.Encode(map[string]string{
		"error": err.Error(),
	})
}
