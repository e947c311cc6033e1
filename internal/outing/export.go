package outing

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// ExportText renders one labelled line per record, joined by newlines.
func ExportText(records []Record) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, FormatLine(r))
	}
	return strings.Join(lines, "\n")
}

// FormatLine renders a single record in the export format.
func FormatLine(r Record) string {
	return fmt.Sprintf("Fecha: %s, Hora de salida: %s, Hora de regreso: %s, Motivo: %s",
		r.Date, r.Departure, r.Return, r.Reason)
}

// Sink accepts a finished text report.
type Sink interface {
	WriteText(text string) error
}

// ClipboardSink writes reports to the system clipboard.
type ClipboardSink struct{}

// WriteText copies text to the clipboard. A platform without clipboard support
// or a failing copy tool yields ErrSinkUnavailable.
func (ClipboardSink) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: clipboard not supported on this system", ErrSinkUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	return nil
}

// WriterSink writes reports to an io.Writer, followed by a newline.
type WriterSink struct {
	W io.Writer
}

// WriteText implements Sink.
func (s WriterSink) WriteText(text string) error {
	if s.W == nil {
		return fmt.Errorf("%w: no writer", ErrSinkUnavailable)
	}
	if _, err := io.WriteString(s.W, text+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	return nil
}
