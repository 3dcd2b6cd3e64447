// Package output renders traversal results in raw, json, or xml form.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/arbol/internal/types"
)

const (
	diagnosticLineFormat = "%s  [error opening dir]"
	summaryLineFormat    = "%d directories, %d files"

	errorUnsupportedFormat = "unsupported format %q"
)

// Renderer receives the lines of every root in order and writes them out.
// Begin and End bracket one root; Entry and Diagnostic arrive between them.
type Renderer interface {
	Begin(root string) error
	Entry(line string) error
	Diagnostic(path string) error
	End(counters types.TraversalCounters) error
	Flush() error
}

// NewRenderer returns the renderer for format writing to writer.
func NewRenderer(format string, writer io.Writer) (Renderer, error) {
	switch format {
	case types.FormatRaw:
		return NewRawRenderer(writer), nil
	case types.FormatJSON:
		return NewJSONRenderer(writer), nil
	case types.FormatXML:
		return NewXMLRenderer(writer), nil
	default:
		return nil, fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// FormatDiagnosticLine returns the line reported for a directory that could not be listed.
func FormatDiagnosticLine(path string) string {
	return fmt.Sprintf(diagnosticLineFormat, path)
}

// FormatSummaryLine returns the closing counter line of a root.
func FormatSummaryLine(counters types.TraversalCounters) string {
	return fmt.Sprintf(summaryLineFormat, counters.Directories, counters.Files)
}
