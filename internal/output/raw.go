package output

import (
	"fmt"
	"io"

	"github.com/temirov/arbol/internal/types"
)

type rawRenderer struct {
	stdout io.Writer
}

// NewRawRenderer writes every line to stdout as soon as it is produced.
func NewRawRenderer(stdout io.Writer) Renderer {
	return &rawRenderer{stdout: stdout}
}

func (renderer *rawRenderer) Begin(root string) error {
	return renderer.writeLine(root)
}

func (renderer *rawRenderer) Entry(line string) error {
	return renderer.writeLine(line)
}

func (renderer *rawRenderer) Diagnostic(path string) error {
	return renderer.writeLine(FormatDiagnosticLine(path))
}

func (renderer *rawRenderer) End(counters types.TraversalCounters) error {
	return renderer.writeLine(FormatSummaryLine(counters))
}

func (renderer *rawRenderer) Flush() error {
	return nil
}

func (renderer *rawRenderer) writeLine(line string) error {
	if renderer.stdout == nil {
		return nil
	}
	_, err := fmt.Fprintln(renderer.stdout, line)
	return err
}
