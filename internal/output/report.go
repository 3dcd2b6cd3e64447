package output

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/temirov/arbol/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header
)

// ErrRootNotStarted reports an Entry, Diagnostic, or End call without a preceding Begin.
var ErrRootNotStarted = errors.New("entry received outside of a root")

type encodeReports func(reports []types.TreeReport) ([]byte, error)

// reportRenderer collects one TreeReport per root and encodes them all on Flush.
type reportRenderer struct {
	stdout  io.Writer
	encode  encodeReports
	reports []types.TreeReport
	current *types.TreeReport
}

// NewJSONRenderer encodes the collected reports as an indented JSON array.
func NewJSONRenderer(stdout io.Writer) Renderer {
	return &reportRenderer{stdout: stdout, encode: encodeJSONReports}
}

// NewXMLRenderer encodes the collected reports as an XML document.
func NewXMLRenderer(stdout io.Writer) Renderer {
	return &reportRenderer{stdout: stdout, encode: encodeXMLReports}
}

func (renderer *reportRenderer) Begin(root string) error {
	renderer.current = &types.TreeReport{Root: root, Lines: []string{}}
	return nil
}

func (renderer *reportRenderer) Entry(line string) error {
	if renderer.current == nil {
		return ErrRootNotStarted
	}
	renderer.current.Lines = append(renderer.current.Lines, line)
	return nil
}

func (renderer *reportRenderer) Diagnostic(path string) error {
	if renderer.current == nil {
		return ErrRootNotStarted
	}
	renderer.current.Lines = append(renderer.current.Lines, FormatDiagnosticLine(path))
	renderer.current.Errors = append(renderer.current.Errors, path)
	return nil
}

func (renderer *reportRenderer) End(counters types.TraversalCounters) error {
	if renderer.current == nil {
		return ErrRootNotStarted
	}
	renderer.current.Directories = counters.Directories
	renderer.current.Files = counters.Files
	renderer.reports = append(renderer.reports, *renderer.current)
	renderer.current = nil
	return nil
}

func (renderer *reportRenderer) Flush() error {
	if renderer.stdout == nil {
		return nil
	}
	reports := renderer.reports
	if reports == nil {
		reports = []types.TreeReport{}
	}
	encoded, encodeError := renderer.encode(reports)
	if encodeError != nil {
		return encodeError
	}
	_, writeError := fmt.Fprintln(renderer.stdout, string(encoded))
	return writeError
}

func encodeJSONReports(reports []types.TreeReport) ([]byte, error) {
	return json.MarshalIndent(reports, indentPrefix, indentSpacer)
}

func encodeXMLReports(reports []types.TreeReport) ([]byte, error) {
	wrapper := struct {
		XMLName xml.Name           `xml:"results"`
		Trees   []types.TreeReport `xml:"tree"`
	}{Trees: reports}
	encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return nil, xmlMarshalError
	}
	return append([]byte(xmlHeader), encoded...), nil
}
