package output

import "strings"

const (
	verticalConnector   = "│"
	horizontalConnector = "─"
	cornerConnector     = "└"
	teeConnector        = "├"
	blankColumn         = " "
)

// FormatEntryLine renders one tree line for name at depth (1 for the children of a root).
// levels[i] reports whether the entry in progress at depth i+1 is the last of its listing;
// only ancestor levels are consulted. A tab width of 0 or 1 disables connector graphics.
func FormatEntryLine(name string, depth int, levels []bool, tabWidth int, isLast bool) string {
	if tabWidth <= 1 {
		return name
	}

	var builder strings.Builder
	for level := 0; level < depth-1; level++ {
		if level < len(levels) && !levels[level] {
			builder.WriteString(verticalConnector)
		} else {
			builder.WriteString(blankColumn)
		}
		builder.WriteString(strings.Repeat(blankColumn, tabWidth-1))
	}

	if isLast {
		builder.WriteString(cornerConnector)
	} else {
		builder.WriteString(teeConnector)
	}
	builder.WriteString(strings.Repeat(horizontalConnector, max(tabWidth-2, 0)))
	builder.WriteString(blankColumn)
	builder.WriteString(name)
	return builder.String()
}
