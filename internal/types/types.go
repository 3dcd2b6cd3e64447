// Package types defines every cross‑package data structure used by the arbol CLI.
package types

import "encoding/xml"

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	// DefaultTabWidth is the number of columns used per indentation level.
	DefaultTabWidth = 4
	// MaximumLevelValue bounds both the tab width and the depth limit.
	MaximumLevelValue = 65535
	// DefaultMaxDepth leaves depth effectively unbounded.
	DefaultMaxDepth = MaximumLevelValue
)

// EntryKind classifies a path as reported by the metadata prober.
type EntryKind int

const (
	EntryKindError EntryKind = iota
	EntryKindDirectory
	EntryKindRegular
	EntryKindOther
)

// String returns the lowercase name of the kind.
func (kind EntryKind) String() string {
	switch kind {
	case EntryKindDirectory:
		return "directory"
	case EntryKindRegular:
		return "regular"
	case EntryKindOther:
		return "other"
	default:
		return "error"
	}
}

// TraversalConfig is the resolved, read-only configuration of one run.
type TraversalConfig struct {
	TabWidth      int
	MaxDepth      int
	IncludeHidden bool
}

// DefaultTraversalConfig returns the configuration used when nothing overrides it.
func DefaultTraversalConfig() TraversalConfig {
	return TraversalConfig{
		TabWidth:      DefaultTabWidth,
		MaxDepth:      DefaultMaxDepth,
		IncludeHidden: false,
	}
}

// TraversalCounters aggregates the directories and files accepted below a root.
type TraversalCounters struct {
	Directories int
	Files       int
}

// Add returns the element-wise sum of both counters.
func (counters TraversalCounters) Add(other TraversalCounters) TraversalCounters {
	return TraversalCounters{
		Directories: counters.Directories + other.Directories,
		Files:       counters.Files + other.Files,
	}
}

// DirEntry is one item of a directory listing.
type DirEntry struct {
	Name     string
	Kind     EntryKind
	FullPath string
}

// IsDirectory reports whether the entry resolved to a directory.
func (entry DirEntry) IsDirectory() bool {
	return entry.Kind == EntryKindDirectory
}

// TreeReport is the structured rendering of one root used by the json and xml formats.
type TreeReport struct {
	XMLName     xml.Name `json:"-" xml:"tree"`
	Root        string   `json:"root" xml:"root,attr"`
	Lines       []string `json:"lines" xml:"lines>line"`
	Errors      []string `json:"errors,omitempty" xml:"errors>path,omitempty"`
	Directories int      `json:"directories" xml:"directories,attr"`
	Files       int      `json:"files" xml:"files,attr"`
}
