// Package commands contains the directory traversal behind the tree output.
package commands

import (
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/arbol/internal/output"
	"github.com/temirov/arbol/internal/services/filesystem"
	"github.com/temirov/arbol/internal/types"
	"github.com/temirov/arbol/internal/utils"
)

const (
	hiddenEntryPrefix = "."

	logListFailed    = "unable to list directory"
	logEmptyListing  = "directory listing is empty"
	logPathField     = "path"
	logKindField     = "kind"
	logDepthField    = "depth"
	logEntriesField  = "entries"
	logDirectoryDone = "directory traversed"
)

// Sink receives the rendered lines of one root.
type Sink interface {
	Entry(line string) error
	Diagnostic(path string) error
}

// TreeWalkerOptions configures a TreeWalker.
type TreeWalkerOptions struct {
	Reader filesystem.DirectoryReader
	Prober filesystem.MetadataProber
	Config types.TraversalConfig
	Logger *zap.Logger
}

// TreeWalker renders directory hierarchies depth-first.
type TreeWalker struct {
	reader filesystem.DirectoryReader
	prober filesystem.MetadataProber
	config types.TraversalConfig
	logger *zap.Logger
}

// NewTreeWalker builds a TreeWalker. Missing reader or prober default to the host filesystem.
func NewTreeWalker(options TreeWalkerOptions) *TreeWalker {
	walker := &TreeWalker{
		reader: options.Reader,
		prober: options.Prober,
		config: options.Config,
		logger: options.Logger,
	}
	if walker.reader == nil || walker.prober == nil {
		service := filesystem.NewOSService()
		if walker.reader == nil {
			walker.reader = service
		}
		if walker.prober == nil {
			walker.prober = service
		}
	}
	if walker.logger == nil {
		walker.logger = zap.NewNop()
	}
	return walker
}

// Walk renders every entry below root into sink and returns the root's counters.
// The root itself counts as one directory. Listing failures are reported to the
// sink as diagnostics; only sink failures are returned.
func (walker *TreeWalker) Walk(root string, sink Sink) (types.TraversalCounters, error) {
	levels := NewLevelState()
	counters, _, err := walker.traverse(utils.EnsureTrailingSeparator(root), 1, levels, sink)
	return types.TraversalCounters{Directories: 1}.Add(counters), err
}

// traverse lists path, rendering accepted entries at depth and recursing into directories.
// It returns the counters accumulated below path and the number of raw entries listed.
func (walker *TreeWalker) traverse(path string, depth int, levels *LevelState, sink Sink) (types.TraversalCounters, int, error) {
	var counters types.TraversalCounters

	names, listError := walker.reader.ReadNames(path)
	if listError != nil || len(names) == 0 {
		kind := walker.prober.Probe(path)
		walker.logListing(path, kind, listError)
		if kind != types.EntryKindRegular {
			if err := sink.Diagnostic(path); err != nil {
				return counters, 0, err
			}
		}
	}

	total := len(names)
	for index, name := range names {
		isLast := index == total-1
		levels.Set(depth, isLast)

		if name == filesystem.CurrentDirectoryName || name == filesystem.ParentDirectoryName {
			continue
		}
		if !walker.config.IncludeHidden && strings.HasPrefix(name, hiddenEntryPrefix) {
			continue
		}

		entry := types.DirEntry{Name: name, FullPath: path + name}
		entry.Kind = walker.prober.Probe(entry.FullPath)

		if entry.IsDirectory() {
			if depth >= walker.config.MaxDepth {
				continue
			}
			if err := walker.render(sink, entry.Name, depth, levels, isLast); err != nil {
				return counters, index, err
			}
			counters.Directories++
			levels.EnsureDepth(depth + 1)
			childCounters, _, err := walker.traverse(utils.EnsureTrailingSeparator(entry.FullPath), depth+1, levels, sink)
			counters = counters.Add(childCounters)
			if err != nil {
				return counters, index, err
			}
			continue
		}

		if err := walker.render(sink, entry.Name, depth, levels, isLast); err != nil {
			return counters, index, err
		}
		counters.Files++
	}

	walker.logger.Debug(logDirectoryDone, zap.String(logPathField, path), zap.Int(logDepthField, depth), zap.Int(logEntriesField, total))
	return counters, total, nil
}

func (walker *TreeWalker) render(sink Sink, name string, depth int, levels *LevelState, isLast bool) error {
	return sink.Entry(output.FormatEntryLine(name, depth, levels.Levels(), walker.config.TabWidth, isLast))
}

func (walker *TreeWalker) logListing(path string, kind types.EntryKind, listError error) {
	if listError != nil {
		walker.logger.Debug(logListFailed, zap.String(logPathField, path), zap.Stringer(logKindField, kind), zap.Error(listError))
		return
	}
	walker.logger.Debug(logEmptyListing, zap.String(logPathField, path), zap.Stringer(logKindField, kind))
}
