// Package filesystem lists directories and classifies paths on top of afero.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/temirov/arbol/internal/types"
)

const (
	// CurrentDirectoryName is the self entry of a POSIX listing.
	CurrentDirectoryName = "."
	// ParentDirectoryName is the parent entry of a POSIX listing.
	ParentDirectoryName = ".."

	errorOpenDirectoryFormat = "open %s: %w"
	errorReadNamesFormat     = "read names of %s: %w"
)

// ErrList marks every failure to enumerate a directory.
var ErrList = errors.New("list directory")

// DirectoryReader lists the entry names of one directory.
type DirectoryReader interface {
	ReadNames(path string) ([]string, error)
}

// MetadataProber classifies a path.
type MetadataProber interface {
	Probe(path string) types.EntryKind
}

// Service implements DirectoryReader and MetadataProber for an afero filesystem.
type Service struct {
	fileSystem afero.Fs
}

// NewService builds a Service over the provided filesystem.
// Listings include "." and ".." the way POSIX readdir reports them.
func NewService(fileSystem afero.Fs) *Service {
	return &Service{fileSystem: fileSystem}
}

// NewOSService builds a Service over the host filesystem.
func NewOSService() *Service {
	return NewService(afero.NewOsFs())
}

// ReadNames returns the names in path sorted in ascending byte order.
func (service *Service) ReadNames(path string) ([]string, error) {
	directory, openError := service.fileSystem.Open(path)
	if openError != nil {
		return nil, listError(fmt.Errorf(errorOpenDirectoryFormat, path, openError))
	}
	defer directory.Close()

	names, readError := directory.Readdirnames(-1)
	if readError != nil {
		return nil, listError(fmt.Errorf(errorReadNamesFormat, path, readError))
	}
	names = append(names, CurrentDirectoryName, ParentDirectoryName)
	sort.Strings(names)
	return names, nil
}

// Probe stats path, following symbolic links.
func (service *Service) Probe(path string) types.EntryKind {
	info, statError := service.fileSystem.Stat(path)
	if statError != nil {
		return types.EntryKindError
	}
	return kindOf(info)
}

func kindOf(info os.FileInfo) types.EntryKind {
	mode := info.Mode()
	switch {
	case mode.IsDir():
		return types.EntryKindDirectory
	case mode.IsRegular():
		return types.EntryKindRegular
	default:
		return types.EntryKindOther
	}
}

func listError(cause error) error {
	return fmt.Errorf("%w: %w", ErrList, cause)
}

var (
	_ DirectoryReader = (*Service)(nil)
	_ MetadataProber  = (*Service)(nil)
)
