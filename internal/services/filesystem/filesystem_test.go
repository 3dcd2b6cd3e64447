package filesystem_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/temirov/arbol/internal/services/filesystem"
	"github.com/temirov/arbol/internal/types"
)

func newMemoryFileSystem(t *testing.T, files []string, directories []string) afero.Fs {
	t.Helper()
	fileSystem := afero.NewMemMapFs()
	for _, directory := range directories {
		if err := fileSystem.MkdirAll(directory, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", directory, err)
		}
	}
	for _, file := range files {
		if err := afero.WriteFile(fileSystem, file, []byte("data"), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
	return fileSystem
}

func TestReadNamesSortsByteOrder(t *testing.T) {
	fileSystem := newMemoryFileSystem(t,
		[]string{"/root/b.txt", "/root/B.txt", "/root/a.txt", "/root/-dash"},
		[]string{"/root/a_dir"},
	)

	names, err := filesystem.NewService(fileSystem).ReadNames("/root/")
	if err != nil {
		t.Fatalf("ReadNames error: %v", err)
	}
	expected := []string{"-dash", ".", "..", "B.txt", "a.txt", "a_dir", "b.txt"}
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
}

func TestReadNamesEmptyDirectoryReportsDotEntries(t *testing.T) {
	fileSystem := newMemoryFileSystem(t, nil, []string{"/empty"})
	names, err := filesystem.NewService(fileSystem).ReadNames("/empty")
	if err != nil {
		t.Fatalf("ReadNames error: %v", err)
	}
	if !reflect.DeepEqual(names, []string{".", ".."}) {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestReadNamesFailuresWrapListError(t *testing.T) {
	root := t.TempDir()
	regularFile := filepath.Join(root, "plain.txt")
	if err := os.WriteFile(regularFile, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	service := filesystem.NewOSService()
	for _, path := range []string{filepath.Join(root, "missing"), regularFile} {
		names, err := service.ReadNames(path)
		if err == nil {
			t.Fatalf("expected error for %s, got names %v", path, names)
		}
		if !errors.Is(err, filesystem.ErrList) {
			t.Fatalf("expected ErrList for %s, got %v", path, err)
		}
	}
}

func TestProbeClassifiesPaths(t *testing.T) {
	fileSystem := newMemoryFileSystem(t, []string{"/root/file.txt"}, []string{"/root/dir"})
	service := filesystem.NewService(fileSystem)

	testCases := []struct {
		path     string
		expected types.EntryKind
	}{
		{path: "/root/dir", expected: types.EntryKindDirectory},
		{path: "/root/dir/", expected: types.EntryKindDirectory},
		{path: "/root/file.txt", expected: types.EntryKindRegular},
		{path: "/root/missing", expected: types.EntryKindError},
	}
	for _, testCase := range testCases {
		if kind := service.Probe(testCase.path); kind != testCase.expected {
			t.Fatalf("probe %s: expected %v, got %v", testCase.path, testCase.expected, kind)
		}
	}
}

func TestProbeFollowsSymbolicLinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if kind := filesystem.NewOSService().Probe(link); kind != types.EntryKindDirectory {
		t.Fatalf("expected directory through symlink, got %v", kind)
	}
}
