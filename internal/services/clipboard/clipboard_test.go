package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestCopyReportsUnsupportedPlatform(t *testing.T) {
	previous := clipboard.Unsupported
	clipboard.Unsupported = true
	t.Cleanup(func() { clipboard.Unsupported = previous })

	err := NewService().Copy("root/\n0 directories, 0 files\n")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
