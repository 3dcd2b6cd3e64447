package output_test

import (
	"strings"
	"testing"

	"github.com/temirov/arbol/internal/output"
)

func TestFormatEntryLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		entry    string
		depth    int
		levels   []bool
		tabWidth int
		isLast   bool
		expected string
	}{
		{
			name:     "first level tee",
			entry:    "a_dir",
			depth:    1,
			levels:   []bool{false},
			tabWidth: 4,
			expected: "├── a_dir",
		},
		{
			name:     "first level corner",
			entry:    "b.txt",
			depth:    1,
			levels:   []bool{true},
			tabWidth: 4,
			isLast:   true,
			expected: "└── b.txt",
		},
		{
			name:     "open ancestor draws vertical bar",
			entry:    "c.txt",
			depth:    2,
			levels:   []bool{false, true},
			tabWidth: 4,
			isLast:   true,
			expected: "│   └── c.txt",
		},
		{
			name:     "closed ancestor draws gap",
			entry:    "c.txt",
			depth:    3,
			levels:   []bool{true, false, false},
			tabWidth: 4,
			expected: "    │   ├── c.txt",
		},
		{
			name:     "tab width two has no horizontal bars",
			entry:    "x",
			depth:    2,
			levels:   []bool{false, false},
			tabWidth: 2,
			expected: "│ ├ x",
		},
		{
			name:     "wide tab width",
			entry:    "x",
			depth:    2,
			levels:   []bool{false, true},
			tabWidth: 6,
			isLast:   true,
			expected: "│     └──── x",
		},
		{
			name:     "tab width one prints name only",
			entry:    "deep",
			depth:    5,
			levels:   []bool{false, false, false, false, false},
			tabWidth: 1,
			expected: "deep",
		},
		{
			name:     "tab width zero prints name only",
			entry:    "deep",
			depth:    2,
			levels:   []bool{false, true},
			tabWidth: 0,
			isLast:   true,
			expected: "deep",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			line := output.FormatEntryLine(testCase.entry, testCase.depth, testCase.levels, testCase.tabWidth, testCase.isLast)
			if line != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, line)
			}
		})
	}
}

func TestFormatEntryLineIsDeterministic(t *testing.T) {
	t.Parallel()

	levels := []bool{false, true, false}
	first := output.FormatEntryLine("name", 3, levels, 4, false)
	second := output.FormatEntryLine("name", 3, levels, 4, false)
	if first != second {
		t.Fatalf("expected identical output, got %q and %q", first, second)
	}
	if levels[0] || !levels[1] || levels[2] {
		t.Fatalf("level state was modified: %v", levels)
	}
}

func TestFormatEntryLineIndentWidth(t *testing.T) {
	t.Parallel()

	for tabWidth := 2; tabWidth <= 8; tabWidth++ {
		line := output.FormatEntryLine("n", 3, []bool{false, false, false}, tabWidth, false)
		runes := []rune(strings.TrimSuffix(line, " n"))
		if len(runes) != 3*tabWidth-1 {
			t.Fatalf("tab width %d: expected %d prefix runes, got %d in %q", tabWidth, 3*tabWidth-1, len(runes), line)
		}
	}
}
