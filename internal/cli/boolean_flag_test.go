package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterSwitchFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		defaultValue      bool
		arguments         []string
		expected          bool
		expectedPositions []string
		expectError       bool
	}{
		{name: "default_off", arguments: []string{}, expected: false},
		{name: "default_on", defaultValue: true, arguments: []string{}, expected: true},
		{name: "bare_long_form", arguments: []string{"--feature"}, expected: true},
		{name: "bare_shorthand", arguments: []string{"-f"}, expected: true},
		{name: "equals_false", defaultValue: true, arguments: []string{"--feature=false"}, expected: false},
		{name: "equals_off_uppercase", defaultValue: true, arguments: []string{"--feature=OFF"}, expected: false},
		{name: "equals_one", arguments: []string{"--feature=1"}, expected: true},
		{name: "following_literal_stays_positional", arguments: []string{"--feature", "no"}, expected: true, expectedPositions: []string{"no"}},
		{name: "following_digit_stays_positional", arguments: []string{"--feature", "0", "src"}, expected: true, expectedPositions: []string{"0", "src"}},
		{name: "single_letter_rejected", arguments: []string{"--feature=y"}, expectError: true},
		{name: "unknown_literal_rejected", arguments: []string{"--feature=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "switch-test"}
			flagValue := !testCase.defaultValue
			registerSwitchFlag(command.Flags(), &flagValue, "feature", "f", testCase.defaultValue, "toggle feature behaviour")
			parseErr := command.ParseFlags(testCase.arguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
			positions := command.Flags().Args()
			if len(positions) != len(testCase.expectedPositions) {
				t.Fatalf("expected positional arguments %v, got %v", testCase.expectedPositions, positions)
			}
			for index := range positions {
				if positions[index] != testCase.expectedPositions[index] {
					t.Fatalf("expected positional arguments %v, got %v", testCase.expectedPositions, positions)
				}
			}
		})
	}
}

func TestRegisterSwitchFlagDefaultInHelp(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{Use: "switch-test"}
	var enabled bool
	registerSwitchFlag(command.Flags(), &enabled, "all", "a", false, "list hidden entries")
	flag := command.Flags().Lookup("all")
	if flag == nil {
		t.Fatalf("flag not registered")
	}
	if flag.DefValue != "false" || flag.NoOptDefVal != "true" || flag.Shorthand != "a" {
		t.Fatalf("unexpected flag definition %+v", flag)
	}
}
