package commands

import (
	"reflect"
	"testing"
)

func TestLevelStateGrowsAndOverwrites(t *testing.T) {
	state := NewLevelState()
	if len(state.Levels()) != 1 {
		t.Fatalf("expected initial depth 1, got %d", len(state.Levels()))
	}

	state.Set(1, true)
	state.EnsureDepth(3)
	if !reflect.DeepEqual(state.Levels(), []bool{true, false, false}) {
		t.Fatalf("unexpected levels after growth: %v", state.Levels())
	}

	state.Set(3, true)
	state.Set(1, false)
	state.EnsureDepth(2)
	if !reflect.DeepEqual(state.Levels(), []bool{false, false, true}) {
		t.Fatalf("unexpected levels after overwrite: %v", state.Levels())
	}
	if len(state.Levels()) != 3 {
		t.Fatalf("state shrank to %d", len(state.Levels()))
	}
}
