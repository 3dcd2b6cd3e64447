package commands

// LevelState records, per depth, whether the entry being processed at that depth
// is the last one of its parent listing. Index depth-1 belongs to depth.
// It grows as deeper levels are entered and is never shrunk within one root.
type LevelState struct {
	levels []bool
}

// NewLevelState returns a state sized for the children of a root.
func NewLevelState() *LevelState {
	return &LevelState{levels: make([]bool, 1)}
}

// Set overwrites the flag of depth.
func (state *LevelState) Set(depth int, isLast bool) {
	state.EnsureDepth(depth)
	state.levels[depth-1] = isLast
}

// EnsureDepth grows the state so that depth has a slot; new slots start false.
func (state *LevelState) EnsureDepth(depth int) {
	for len(state.levels) < depth {
		state.levels = append(state.levels, false)
	}
}

// Levels exposes the flags for rendering. Callers must not modify the slice.
func (state *LevelState) Levels() []bool {
	return state.levels
}
