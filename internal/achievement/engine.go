package achievement

import (
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

// Snapshot is the read-only view a condition is evaluated against
type Snapshot struct {
	State  *State
	Roster []*hamster.Hamster
	Now    time.Time
}

// Alive counts living hamsters in the roster
func (s Snapshot) Alive() int {
	n := 0
	for _, h := range s.Roster {
		if !h.IsDead() {
			n++
		}
	}
	return n
}

// Engine evaluates achievement conditions
type Engine struct {
	defs []Definition
}

// NewEngine creates an engine with the built-in definitions
func NewEngine() *Engine {
	return NewEngineWith(DefaultDefinitions())
}

// NewEngineWith creates an engine with custom definitions
func NewEngineWith(defs []Definition) *Engine {
	return &Engine{defs: defs}
}

// Definitions returns the configured achievements
func (e *Engine) Definitions() []Definition {
	out := make([]Definition, len(e.defs))
	copy(out, e.defs)
	return out
}

// Lookup finds a definition by ID
func (e *Engine) Lookup(id string) (Definition, bool) {
	for _, d := range e.defs {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Evaluate records every achievement whose condition now holds and returns
// the ones unlocked by this call. Already-unlocked achievements are skipped,
// so each is returned exactly once. Crediting rewards is the caller's job.
func (e *Engine) Evaluate(state *State, roster []*hamster.Hamster, now time.Time) []Definition {
	snap := Snapshot{State: state, Roster: roster, Now: now}

	var unlocked []Definition
	for _, d := range e.defs {
		if state.Unlocked.Has(d.ID) || d.Condition == nil {
			continue
		}
		if d.Condition(snap) {
			state.Unlocked.Add(d.ID)
			unlocked = append(unlocked, d)
		}
	}
	return unlocked
}
