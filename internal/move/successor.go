package move

import "github.com/brettlyne/freecellsolver/internal/state"

// Successor materializes the state that results from applying m to s:
// a deep copy of s with m applied. If the result is equivalent to s
// under eq, the move is a no-op — normal moves cannot produce equal
// states, so this guard defends against degenerate move-generator bugs —
// and Successor reports ok=false.
func Successor(s state.GameState, m Move, eq state.Equivalence) (result state.GameState, ok bool) {
	next := s.Clone()

	c, err := next.Remove(m.SourceZone, m.SourceIndex)
	if err != nil {
		return state.GameState{}, false
	}
	if c != m.Card {
		return state.GameState{}, false
	}
	if !next.Accepts(m.DestZone, m.DestIndex, c) {
		return state.GameState{}, false
	}
	if err := next.Place(m.DestZone, m.DestIndex, c); err != nil {
		return state.GameState{}, false
	}

	if next.Equal(s, eq) {
		return state.GameState{}, false
	}
	return next, true
}
