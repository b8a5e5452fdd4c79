package search

import "github.com/brettlyne/freecellsolver/internal/state"

// Heuristic is the domain cost estimate:
//
//	h(s) = cards_remaining_in_tableau + cards_in_freecells − nonempty_tableau_columns
//
// Since nonempty_tableau_columns never exceeds cards_remaining_in_tableau,
// h(s) is at most the number of cards outside the foundations, each of
// which needs at least one more move, so h never overestimates. BestFS
// using it is a greedy heuristic search. A* using it is not guaranteed
// to return a shortest solution, because Run closes a state when it is
// first pushed and never reopens it for a cheaper path.
func Heuristic(s state.GameState) int {
	inTableau, inFreeCells, nonEmptyColumns := s.CardCounts()
	return inTableau + inFreeCells - nonEmptyColumns
}
