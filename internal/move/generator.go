package move

import (
	"github.com/brettlyne/freecellsolver/internal/card"
	"github.com/brettlyne/freecellsolver/internal/state"
)

// Options configures move generation behavior left as configurable
// flags rather than fixed rules.
type Options struct {
	// ForceFoundationPriority implements an optional BFS pruning
	// heuristic: when any foundation move exists among the successors,
	// only foundation moves are returned. Off by default — it is unsound
	// for A* and should only ever be set by the BFS engine.
	ForceFoundationPriority bool
}

// Generate returns every legal single-card move from s, in a stable
// order: sources {stacks 0..7, free cells 0..3}, destinations
// {foundations, free cells, stacks}.
func Generate(s state.GameState, opts Options) []Move {
	moves := make([]Move, 0, 16)

	// Column sources.
	for col := 0; col < state.NumColumns; col++ {
		top, ok := s.ColumnTop(col)
		if !ok {
			continue
		}
		moves = append(moves, movesForCard(s, state.ZoneStack, col, top)...)
	}
	// Free-cell sources.
	for cell := 0; cell < state.NumFreeCells; cell++ {
		c, ok := s.FreeCellCard(cell)
		if !ok {
			continue
		}
		moves = append(moves, movesForCard(s, state.ZoneFreeCell, cell, c)...)
	}

	if opts.ForceFoundationPriority {
		var foundationOnly []Move
		for _, m := range moves {
			if m.DestZone == state.ZoneFoundation {
				foundationOnly = append(foundationOnly, m)
			}
		}
		if len(foundationOnly) > 0 {
			return foundationOnly
		}
	}

	return moves
}

// movesForCard enumerates every legal destination for the card c sitting
// at the top of (srcZone, srcIndex).
func movesForCard(s state.GameState, srcZone state.ZoneKind, srcIndex int, c card.Card) []Move {
	var moves []Move

	// 1. Foundations: one move per accepting slot, except an Ace facing
	// several unclaimed slots — those are interchangeable, so only the
	// lowest-indexed one is emitted (mirrors the newstack collapse below).
	for f := 0; f < state.NumFoundations; f++ {
		if s.FoundationAccepts(f, c) {
			moves = append(moves, Move{
				Card: c, SourceZone: srcZone, SourceIndex: srcIndex,
				DestZone: state.ZoneFoundation, DestIndex: f,
			})
			if c.Rank == 1 {
				break
			}
		}
	}

	// 2. Free cells: only from tableau sources (free-cell-to-free-cell
	// moves are legal but useless busywork, so the generator never
	// emits them).
	if srcZone == state.ZoneStack {
		for fc := 0; fc < state.NumFreeCells; fc++ {
			if s.FreeCellEmpty(fc) {
				moves = append(moves, Move{
					Card: c, SourceZone: srcZone, SourceIndex: srcIndex,
					DestZone: state.ZoneFreeCell, DestIndex: fc,
				})
				break // any empty free cell is interchangeable; one move suffices.
			}
		}
	}

	// 3 & 4. Tableau columns: non-empty accepting columns, plus at most
	// one "newstack" move targeting the lowest-indexed empty column.
	newStackEmitted := false
	for col := 0; col < state.NumColumns; col++ {
		if srcZone == state.ZoneStack && col == srcIndex {
			continue
		}
		if s.ColumnEmpty(col) {
			if !newStackEmitted {
				moves = append(moves, Move{
					Card: c, SourceZone: srcZone, SourceIndex: srcIndex,
					DestZone: state.ZoneStack, DestIndex: col,
				})
				newStackEmitted = true
			}
			continue
		}
		if s.ColumnAccepts(col, c) {
			top, _ := s.ColumnTop(col)
			moves = append(moves, Move{
				Card: c, SourceZone: srcZone, SourceIndex: srcIndex,
				DestZone: state.ZoneStack, DestIndex: col, destTop: top,
			})
		}
	}

	return moves
}
