package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brettlyne/freecellsolver/internal/card"
	"github.com/brettlyne/freecellsolver/internal/state"
)

func c(suit card.Suit, rank card.Rank) card.Card { return card.Card{Suit: suit, Rank: rank} }

func countDest(moves []Move, zone state.ZoneKind) int {
	n := 0
	for _, m := range moves {
		if m.DestZone == zone {
			n++
		}
	}
	return n
}

func TestGenerateEveryMoveIsLegal(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}
	s.Columns[1] = []card.Card{c(card.Hearts, 4)}

	moves := Generate(s, Options{})
	for _, m := range moves {
		assert.True(t, s.Accepts(m.DestZone, m.DestIndex, m.Card), "generated move must be legal: %+v", m)
	}
}

func TestGenerateAtMostOneNewStackMovePerCard(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}
	// columns 1..7 are all empty.

	moves := movesForCard(s, state.ZoneStack, 0, c(card.Spades, 5))
	newStackCount := 0
	for _, m := range moves {
		if m.DestZone == state.ZoneStack && m.isNewStack() {
			newStackCount++
		}
	}
	assert.Equal(t, 1, newStackCount, "spec invariant: a single card generates at most one newstack move")
}

func TestGenerateSkipsSourceColumnAsDestination(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 6), c(card.Hearts, 5)}

	moves := movesForCard(s, state.ZoneStack, 0, c(card.Hearts, 5))
	for _, m := range moves {
		if m.DestZone == state.ZoneStack {
			assert.NotEqual(t, 0, m.DestIndex, "must not generate a move back onto its own source column")
		}
	}
}

func TestGenerateOneFreeCellMoveWhenAnyAreEmpty(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}

	moves := movesForCard(s, state.ZoneStack, 0, c(card.Spades, 5))
	assert.Equal(t, 1, countDest(moves, state.ZoneFreeCell))
}

func TestGenerateNoFreeCellMoveFromFreeCellSource(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	_ = s.Place(state.ZoneFreeCell, 0, c(card.Spades, 5))

	moves := movesForCard(s, state.ZoneFreeCell, 0, c(card.Spades, 5))
	assert.Equal(t, 0, countDest(moves, state.ZoneFreeCell))
}

func TestGenerateFoundationMoveForNextRank(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	_ = s.Place(state.ZoneFoundation, 0, c(card.Hearts, 1))
	s.Columns[0] = []card.Card{c(card.Hearts, 2)}

	moves := movesForCard(s, state.ZoneStack, 0, c(card.Hearts, 2))
	assert.Equal(t, 1, countDest(moves, state.ZoneFoundation))
}

func TestGenerateCollapsesAceToSingleLowestUnclaimedFoundation(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Hearts, 1)}
	// All four foundation slots are unclaimed, so every one of them
	// would accept the Ace if the generator didn't collapse them.

	moves := movesForCard(s, state.ZoneStack, 0, c(card.Hearts, 1))
	assert.Equal(t, 1, countDest(moves, state.ZoneFoundation))
	for _, m := range moves {
		if m.DestZone == state.ZoneFoundation {
			assert.Equal(t, 0, m.DestIndex, "lowest-indexed unclaimed slot")
		}
	}
}

func TestForceFoundationPriorityFiltersToFoundationMovesOnly(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	_ = s.Place(state.ZoneFoundation, 0, c(card.Hearts, 1))
	s.Columns[0] = []card.Card{c(card.Hearts, 2)}
	s.Columns[1] = []card.Card{c(card.Clubs, 7)} // unrelated move available too.

	moves := Generate(s, Options{ForceFoundationPriority: true})
	for _, m := range moves {
		assert.Equal(t, state.ZoneFoundation, m.DestZone)
	}
	assert.NotEmpty(t, moves)
}

func TestForceFoundationPriorityNoOpWhenNoFoundationMoveExists(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Clubs, 7)}

	withFlag := Generate(s, Options{ForceFoundationPriority: true})
	without := Generate(s, Options{})
	assert.Equal(t, len(without), len(withFlag))
}

func TestMoveStringForms(t *testing.T) {
	top := c(card.Spades, 6)
	cases := []struct {
		m    Move
		want string
	}{
		{Move{Card: c(card.Hearts, 1), DestZone: state.ZoneFoundation}, "source H1"},
		{Move{Card: c(card.Hearts, 5), DestZone: state.ZoneFreeCell}, "freecell H5"},
		{Move{Card: c(card.Hearts, 5), SourceZone: state.ZoneStack, DestZone: state.ZoneStack, destTop: top}, "stack H5 S6"},
		{Move{Card: c(card.Hearts, 5), SourceZone: state.ZoneStack, DestZone: state.ZoneStack}, "newstack H5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.m.String())
	}
}
