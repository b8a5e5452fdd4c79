package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettlyne/freecellsolver/internal/card"
	"github.com/brettlyne/freecellsolver/internal/state"
)

func TestSuccessorAppliesMove(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}

	m := Move{Card: c(card.Spades, 5), SourceZone: state.ZoneStack, SourceIndex: 0, DestZone: state.ZoneFreeCell, DestIndex: 0}
	next, ok := Successor(s, m, state.Strict)
	require.True(t, ok)

	_, present := next.FreeCellCard(0)
	assert.True(t, present)
	assert.True(t, next.ColumnEmpty(0))
}

func TestSuccessorLeavesOriginalUntouched(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}

	m := Move{Card: c(card.Spades, 5), SourceZone: state.ZoneStack, SourceIndex: 0, DestZone: state.ZoneFreeCell, DestIndex: 0}
	_, ok := Successor(s, m, state.Strict)
	require.True(t, ok)

	top, present := s.ColumnTop(0)
	require.True(t, present)
	assert.Equal(t, c(card.Spades, 5), top)
}

func TestSuccessorRejectsCardMismatch(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}

	m := Move{Card: c(card.Hearts, 5), SourceZone: state.ZoneStack, SourceIndex: 0, DestZone: state.ZoneFreeCell, DestIndex: 0}
	_, ok := Successor(s, m, state.Strict)
	assert.False(t, ok)
}

func TestSuccessorRejectsIllegalDestination(t *testing.T) {
	s := state.New(13, state.OppositeColor)
	s.Columns[0] = []card.Card{c(card.Spades, 5)}
	s.Columns[1] = []card.Card{c(card.Spades, 9)}

	m := Move{Card: c(card.Spades, 5), SourceZone: state.ZoneStack, SourceIndex: 0, DestZone: state.ZoneStack, DestIndex: 1, destTop: c(card.Spades, 9)}
	_, ok := Successor(s, m, state.Strict)
	assert.False(t, ok)
}
