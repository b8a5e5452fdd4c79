// Package move implements the move record, the legal-move generator
// and the successor function.
package move

import (
	"fmt"

	"github.com/brettlyne/freecellsolver/internal/card"
	"github.com/brettlyne/freecellsolver/internal/state"
)

// Move is the record of a single-card transfer: the card being moved and
// its source and destination zones. String renders the textual name used
// by the output file format.
type Move struct {
	Card        card.Card
	SourceZone  state.ZoneKind
	SourceIndex int
	DestZone    state.ZoneKind
	DestIndex   int

	// destTop is the destination column's top card at the time the
	// move was generated, needed only to render the "stack <card>
	// <top>" textual form; it is not part of move identity.
	destTop card.Card
}

// String renders the canonical textual form:
//
//	freecell <Card>
//	stack <Card> <TopCardOfDest>
//	newstack <Card>
//	source <Card>
func (m Move) String() string {
	switch {
	case m.DestZone == state.ZoneFoundation:
		return fmt.Sprintf("source %s", m.Card)
	case m.DestZone == state.ZoneFreeCell:
		return fmt.Sprintf("freecell %s", m.Card)
	case m.DestZone == state.ZoneStack && m.isNewStack():
		return fmt.Sprintf("newstack %s", m.Card)
	default:
		return fmt.Sprintf("stack %s %s", m.Card, m.destTop)
	}
}

// isNewStack reports whether this move targets an empty column (the
// zero value of destTop never occurs for a real card, since rank 0 is
// invalid — so an unset destTop unambiguously means "no top card").
func (m Move) isNewStack() bool {
	return m.destTop == card.Card{}
}
