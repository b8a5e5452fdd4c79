package state

import "github.com/brettlyne/freecellsolver/internal/card"

// ZoneKind identifies which kind of container a Move's source or
// destination addresses.
type ZoneKind uint8

const (
	ZoneStack ZoneKind = iota
	ZoneFreeCell
	ZoneFoundation
)

func (z ZoneKind) String() string {
	switch z {
	case ZoneStack:
		return "stack"
	case ZoneFreeCell:
		return "freecell"
	case ZoneFoundation:
		return "foundation"
	default:
		return "unknown"
	}
}

// StackingRule selects how a tableau column decides whether it accepts
// a card on top of its current top card. OppositeColor is the standard
// FreeCell rule and the default. AnySuitDifferent reproduces a looser,
// same-color-accepting rule for parity testing; it is never the default.
type StackingRule uint8

const (
	OppositeColor StackingRule = iota
	AnySuitDifferent
)

// stackAccepts reports whether card c may be placed on top of a
// non-empty column whose current top card is top. Empty columns never
// reach it — see GameState.ColumnAccepts and the distinct "newstack"
// move kind in package move.
func stackAccepts(rule StackingRule, top card.Card, c card.Card) bool {
	if top.Rank != c.Rank+1 {
		return false
	}
	switch rule {
	case AnySuitDifferent:
		return top.Suit != c.Suit
	default:
		return top.Suit.Color() != c.Suit.Color()
	}
}

// freeCell is a capacity-one holding slot: either empty or one card.
type freeCell struct {
	card    card.Card
	present bool
}

// foundation is a per-suit ascending pile. It starts unclaimed; the
// first Ace placed into it claims the slot for that card's suit.
type foundation struct {
	suit    card.Suit
	count   card.Rank // cards placed so far; 0 means empty.
	claimed bool
}

// accepts reports whether c may be placed on this foundation.
func (f foundation) accepts(c card.Card) bool {
	if !f.claimed {
		return c.Rank == 1
	}
	return f.suit == c.Suit && f.count == c.Rank-1
}
