// Package card implements the value-typed playing card primitives: suit,
// rank, color, and their printable/parseable forms.
package card

import (
	"fmt"

	"github.com/pkg/errors"
)

// Suit identifies one of the four standard suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Color is the stacking color of a suit: red or black.
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns the suit's color. Hearts and diamonds are red; clubs
// and spades are black.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Char is the canonical single-letter token used by the input/output
// file formats: S, H, D, C.
func (s Suit) Char() byte {
	switch s {
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	default:
		return '?'
	}
}

// ParseSuit converts a suit character back into a Suit.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'C', 'c':
		return Clubs, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'H', 'h':
		return Hearts, nil
	case 'S', 's':
		return Spades, nil
	default:
		return 0, errors.Errorf("unknown suit char %q", c)
	}
}

// Rank is a card rank, 1 (Ace) through the deal's observed maximum
// (canonically 13, King). The engine never hard-codes the maximum —
// see state.GameState.MaxRank.
type Rank uint8

// Card is a value-typed playing card: a (suit, rank) pair. Equality is
// structural (Go's built-in == is sufficient and is used throughout).
type Card struct {
	Suit Suit
	Rank Rank
}

// New builds a Card, returning an error if the rank is out of the
// representable range (1..maxRepresentableRank).
func New(suit Suit, rank Rank) (Card, error) {
	if rank < 1 || rank > maxRepresentableRank {
		return Card{}, errors.Errorf("rank %d out of range 1..%d", rank, maxRepresentableRank)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// maxRepresentableRank bounds the byte encoding used by
// state.EncodeStrict and state.EncodeLoose;
// it is a representation ceiling, not the deal's observed maximum rank.
const maxRepresentableRank = 13

// String renders the canonical <SuitChar><RankDigits> token, e.g. "S13",
// "H1", "D10".
func (c Card) String() string {
	return fmt.Sprintf("%c%d", c.Suit.Char(), c.Rank)
}

// Parse reads a single card token of the form <SuitChar><RankDigits>.
func Parse(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, errors.Errorf("malformed card token %q", token)
	}
	suit, err := ParseSuit(token[0])
	if err != nil {
		return Card{}, errors.Wrapf(err, "parsing card token %q", token)
	}
	rank := 0
	for _, d := range token[1:] {
		if d < '0' || d > '9' {
			return Card{}, errors.Errorf("malformed rank in card token %q", token)
		}
		rank = rank*10 + int(d-'0')
	}
	if rank < 1 || rank > maxRepresentableRank {
		return Card{}, errors.Errorf("rank out of range in card token %q", token)
	}
	return Card{Suit: suit, Rank: Rank(rank)}, nil
}
