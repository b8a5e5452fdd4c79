// Package state implements the FreeCell-family game state: the zone
// containers (tableau columns, free cells, foundations), their legality
// predicates, the aggregate GameState, move application, and the two
// closed-set equivalence relations with their fingerprinting.
package state

import (
	"bytes"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/brettlyne/freecellsolver/internal/card"
)

const (
	NumColumns     = 8
	NumFreeCells   = 4
	NumFoundations = 4
)

// GameState is the fixed-shape tuple: 8 tableau columns, 4 free cells,
// 4 foundation piles, plus the observed maximum rank and the active
// stacking rule. MaxRank and Rule are carried on the state itself
// rather than as package globals.
type GameState struct {
	Columns     [NumColumns][]card.Card
	FreeCells   [NumFreeCells]freeCell
	Foundations [NumFoundations]foundation
	MaxRank     card.Rank
	Rule        StackingRule
}

// New builds an empty GameState ready to be dealt into, for the given
// observed maximum rank and stacking rule.
func New(maxRank card.Rank, rule StackingRule) GameState {
	return GameState{MaxRank: maxRank, Rule: rule}
}

// Clone returns a deep copy: every column's backing array is copied so
// that mutating the clone never aliases the parent.
func (s GameState) Clone() GameState {
	var out GameState
	out.FreeCells = s.FreeCells
	out.Foundations = s.Foundations
	out.MaxRank = s.MaxRank
	out.Rule = s.Rule
	for i := range s.Columns {
		if len(s.Columns[i]) == 0 {
			continue
		}
		out.Columns[i] = append([]card.Card(nil), s.Columns[i]...)
	}
	return out
}

// ColumnTop returns the top card of column i and whether the column is
// non-empty.
func (s GameState) ColumnTop(i int) (card.Card, bool) {
	col := s.Columns[i]
	if len(col) == 0 {
		return card.Card{}, false
	}
	return col[len(col)-1], true
}

// ColumnEmpty reports whether column i holds no cards.
func (s GameState) ColumnEmpty(i int) bool { return len(s.Columns[i]) == 0 }

// ColumnAccepts reports whether c may be placed on top of non-empty
// column i. It always returns false for an empty column — placing onto
// an empty column is the distinct "newstack" move kind.
func (s GameState) ColumnAccepts(i int, c card.Card) bool {
	top, ok := s.ColumnTop(i)
	if !ok {
		return false
	}
	return stackAccepts(s.Rule, top, c)
}

// FreeCellEmpty reports whether free cell i holds no card.
func (s GameState) FreeCellEmpty(i int) bool { return !s.FreeCells[i].present }

// FreeCellCard returns the card held in free cell i, if any.
func (s GameState) FreeCellCard(i int) (card.Card, bool) {
	fc := s.FreeCells[i]
	return fc.card, fc.present
}

// FoundationAccepts reports whether c may be placed on foundation i.
func (s GameState) FoundationAccepts(i int, c card.Card) bool {
	return s.Foundations[i].accepts(c)
}

// FoundationTop returns the top card of foundation i, if any, and
// whether the slot has been claimed by a suit at all.
func (s GameState) FoundationTop(i int) (card.Card, bool) {
	f := s.Foundations[i]
	if !f.claimed || f.count == 0 {
		return card.Card{}, false
	}
	return card.Card{Suit: f.suit, Rank: f.count}, true
}

// removeColumnTop pops and returns the top card of column i. It panics
// if the column is empty — callers must only call it after confirming
// the move's source card matches the column's top.
func (s *GameState) removeColumnTop(i int) card.Card {
	col := s.Columns[i]
	c := col[len(col)-1]
	s.Columns[i] = col[:len(col)-1]
	return c
}

func (s *GameState) pushColumn(i int, c card.Card) { s.Columns[i] = append(s.Columns[i], c) }

func (s *GameState) removeFreeCell(i int) card.Card {
	c := s.FreeCells[i].card
	s.FreeCells[i] = freeCell{}
	return c
}

func (s *GameState) pushFreeCell(i int, c card.Card) { s.FreeCells[i] = freeCell{card: c, present: true} }

func (s *GameState) pushFoundation(i int, c card.Card) {
	s.Foundations[i] = foundation{suit: c.Suit, count: c.Rank, claimed: true}
}

// Remove takes the card out of the top of the given source zone,
// returning it. The caller must have already validated that the zone's
// top (or sole card, for a free cell) is in fact the move's card.
func (s *GameState) Remove(zone ZoneKind, index int) (card.Card, error) {
	switch zone {
	case ZoneStack:
		if s.ColumnEmpty(index) {
			return card.Card{}, errors.Errorf("remove from empty column %d", index)
		}
		return s.removeColumnTop(index), nil
	case ZoneFreeCell:
		if s.FreeCellEmpty(index) {
			return card.Card{}, errors.Errorf("remove from empty free cell %d", index)
		}
		return s.removeFreeCell(index), nil
	case ZoneFoundation:
		return card.Card{}, errors.New("foundations are never a move source")
	default:
		return card.Card{}, errors.Errorf("unknown zone kind %d", zone)
	}
}

// Place pushes c onto the given destination zone without re-checking
// legality — the caller (package move's successor function) must only
// call Place after confirming the destination Accepts c.
func (s *GameState) Place(zone ZoneKind, index int, c card.Card) error {
	switch zone {
	case ZoneStack:
		s.pushColumn(index, c)
	case ZoneFreeCell:
		s.pushFreeCell(index, c)
	case ZoneFoundation:
		s.pushFoundation(index, c)
	default:
		return errors.Errorf("unknown zone kind %d", zone)
	}
	return nil
}

// Accepts reports whether the destination zone/index currently accepts
// c, dispatching to the zone-specific predicate. An empty column accepts
// any card (the "newstack" move kind); a non-empty one defers to
// ColumnAccepts.
func (s GameState) Accepts(zone ZoneKind, index int, c card.Card) bool {
	switch zone {
	case ZoneStack:
		return s.ColumnEmpty(index) || s.ColumnAccepts(index, c)
	case ZoneFreeCell:
		return s.FreeCellEmpty(index)
	case ZoneFoundation:
		return s.FoundationAccepts(index, c)
	default:
		return false
	}
}

// IsGoal reports whether every foundation holds exactly MaxRank cards
// and every tableau column and free cell is empty.
func (s GameState) IsGoal() bool {
	for _, f := range s.Foundations {
		if !f.claimed || f.count != s.MaxRank {
			return false
		}
	}
	for i := range s.Columns {
		if !s.ColumnEmpty(i) {
			return false
		}
	}
	for i := range s.FreeCells {
		if !s.FreeCellEmpty(i) {
			return false
		}
	}
	return true
}

// CardCounts returns the number of cards currently in the tableau, the
// number in the free cells, and the number of non-empty tableau columns
// — used by the heuristic (package search).
func (s GameState) CardCounts() (inTableau, inFreeCells, nonEmptyColumns int) {
	for i := range s.Columns {
		n := len(s.Columns[i])
		inTableau += n
		if n > 0 {
			nonEmptyColumns++
		}
	}
	for _, fc := range s.FreeCells {
		if fc.present {
			inFreeCells++
		}
	}
	return
}

// sentinel is the byte placed for an empty slot in the canonical
// encoding — a value no valid card byte (suit<<4|rank, rank 1..13) can
// produce.
const sentinel = 0xFF

func encodeCard(c card.Card) byte { return byte(c.Suit)<<4 | byte(c.Rank) }

// EncodeStrict returns the canonical, positionally-ordered byte
// encoding used by the strict equivalence relation: the i-th slot of
// each zone kind is fixed-width and order-preserving, so two states
// encode identically iff they are positionally identical.
func (s GameState) EncodeStrict() []byte {
	buf := make([]byte, 0, NumColumns*14+NumFreeCells+NumFoundations)
	for i := range s.Columns {
		for _, c := range s.Columns[i] {
			buf = append(buf, encodeCard(c))
		}
		buf = append(buf, sentinel) // column delimiter
	}
	for _, fc := range s.FreeCells {
		if fc.present {
			buf = append(buf, encodeCard(fc.card))
		} else {
			buf = append(buf, sentinel)
		}
	}
	for _, f := range s.Foundations {
		if f.claimed {
			buf = append(buf, byte(f.suit)<<4|byte(f.count))
		} else {
			buf = append(buf, sentinel)
		}
	}
	return buf
}

// EncodeLoose returns the permutation-insensitive byte encoding used by
// the loose equivalence relation: only the
// accessible (top) card of each zone matters, and each zone kind's
// accessible cards are sorted before encoding so that two states which
// differ only by a permutation of interchangeable zones encode
// identically.
func (s GameState) EncodeLoose() []byte {
	tops := make([]byte, 0, NumColumns)
	for i := range s.Columns {
		if top, ok := s.ColumnTop(i); ok {
			tops = append(tops, encodeCard(top))
		} else {
			tops = append(tops, sentinel)
		}
	}
	sort.Slice(tops, func(i, j int) bool { return tops[i] < tops[j] })

	cells := make([]byte, 0, NumFreeCells)
	for _, fc := range s.FreeCells {
		if fc.present {
			cells = append(cells, encodeCard(fc.card))
		} else {
			cells = append(cells, sentinel)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })

	founds := make([]byte, 0, NumFoundations)
	for _, f := range s.Foundations {
		if f.claimed {
			founds = append(founds, byte(f.suit)<<4|byte(f.count))
		} else {
			founds = append(founds, sentinel)
		}
	}
	sort.Slice(founds, func(i, j int) bool { return founds[i] < founds[j] })

	buf := make([]byte, 0, len(tops)+len(cells)+len(founds))
	buf = append(buf, tops...)
	buf = append(buf, cells...)
	buf = append(buf, founds...)
	return buf
}

// Fingerprint is the closed-set membership key: an xxhash of a state's
// canonical encoding. Equivalence selects which encoding backs the
// hash.
type Fingerprint uint64

// FingerprintStrict hashes EncodeStrict.
func (s GameState) FingerprintStrict() Fingerprint {
	return Fingerprint(xxhash.Sum64(s.EncodeStrict()))
}

// FingerprintLoose hashes EncodeLoose.
func (s GameState) FingerprintLoose() Fingerprint {
	return Fingerprint(xxhash.Sum64(s.EncodeLoose()))
}

// EqualStrict implements ≡_s: positionally identical zone contents.
func (s GameState) EqualStrict(other GameState) bool {
	return bytes.Equal(s.EncodeStrict(), other.EncodeStrict())
}

// EqualLoose implements ≡_L: the multiset of each zone kind's
// accessible cards is equal. Strictly weaker than EqualStrict — see
// the pruning hazard this implies.
func (s GameState) EqualLoose(other GameState) bool {
	return bytes.Equal(s.EncodeLoose(), other.EncodeLoose())
}

// Equivalence selects which relation the closed set uses for
// membership. Strict is the default; Loose is an opt-in speed mode
// that trades away some solution-path fidelity for more pruning.
type Equivalence uint8

const (
	Strict Equivalence = iota
	Loose
)

// Fingerprint hashes s under the selected equivalence.
func (s GameState) Fingerprint(eq Equivalence) Fingerprint {
	if eq == Loose {
		return s.FingerprintLoose()
	}
	return s.FingerprintStrict()
}

// Equal compares s and other under the selected equivalence.
func (s GameState) Equal(other GameState, eq Equivalence) bool {
	if eq == Loose {
		return s.EqualLoose(other)
	}
	return s.EqualStrict(other)
}

// TotalCards sums every card currently placed anywhere in s: tableau
// columns, free cells and foundations.
func (s GameState) TotalCards() int {
	total := 0
	for i := range s.Columns {
		total += len(s.Columns[i])
	}
	for _, fc := range s.FreeCells {
		if fc.present {
			total++
		}
	}
	for _, f := range s.Foundations {
		if f.claimed {
			total += int(f.count)
		}
	}
	return total
}
