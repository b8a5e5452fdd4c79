// Package dealio ingests a deal file into an initial state.GameState.
// This sits outside the search core, but is needed for a runnable tool.
package dealio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/brettlyne/freecellsolver/internal/card"
	"github.com/brettlyne/freecellsolver/internal/state"
)

// Mode selects how input lines map to tableau columns.
type Mode int

const (
	// Fixed is the canonical layout: exactly 8 lines, the first 4
	// holding 7 tokens each and the last 4 holding 6 tokens each
	// (standard FreeCell deal).
	Fixed Mode = iota
	// Loose tolerates an alternative mode where the i-th input line is
	// written verbatim into column i regardless of its length.
	Loose
)

// fixedColumnSizes is the canonical 7/7/7/7/6/6/6/6 layout.
var fixedColumnSizes = [state.NumColumns]int{7, 7, 7, 7, 6, 6, 6, 6}

// Parse reads a deal file and builds the initial GameState it
// describes, with stacking legality governed by rule. The returned
// state's MaxRank is the maximum rank observed across the deal — the
// engine must not hard-code 13.
func Parse(r io.Reader, mode Mode, rule state.StackingRule) (state.GameState, error) {
	lines, err := readLines(r)
	if err != nil {
		return state.GameState{}, err
	}
	if len(lines) != state.NumColumns {
		return state.GameState{}, errors.Errorf("malformed input: expected %d columns, got %d", state.NumColumns, len(lines))
	}

	var columns [state.NumColumns][]card.Card
	var multiErr error
	maxRank := card.Rank(0)
	seen := make(map[card.Card]bool)

	for i, line := range lines {
		tokens := strings.Fields(line)
		if mode == Fixed && len(tokens) != fixedColumnSizes[i] {
			multiErr = multierror.Append(multiErr,
				errors.Errorf("malformed input: column %d has %d cards, expected %d", i, len(tokens), fixedColumnSizes[i]))
			continue
		}
		col := make([]card.Card, 0, len(tokens))
		for _, tok := range tokens {
			c, err := card.Parse(tok)
			if err != nil {
				multiErr = multierror.Append(multiErr, errors.Wrapf(err, "column %d", i))
				continue
			}
			if seen[c] {
				multiErr = multierror.Append(multiErr, errors.Errorf("duplicate card %s in deal", c))
				continue
			}
			seen[c] = true
			if c.Rank > maxRank {
				maxRank = c.Rank
			}
			col = append(col, c)
		}
		columns[i] = col
	}
	if multiErr != nil {
		return state.GameState{}, multiErr
	}

	if err := checkComplete(seen, maxRank); err != nil {
		return state.GameState{}, err
	}

	s := state.New(maxRank, rule)
	s.Columns = columns
	return s, nil
}

// checkComplete verifies the deal's multiset invariant: every (suit,
// rank) pair for rank in 1..maxRank must
// appear exactly once.
func checkComplete(seen map[card.Card]bool, maxRank card.Rank) error {
	var multiErr error
	for _, suit := range []card.Suit{card.Clubs, card.Diamonds, card.Hearts, card.Spades} {
		for rank := card.Rank(1); rank <= maxRank; rank++ {
			c := card.Card{Suit: suit, Rank: rank}
			if !seen[c] {
				multiErr = multierror.Append(multiErr, errors.Errorf("missing card %s in deal", c))
			}
		}
	}
	if multiErr != nil {
		return multiErr
	}
	expected := 4 * int(maxRank)
	if len(seen) != expected {
		return fmt.Errorf("deal has %d distinct cards, expected %d for observed max rank %d", len(seen), expected, maxRank)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading deal file")
	}
	return lines, nil
}
