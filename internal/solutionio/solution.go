// Package solutionio serializes a solved move sequence (or a failure)
// to the output file format.
package solutionio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/brettlyne/freecellsolver/internal/move"
)

// noSolution is the literal text written when no solution was found —
// single line, no trailing newline.
const noSolution = "No solution"

// Write serializes path to w as "<count>\n" followed by one move per
// line. solved distinguishes a goal reached with zero moves (writes
// "0\n") from a search that never reached a goal at all (writes the
// literal "No solution" line, regardless of any partial trace).
func Write(w io.Writer, solved bool, path []move.Move) error {
	if !solved {
		_, err := io.WriteString(w, noSolution)
		return errors.Wrap(err, "writing no-solution output")
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(path)); err != nil {
		return errors.Wrap(err, "writing move count")
	}
	for _, m := range path {
		if _, err := fmt.Fprintln(bw, m.String()); err != nil {
			return errors.Wrap(err, "writing move line")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing solution output")
}
