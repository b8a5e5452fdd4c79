// Package search implements the search node and frontier, the four
// interchangeable graph-search engines, and the domain heuristic.
package search

import (
	"github.com/brettlyne/freecellsolver/internal/move"
	"github.com/brettlyne/freecellsolver/internal/state"
)

// Node is a search node: a back-pointer to its parent, the move that
// produced it, the state it wraps, its depth from the root, and its
// strategy-assigned cost. Nodes form a tree
// via Parent, never a graph — safe to let the garbage collector reclaim
// any subtree that becomes unreachable once the engine finishes.
type Node struct {
	Parent *Node
	Move   move.Move // zero value only for the root, which has no producing move.
	State  state.GameState
	Depth  int
	Cost   int

	hasMove bool
}

// newChild builds the node produced by applying m at depth parent.Depth+1.
func newChild(parent *Node, m move.Move, s state.GameState, cost int) *Node {
	return &Node{Parent: parent, Move: m, State: s, Depth: parent.Depth + 1, Cost: cost, hasMove: true}
}

// Path walks parent links from n back to the root, collecting producing
// moves, and returns them in execution order ("path
// reconstruction"). The root contributes no move.
func (n *Node) Path() []move.Move {
	var reversed []move.Move
	for cur := n; cur != nil && cur.hasMove; cur = cur.Parent {
		reversed = append(reversed, cur.Move)
	}
	path := make([]move.Move, len(reversed))
	for i, m := range reversed {
		path[len(reversed)-1-i] = m
	}
	return path
}
