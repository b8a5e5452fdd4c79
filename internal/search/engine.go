package search

import (
	"time"

	"github.com/brettlyne/freecellsolver/internal/move"
	"github.com/brettlyne/freecellsolver/internal/state"
)

// Outcome is the three-way termination result of a search run.
type Outcome int

const (
	Solved Outcome = iota
	Timeout
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Timeout:
		return "timeout"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result packages a completed search.
type Result struct {
	Outcome Outcome
	// Path is the winning node's move sequence, set only when Outcome
	// == Solved.
	Path []move.Move
	// PartialTrace is the pop-order trace of moves seen before the
	// search stopped without a solution (Timeout or Exhausted), for
	// diagnostics. It is not itself a solution.
	PartialTrace []move.Move
	NodesExpanded int
}

// DefaultDeadline is the wall-clock search budget used when neither a
// config file nor a CLI flag overrides it.
const DefaultDeadline = 15 * time.Minute

// Run executes the shared search loop for the given
// root state, strategy, and closed-set equivalence, stopping at
// deadline if no goal has been found by then.
func Run(root state.GameState, strat Strategy, eq state.Equivalence, deadline time.Duration) Result {
	start := time.Now()
	rootNode := &Node{State: root, Depth: 0, Cost: strat.score(0, Heuristic(root))}

	frontier := strat.newFrontier()
	frontier.Push(rootNode)

	closed := make(map[state.Fingerprint]struct{})
	closed[root.Fingerprint(eq)] = struct{}{}

	var trace []move.Move
	nodesExpanded := 0

	for frontier.Len() > 0 {
		if time.Since(start) > deadline {
			return Result{Outcome: Timeout, PartialTrace: trace, NodesExpanded: nodesExpanded}
		}

		n, ok := frontier.Pop()
		if !ok {
			break
		}
		if n.hasMove {
			trace = append(trace, n.Move)
		}
		nodesExpanded++

		if n.State.IsGoal() {
			return Result{Outcome: Solved, Path: n.Path(), NodesExpanded: nodesExpanded}
		}

		children := expand(n, strat, eq)
		if strat.reverseChildren {
			for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
				children[i], children[j] = children[j], children[i]
			}
		}
		for _, child := range children {
			fp := child.State.Fingerprint(eq)
			if _, seen := closed[fp]; seen {
				continue
			}
			closed[fp] = struct{}{}
			frontier.Push(child)
		}
	}

	return Result{Outcome: Exhausted, PartialTrace: trace, NodesExpanded: nodesExpanded}
}

// expand generates n's successors, rejecting no-op transitions, and
// wraps the survivors as child nodes with the strategy's cost.
func expand(n *Node, strat Strategy, eq state.Equivalence) []*Node {
	opts := move.Options{ForceFoundationPriority: strat.forceFoundationPriority}
	candidates := move.Generate(n.State, opts)

	children := make([]*Node, 0, len(candidates))
	for _, m := range candidates {
		next, ok := move.Successor(n.State, m, eq)
		if !ok {
			continue
		}
		h := Heuristic(next)
		cost := strat.score(n.Depth+1, h)
		children = append(children, newChild(n, m, next, cost))
	}
	return children
}
