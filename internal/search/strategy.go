package search

import "strings"

// Strategy is the capability set that varies between engines — frontier
// discipline and cost scoring — that the four engines differ by. The
// main loop (Run, in engine.go) is shared across all of them.
type Strategy struct {
	Name string

	// newFrontier builds the (empty) frontier this strategy expands
	// nodes from.
	newFrontier func() Frontier

	// score computes a child node's Cost given its depth and its
	// heuristic value. BFS and DFS ignore the heuristic argument; it
	// is passed uniformly for a single call signature.
	score func(depth, h int) int

	// reverseChildren requests that a node's children be pushed onto
	// the frontier in reverse generator order (DFS
	// only, so the first-generated child is the first one explored).
	reverseChildren bool

	// forceFoundationPriority is BFS's optional pruning heuristic
	// off for every other strategy, and off by
	// default for BFS too unless explicitly requested.
	forceFoundationPriority bool
}

// BFS: FIFO frontier, cost is unused (kept as depth for introspection).
func BFS() Strategy {
	return Strategy{
		Name:        "bfs",
		newFrontier: func() Frontier { return newFIFOFrontier() },
		score:       func(depth, h int) int { return depth },
	}
}

// BFSWithFoundationPriority is BFS with the optional
// pruning heuristic enabled. Not admissible for A*; never used there.
func BFSWithFoundationPriority() Strategy {
	s := BFS()
	s.forceFoundationPriority = true
	return s
}

// DFS: LIFO frontier, children pushed in reverse generator order.
func DFS() Strategy {
	return Strategy{
		Name:            "dfs",
		newFrontier:     func() Frontier { return newLIFOFrontier() },
		score:           func(depth, h int) int { return depth },
		reverseChildren: true,
	}
}

// BestFS: priority frontier keyed purely on the heuristic.
func BestFS() Strategy {
	return Strategy{
		Name:        "best",
		newFrontier: func() Frontier { return newPriorityFrontier() },
		score:       func(depth, h int) int { return h },
	}
}

// AStar: priority frontier keyed on g (depth) + h (heuristic).
func AStar() Strategy {
	return Strategy{
		Name:        "astar",
		newFrontier: func() Frontier { return newPriorityFrontier() },
		score:       func(depth, h int) int { return depth + h },
	}
}

// ByName resolves a case-insensitive algorithm name (and the short
// aliases this package allows) to a Strategy.
func ByName(name string) (Strategy, bool) {
	switch strings.ToLower(name) {
	case "bfs":
		return BFS(), true
	case "dfs":
		return DFS(), true
	case "best", "bestfs", "greedy":
		return BestFS(), true
	case "astar", "a*":
		return AStar(), true
	default:
		return Strategy{}, false
	}
}
