// Command solver reads a FreeCell-family deal file, searches for a
// solution using the selected algorithm, and writes the move sequence
// (or "No solution") to the output file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brettlyne/freecellsolver/internal/config"
	"github.com/brettlyne/freecellsolver/internal/dealio"
	"github.com/brettlyne/freecellsolver/internal/search"
	"github.com/brettlyne/freecellsolver/internal/solutionio"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	deadlineFlag := flag.Duration("deadline", 0, "search deadline, e.g. 15m (overrides config and the default)")
	configPath := flag.String("config", "", "optional YAML config file (deadline_seconds, stacking_rule, closed_set_equivalence, force_foundation_priority)")
	looseInput := flag.Bool("loose-input", false, "accept the alternative verbatim-line deal format instead of the fixed 7/7/7/7/6/6/6/6 layout")
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: solver <bfs|dfs|best|astar> <infile> <outfile>")
		os.Exit(2)
	}
	algoName, inPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	strategy, ok := search.ByName(algoName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown algorithm %q: want one of bfs, dfs, best, astar\n", algoName)
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "err", err)
			os.Exit(1)
		}
	}
	if strategy.Name == "bfs" && cfg.ForceFoundationPriority {
		strategy = search.BFSWithFoundationPriority()
	}

	deadline := cfg.Deadline(search.DefaultDeadline)
	if *deadlineFlag > 0 {
		deadline = *deadlineFlag
	}

	mode := dealio.Fixed
	if *looseInput {
		mode = dealio.Loose
	}

	in, err := os.Open(inPath)
	if err != nil {
		slog.Error("opening deal file", "path", inPath, "err", err)
		os.Exit(1)
	}
	defer in.Close()

	initial, err := dealio.Parse(in, mode, cfg.Rule())
	if err != nil {
		slog.Error("parsing deal file", "path", inPath, "err", err)
		os.Exit(1)
	}

	start := time.Now()
	result := search.Run(initial, strategy, cfg.Equivalence(), deadline)
	elapsed := time.Since(start)

	slog.Info("search finished",
		"algorithm", strategy.Name,
		"outcome", result.Outcome.String(),
		"nodes_expanded", result.NodesExpanded,
		"elapsed", elapsed,
	)

	out, err := os.Create(outPath)
	if err != nil {
		slog.Error("creating output file", "path", outPath, "err", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := solutionio.Write(out, result.Outcome == search.Solved, result.Path); err != nil {
		slog.Error("writing output file", "path", outPath, "err", err)
		os.Exit(1)
	}
}
