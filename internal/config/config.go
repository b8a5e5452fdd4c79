// Package config loads the solver's optional YAML tuning file. CLI
// flags override config values; config values override these defaults.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/brettlyne/freecellsolver/internal/state"
)

// Config is the solver's tunable behavior — the default deadline plus
// the three rule toggles for the stacking, equivalence, and pruning behaviors.
type Config struct {
	// DeadlineSeconds overrides search.DefaultDeadline when positive.
	DeadlineSeconds int `yaml:"deadline_seconds"`

	// StackingRule selects tableau-stacking legality: "opposite_color"
	// (the default, standard FreeCell rule) or "any_suit_different"
	// (a looser same-color-accepting rule, for parity testing).
	StackingRule string `yaml:"stacking_rule"`

	// ClosedSetEquivalence selects the closed-set membership relation:
	// "strict" (the default) or "loose" (a permutation-insensitive,
	// more aggressive pruning mode).
	ClosedSetEquivalence string `yaml:"closed_set_equivalence"`

	// ForceFoundationPriority enables the optional BFS
	// pruning heuristic. Off by default; has no effect outside BFS.
	ForceFoundationPriority bool `yaml:"force_foundation_priority"`
}

// Default returns the built-in defaults: no deadline of its own
// (Deadline returns the caller's fallback, search.DefaultDeadline in the
// CLI), opposite-color stacking, strict equivalence, foundation
// priority off.
func Default() Config {
	return Config{
		DeadlineSeconds:         0,
		StackingRule:            "opposite_color",
		ClosedSetEquivalence:    "strict",
		ForceFoundationPriority: false,
	}
}

// Load reads and parses a YAML config file, filling in defaults for
// any field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config file %q", path)
	}
	// Parse into a copy seeded with defaults so omitted keys keep them.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %q", path)
	}
	return cfg, nil
}

// Deadline resolves the configured deadline, falling back to fallback
// when unset.
func (c Config) Deadline(fallback time.Duration) time.Duration {
	if c.DeadlineSeconds <= 0 {
		return fallback
	}
	return time.Duration(c.DeadlineSeconds) * time.Second
}

// Rule resolves the configured stacking rule.
func (c Config) Rule() state.StackingRule {
	if c.StackingRule == "any_suit_different" {
		return state.AnySuitDifferent
	}
	return state.OppositeColor
}

// Equivalence resolves the configured closed-set equivalence.
func (c Config) Equivalence() state.Equivalence {
	if c.ClosedSetEquivalence == "loose" {
		return state.Loose
	}
	return state.Strict
}
