package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettlyne/freecellsolver/internal/state"
)

func TestDefaultResolvesToStrictOppositeColor(t *testing.T) {
	cfg := Default()
	assert.Equal(t, state.OppositeColor, cfg.Rule())
	assert.Equal(t, state.Strict, cfg.Equivalence())
	assert.Equal(t, time.Minute, cfg.Deadline(time.Minute), "unset deadline falls back to the caller's default")
}

func TestLoadFillsInOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deadline_seconds: 30\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Deadline(time.Minute))
	assert.Equal(t, state.OppositeColor, cfg.Rule(), "omitted stacking_rule keeps the default")
	assert.Equal(t, state.Strict, cfg.Equivalence(), "omitted closed_set_equivalence keeps the default")
}

func TestLoadHonorsRuleOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "stacking_rule: any_suit_different\nclosed_set_equivalence: loose\nforce_foundation_priority: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, state.AnySuitDifferent, cfg.Rule())
	assert.Equal(t, state.Loose, cfg.Equivalence())
	assert.True(t, cfg.ForceFoundationPriority)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
