package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"skills_dir": "` + dir + `", "match_threshold": 0.6, "related_limit": 3, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.SkillsDir)
	assert.Equal(t, 0.6, cfg.MatchThreshold)
	assert.Equal(t, 3, cfg.RelatedLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Config{SkillsDir: t.TempDir(), MatchThreshold: 0.5}
	assert.NoError(t, valid.Validate())

	badThreshold := &Config{MatchThreshold: 1.5}
	assert.Error(t, badThreshold.Validate())

	badLimit := &Config{RelatedLimit: -1}
	assert.Error(t, badLimit.Validate())

	missingDir := &Config{SkillsDir: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, missingDir.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{SkillsDir: "/explicit"}
	defaults := Config{SkillsDir: "/default", IndexFile: "index.json", RelatedLimit: 5}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "/explicit", merged.SkillsDir)
	assert.Equal(t, "index.json", merged.IndexFile)
	assert.Equal(t, 5, merged.RelatedLimit)
	// Threshold falls back to the standard cutoff when neither side sets it.
	assert.Equal(t, 0.5, merged.MatchThreshold)
}

func TestMergeWithDefaults_ExplicitThresholdWins(t *testing.T) {
	cfg := Config{MatchThreshold: 0.7}

	merged := cfg.MergeWithDefaults(Config{MatchThreshold: 0.4})

	assert.Equal(t, 0.7, merged.MatchThreshold)
}
