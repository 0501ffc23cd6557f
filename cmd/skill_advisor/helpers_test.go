package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/skill-advisor/internal/store"
)

// resetFlags restores the package-level flag state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	prevSkills, prevIndex, prevConfig, prevVerbose := flagSkillsDir, flagIndexFile, flagConfigPath, flagVerbose
	t.Cleanup(func() {
		flagSkillsDir, flagIndexFile, flagConfigPath, flagVerbose = prevSkills, prevIndex, prevConfig, prevVerbose
	})
	flagSkillsDir, flagIndexFile, flagConfigPath, flagVerbose = "", "", "", false
}

func TestResolveConfig_RequiresSkillsDir(t *testing.T) {
	resetFlags(t)
	t.Setenv("SKILL_ADVISOR_SKILLS_DIR", "")

	_, err := resolveConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills directory is required")
}

func TestResolveConfig_FlagWinsOverEnv(t *testing.T) {
	resetFlags(t)
	flagDir := t.TempDir()
	envDir := t.TempDir()
	flagSkillsDir = flagDir
	t.Setenv("SKILL_ADVISOR_SKILLS_DIR", envDir)

	cfg, err := resolveConfig()

	require.NoError(t, err)
	assert.Equal(t, flagDir, cfg.SkillsDir)
	assert.Equal(t, store.DefaultIndexFile, cfg.IndexFile)
}

func TestResolveConfig_EnvFallback(t *testing.T) {
	resetFlags(t)
	envDir := t.TempDir()
	t.Setenv("SKILL_ADVISOR_SKILLS_DIR", envDir)

	cfg, err := resolveConfig()

	require.NoError(t, err)
	assert.Equal(t, envDir, cfg.SkillsDir)
}

func TestResolveConfig_ConfigFileMerges(t *testing.T) {
	resetFlags(t)
	t.Setenv("SKILL_ADVISOR_SKILLS_DIR", "")

	skillsDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"skills_dir": "` + skillsDir + `", "index_file": "catalog.json", "match_threshold": 0.6}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	flagConfigPath = configPath

	cfg, err := resolveConfig()

	require.NoError(t, err)
	assert.Equal(t, skillsDir, cfg.SkillsDir)
	assert.Equal(t, "catalog.json", cfg.IndexFile)
	assert.Equal(t, 0.6, cfg.MatchThreshold)
}

func TestNewLogger(t *testing.T) {
	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))

	verbose, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
