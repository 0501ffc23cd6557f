package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/skill-advisor/internal/config"
	"github.com/jonathan/skill-advisor/internal/store"
)

var (
	flagSkillsDir  string
	flagIndexFile  string
	flagConfigPath string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagSkillsDir, "skills", "s", "", "Directory holding the skill record set (or SKILL_ADVISOR_SKILLS_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagIndexFile, "index", "", "Index document name inside the skills directory (default index.json)")
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig merges CLI flags, the optional config file, and
// environment defaults, flags winning.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		SkillsDir: flagSkillsDir,
		IndexFile: flagIndexFile,
		Verbose:   flagVerbose,
	}

	if flagConfigPath != "" {
		fileCfg, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		SkillsDir: os.Getenv("SKILL_ADVISOR_SKILLS_DIR"),
		IndexFile: store.DefaultIndexFile,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.SkillsDir == "" {
		return config.Config{}, fmt.Errorf("skills directory is required (--skills or SKILL_ADVISOR_SKILLS_DIR)")
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// openStore builds a loaded store from the resolved configuration.
func openStore(_ *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	logger, err := newLogger(cfg.Verbose || flagVerbose)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to build logger: %w", err)
	}

	s := store.New(cfg.SkillsDir,
		store.WithIndexFile(cfg.IndexFile),
		store.WithLogger(logger))
	if err := s.Load(); err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load skill store: %w", err)
	}
	return s, cfg, nil
}
