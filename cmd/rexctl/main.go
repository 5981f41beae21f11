// Command rexctl inspects and edits the stored preferences and bookmarks of a
// user, looks up words and compacts the store.
package main

import (
	"fmt"
	"os"

	"thesaurusrex/internal/config"
	"thesaurusrex/internal/dictionary"
	"thesaurusrex/internal/repository"
	"thesaurusrex/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is what every command runs against
type env struct {
	kv     repository.KVStore
	lookup dictionary.Lookuper
	logger *zap.Logger
	close  func() error
}

type envOpener func() (*env, error)

func main() {
	if err := newRootCmd(openEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open envOpener) *cobra.Command {
	root := &cobra.Command{
		Use:          "rexctl",
		Short:        "Manage Thesaurus Rex preferences and bookmarks",
		SilenceUsage: true,
	}
	root.PersistentFlags().Int64("user", 0, "Telegram user ID whose data is read or changed")

	root.AddCommand(
		newLookupCmd(open),
		newPrefsCmd(open),
		newBookmarksCmd(open),
		newCompactCmd(open),
	)
	return root
}

// openEnv opens the configured store with a single connection attempt
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil && lvl.Level() > zap.WarnLevel {
		zapCfg.Level = lvl
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.Open(cfg, 1, logger)
	if err != nil {
		return nil, err
	}

	var lookup dictionary.Lookuper = dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	return &env{
		kv:     store.KV,
		lookup: lookup,
		logger: logger,
		close: func() error {
			_ = logger.Sync()
			return store.Close()
		},
	}, nil
}

// withEnv opens the environment around fn
func withEnv(open envOpener, fn func(e *env) error) error {
	e, err := open()
	if err != nil {
		return err
	}
	defer e.close()
	return fn(e)
}

// userFlag returns the required --user value
func userFlag(cmd *cobra.Command) (int64, error) {
	userID, err := cmd.Flags().GetInt64("user")
	if err != nil {
		return 0, err
	}
	if userID == 0 {
		return 0, fmt.Errorf("--user is required")
	}
	return userID, nil
}
