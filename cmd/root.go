package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepmate/engine/internal/engine"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepmate",
	Short: "Exam-prep engagement engine",
	Long:  "PrepMate — spaced-repetition flashcards, streaks, points, achievements, and leaderboards for exam preparation.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPMATE_DB env var)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag
// (highest priority), then the PREPMATE_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by flags and environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openEngine builds the engine. When withGenerator is set, a text
// generator is resolved from PREPMATE_* config or discovered vendor
// keys; commands that only read local state pass false and never need
// an API key.
func openEngine(ctx context.Context, cmd *cobra.Command, withGenerator bool) (*engine.Engine, *store.Store, error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	var gen llm.Generator
	if withGenerator {
		gen, err = resolveGenerator(ctx, s)
		if err != nil {
			s.Close()
			return nil, nil, err
		}
	}

	return engine.New(s, gen), s, nil
}

// resolveGenerator prefers explicit PREPMATE_* configuration, then
// falls back to probing the vendors' standard key env vars.
func resolveGenerator(ctx context.Context, s *store.Store) (llm.Generator, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no generator configured: %w", err)
		}
		cfg = discovered
	}
	return llm.NewGenerator(ctx, cfg, s.LLMEvents())
}

// ownerFlag reads the required --owner flag.
func ownerFlag(cmd *cobra.Command) (string, error) {
	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		return "", fmt.Errorf("--owner is required")
	}
	return owner, nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
