package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mquinn/rpsduel-go/internal/dependencies/random"
	"github.com/mquinn/rpsduel-go/internal/kv"
	"github.com/mquinn/rpsduel-go/internal/kv/file"
	kvredis "github.com/mquinn/rpsduel-go/internal/kv/redis"
	"github.com/mquinn/rpsduel-go/internal/remote"
	"github.com/mquinn/rpsduel-go/internal/services/identity"
	"github.com/mquinn/rpsduel-go/internal/services/session"
)

var (
	cfg      *Config
	logger   *slog.Logger
	client   *remote.Client
	sessions *session.Controller

	// Set when the store needs closing (Redis)
	closeStore func() error
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "rpsduel",
		Short: "Play rock-paper-scissors against a remote opponent service",
		Long: `rpsduel is a client for a remote rock-paper-scissors service.

Log in with a display name, throw rock, paper, or scissors, and the
service resolves the round. History and stats are kept by the service;
your identity is persisted locally so the same name keeps the same
identifier across sessions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return buildApp()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeStore != nil {
				return closeStore()
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Opponent service URL (env: RPSDUEL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Local state directory (env: RPSDUEL_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Use Redis for local state (env: RPSDUEL_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// buildApp wires the store, services, and remote client
func buildApp() error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var store kv.Store
	if cfg.RedisURL != "" {
		redisCfg := kvredis.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisStore, err := kvredis.New(redisCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = redisStore
		closeStore = redisStore.Close
	} else {
		store = file.New(cfg.StatePath())
	}

	identities := identity.New(store, random.New())
	sessions = session.NewController(identities, store)
	client = remote.NewClient(cfg.ServerURL)

	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
