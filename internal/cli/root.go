// Package cli provides the command-line interface for the trip planner.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wanderly.app/trip-planner/internal/config"
	"wanderly.app/trip-planner/internal/logger"
	"wanderly.app/trip-planner/internal/store"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global config, logger and store
	cfg     config.Config
	log     *zap.SugaredLogger
	dbStore *store.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tripplanner",
	Short: "Conversational travel planner",
	Long: `Tripplanner walks you through planning a trip: it asks for a destination,
duration, travel style and budget, presents itineraries, and saves the one
you finalize.

Run "tripplanner serve" for the HTTP API or "tripplanner chat" to plan from
the terminal.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		config.LoadConfig()
		cfg = config.AppConfig

		var err error
		log, err = logger.New(logger.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		// PersistentPostRun is skipped when a command fails
		closeStore()

		kv, err := store.Open(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
		}
		dbStore = store.New(kv, log, store.WithDefaultUserName(cfg.DefaultUserName))
		log.Debugf("Opened %s store at %s", cfg.StoreDriver, cfg.DatabaseURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeStore()
		if log != nil {
			_ = log.Sync()
		}
	},
}

func closeStore() {
	if dbStore == nil {
		return
	}
	if err := dbStore.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}
	dbStore = nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(conversationsCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(userCmd)
}
