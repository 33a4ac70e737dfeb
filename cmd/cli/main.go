package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carewell/provider-match/cmd/cli/commands"
	"github.com/carewell/provider-match/internal/config"
	"github.com/carewell/provider-match/pkg/postgres"
	"github.com/carewell/provider-match/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Provider Match CLI - Match families with care providers",
		Long:  `A CLI tool for storing participant availability, checking appointment slots, and ranking provider matches.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.MatchProvidersCmd(appRef()))
	rootCmd.AddCommand(commands.CheckSlotCmd(appRef()))
	rootCmd.AddCommand(commands.SetAvailabilityCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp fills
// it in so commands can capture the pointer at registration time
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up logger, config, and the provider directory
func initApp() error {
	ctx := appRef()
	var err error

	ctx.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx.Logger.Info("Starting application", zap.String("environment", env))

	ctx.Logger.Info("Loading configuration")
	ctx.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx.Logger.Debug("Configuration loaded successfully")

	ctx.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(ctx.Ctx, ctx.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx.Logger.Info("Running migrations")
	if err := database.RunMigrations(ctx.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx.Directory = database
	ctx.Logger.Info("Database initialized successfully")

	return nil
}
