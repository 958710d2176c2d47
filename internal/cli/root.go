// Package cli implements the ledger command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands. The configuration is loaded
// before any command runs.
type app struct {
	cfg config.Config
	now func() time.Time
}

// NewRootCmd returns the ledger command with all subcommands.
// Without a subcommand, the API server is started. All commands use
// now as the current time.
func NewRootCmd(now func() time.Time) *cobra.Command {
	var envFile string
	a := &app{now: now}

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Personal finance tracker",
		Long: `ledger records expenses and income, tracks monthly budgets per category
and serves analytics over a JSON API.

Configuration is read from environment variables. A .env file is loaded first
if it exists.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// The .env file is optional
			_ = godotenv.Load(envFile)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg
			setupLogging(cfg)
			return nil
		},
		RunE: a.runServe,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file to load environment variables from")

	cmd.AddCommand(a.serveCmd())
	cmd.AddCommand(a.exportCmd())
	cmd.AddCommand(a.importCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on errors.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd(time.Now).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging configures gin and the global zerolog logger.
func setupLogging(cfg config.Config) {
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
