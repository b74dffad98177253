package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notekeeper/internal/client"
	"notekeeper/internal/config"
	"notekeeper/internal/logger"
	"notekeeper/internal/tui"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	timeout time.Duration

	cfg *config.ClientConfig
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Terminal client for the notekeeper API",
	Long: `notekeeper browses, creates, edits and deletes notes stored on a notekeeper server.
Without a subcommand it opens the interactive terminal UI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.LoadClient(config.ClientConfig{APIURL: apiURL, Timeout: timeout})
		if err != nil {
			fatal("Error loading configuration", err)
		}
		log = logger.NewClientLogger("client", cfg.LogLevel)
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := tui.New(newAPI(), log).Run(ctx); err != nil {
			fatal("Error running terminal UI", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAPI() client.NotesAPI {
	return client.New(client.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout})
}

// requestContext bounds one-shot subcommands by the configured timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Timeout)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the notes API (env NOTES_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (env NOTES_API_TIMEOUT)")
}
