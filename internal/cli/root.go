// Package cli implements the folio command line client. It talks to a
// running folio server over the JSON API using the same session token the
// browser uses.
package cli

import (
	"log/slog"
	"os"

	"github.com/me/folio/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking FOLIO_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("FOLIO_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the folio CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "folio — portfolio site admin client",
		Long:  "folio manages the portfolio server: log in, list projects, toggle visibility, and trigger GitHub syncs.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
			client = NewClient(flagServer, LoadToken(), logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "folio server URL (or FOLIO_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newProjectsCmd(),
		newSyncCmd(),
		newStatusCmd(),
	)

	return root
}
