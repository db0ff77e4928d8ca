package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "server",
		Short: "Gatherhub event-booking GraphQL backend",
		Long: `Gatherhub serves a GraphQL API for event booking: users register and
log in with email and password, create and browse events, and book or
cancel bookings. State lives in MongoDB; sessions are signed bearer
tokens.`,
		// Run the serve command by default if no subcommand is specified.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gentokenCmd)
}
