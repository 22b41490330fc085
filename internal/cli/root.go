package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "huntctl",
		Short: "CLI tool for the starhunt API",
		Long: `huntctl is a CLI tool for interacting with the starhunt JSON API.

It supports registration, fleet and shop operations, encounter capture,
live battles, and real-time event streaming.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load participant id from file if not provided via flag/env
			if err := cfg.LoadParticipant(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL, cfg.Participant, cfg.AdminToken)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: HUNTCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Participant, "as", cfg.Participant, "Participant id (env: HUNTCTL_PARTICIPANT)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Admin bearer token (env: HUNTCTL_ADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newParticipantCmd())
	rootCmd.AddCommand(newFleetCmd())
	rootCmd.AddCommand(newEncounterCmd())
	rootCmd.AddCommand(newBattleCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
