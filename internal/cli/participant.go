package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParticipantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Participant ledger commands",
	}

	cmd.AddCommand(newParticipantRegisterCmd())
	cmd.AddCommand(newParticipantMeCmd())
	cmd.AddCommand(newParticipantClaimCmd())

	return cmd
}

func newParticipantRegisterCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				client.participant = id
			}
			if err := client.requireParticipant(); err != nil {
				return err
			}

			var result Participant
			if err := client.Post("/api/v1/participants", nil, &result); err != nil {
				return err
			}

			// Remember the identity for subsequent commands
			if err := cfg.SaveParticipant(result.ID); err != nil {
				return fmt.Errorf("failed to save participant id: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Participant id to register (defaults to --as)")

	return cmd
}

func newParticipantMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your ledger record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			var result Participant
			if err := client.Get("/api/v1/participants/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newParticipantClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim the periodic salvage grant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			var result ClaimResult
			if err := client.Post("/api/v1/participants/me/claim", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
