package cli

import (
	"github.com/spf13/cobra"
)

func newEncounterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encounter",
		Short: "Encounter commands",
	}

	cmd.AddCommand(newEncounterShowCmd())
	cmd.AddCommand(newEncounterCaptureCmd())

	return cmd
}

func newEncounterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active encounter",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Encounter
			if err := client.Get("/api/v1/encounter", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEncounterCaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture",
		Short: "Capture the active encounter into your roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			var result CaptureResult
			if err := client.Post("/api/v1/encounter/capture", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
