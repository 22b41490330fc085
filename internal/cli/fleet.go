package cli

import (
	"github.com/spf13/cobra"
)

func newFleetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Catalog and roster commands",
	}

	cmd.AddCommand(newFleetShipsCmd())
	cmd.AddCommand(newFleetShowCmd())
	cmd.AddCommand(newFleetStarterCmd())
	cmd.AddCommand(newFleetFlagshipCmd())
	cmd.AddCommand(newFleetBuyCmd())

	return cmd
}

func newFleetShipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ships",
		Short: "List the ship catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Ship
			if err := client.Get("/api/v1/ships", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFleetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <ship>",
		Short: "Show one ship definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Ship
			if err := client.Get("/api/v1/ships/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFleetStarterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "starter <ship>",
		Short: "Select a free starter ship as your flagship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			req := map[string]string{"ship": args[0]}
			var result Participant
			if err := client.Post("/api/v1/fleet/starter", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFleetFlagshipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flagship <ship>",
		Short: "Select an owned ship as your flagship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			req := map[string]string{"ship": args[0]}
			var result Participant
			if err := client.Post("/api/v1/fleet/flagship", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFleetBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <ship>",
		Short: "Purchase a ship from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			req := map[string]string{"ship": args[0]}
			var result Participant
			if err := client.Post("/api/v1/fleet/purchase", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
