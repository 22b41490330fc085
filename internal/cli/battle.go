package cli

import (
	"github.com/spf13/cobra"
)

func newBattleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Battle commands",
	}

	cmd.AddCommand(newBattleEngageCmd())
	cmd.AddCommand(newBattleActCmd())

	return cmd
}

func newBattleEngageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engage",
		Short: "Engage the active encounter",
		Long: `Engage the active encounter with your flagship.

The command blocks until the battle concludes. While it runs, submit
round actions from a second terminal:

  huntctl battle act attack
  huntctl battle act "attack with railgun"
  huntctl battle act defend
  huntctl battle act flee`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			var result BattleReport
			if err := client.Post("/api/v1/battles", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBattleActCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "act <directive>",
		Short: "Submit a directive for your running battle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.requireParticipant(); err != nil {
				return err
			}

			text := args[0]
			for _, arg := range args[1:] {
				text += " " + arg
			}

			req := map[string]string{"text": text}
			var result struct {
				Accepted bool `json:"accepted"`
			}
			if err := client.Post("/api/v1/battles/directive", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result.Accepted {
				out.PrintMessage("directive accepted")
			} else {
				out.PrintMessage("no battle is awaiting your action")
			}
			return nil
		},
	}
}
