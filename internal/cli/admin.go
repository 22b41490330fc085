package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator commands (require --admin-token)",
	}

	cmd.AddCommand(newAdminSpawnCmd())

	return cmd
}

func newAdminSpawnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spawn",
		Short: "Force one spawn pass immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Do(http.MethodPost, "/api/v1/admin/spawn", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("spawn pass triggered")
			return nil
		},
	}
}
