package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextIDCmd(load EnvLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Print the id the next created project would receive",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}

			id, err := env.projectService().NextProjectID()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
