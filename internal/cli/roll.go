package cli

import (
	"github.com/spf13/cobra"
)

func newRollCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "roll <user-key>",
		Short: "Show today's identity for a user, generating it on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Identity(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name to show with the identity")

	return cmd
}
