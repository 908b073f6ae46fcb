package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSetupCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup [account]",
		Short: "Seed a wallet and install the default condition URIs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := accountArg(app, args)
			if err := app.economy.SeedWallet(cmd.Context(), app.caller, account); err != nil {
				return err
			}
			if err := app.pets.ResetConditionURIs(cmd.Context(), app.caller); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "seeded wallet %s and reset condition URIs\n", account)
			return err
		},
	}
}
