package cmd

import (
	"errors"

	"github.com/bnema/tamago/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd, app := newRootCmd()
	err := rootCmd.Execute()
	return errors.Join(err, app.Close())
}

// newRootCmd returns the command tree and the app its subcommands share.
// The caller closes the app after Execute.
func newRootCmd() (*cobra.Command, *app) {
	var (
		configFile string
		caller     string
	)

	// Subcommands hold this pointer; it is filled once flags are parsed.
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "tamago",
		Short:         "tamago: virtual pet tokens, assets and fruit economy",
		Long:          "tamago keeps a local ledger of collectible pet tokens: the assets each token carries, the pet's hunger, health and happiness, and the fruit and currency wallets used to feed them.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			wired, err := wireApp(wireOptions{
				configFile: configFile,
				caller:     caller,
				stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.tamago/config.toml)")
	rootCmd.PersistentFlags().StringVar(&caller, "as", "", "Act as this account (default $TAMAGO_CALLER or \""+config.DefaultCaller+"\")")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSetupCmd(app),
		newAssetCmd(app),
		newTokenCmd(app),
		newPetCmd(app),
		newWalletCmd(app),
		newEventsCmd(app),
	)

	return rootCmd, app
}
