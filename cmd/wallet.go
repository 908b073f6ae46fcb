package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/tamago/internal/adapters/export"
	statusadapter "github.com/bnema/tamago/internal/adapters/render/status"
	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage fruit, currency and stakes",
	}

	cmd.AddCommand(
		newWalletShowCmd(app),
		newWalletExportCmd(app),
		newWalletActionCmd(app, "buy-fruit", "Buy one fruit", "bought fruit for %s\n",
			func(ctx context.Context, account domain.AccountID) error {
				return app.economy.BuyFruit(ctx, account)
			}),
		newWalletActionCmd(app, "spend-fruit", "Spend one fruit", "spent fruit of %s\n",
			func(ctx context.Context, account domain.AccountID) error {
				return app.economy.SpendFruit(ctx, account)
			}),
		newWalletActionCmd(app, "bonus", "Claim the daily bonus", "claimed bonus for %s\n",
			func(ctx context.Context, account domain.AccountID) error {
				return app.economy.ClaimDailyBonus(ctx, app.caller, account)
			}),
		newWalletActionCmd(app, "seed", "Reset a wallet to the starting fruit and balance", "seeded wallet %s\n",
			func(ctx context.Context, account domain.AccountID) error {
				return app.economy.SeedWallet(ctx, app.caller, account)
			}),
		newWalletStakeCmd(app),
		newWalletWithdrawCmd(app),
		newWalletAmountCmd(app, "set-fruit", "Set the fruit count", func(ctx context.Context, account domain.AccountID, raw string) error {
			n, err := parseUint16("fruit count", raw)
			if err != nil {
				return err
			}
			return app.economy.SetFruit(ctx, app.caller, account, n)
		}),
		newWalletAmountCmd(app, "add-fruit", "Add fruit", func(ctx context.Context, account domain.AccountID, raw string) error {
			n, err := parseUint16("fruit count", raw)
			if err != nil {
				return err
			}
			return app.economy.AddFruit(ctx, app.caller, account, n)
		}),
		newWalletAmountCmd(app, "credit", "Add to the balance", func(ctx context.Context, account domain.AccountID, raw string) error {
			amount, err := parseUint64("amount", raw)
			if err != nil {
				return err
			}
			return app.economy.Credit(ctx, app.caller, account, amount)
		}),
		newWalletAmountCmd(app, "debit", "Subtract from the balance", func(ctx context.Context, account domain.AccountID, raw string) error {
			amount, err := parseUint64("amount", raw)
			if err != nil {
				return err
			}
			return app.economy.Debit(ctx, app.caller, account, amount)
		}),
	)

	return cmd
}

func newWalletShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [account]",
		Short: "Show a wallet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.economy.Wallet(cmd.Context(), accountArg(app, args))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), statusadapter.RenderWallet(view, statusadapter.RenderOptions{Now: app.now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newWalletExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write every wallet as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallets, err := app.wallets.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list wallets: %w", err)
			}
			return export.WriteWallets(cmd.OutOrStdout(), wallets, domain.TimestampFrom(app.now()))
		},
	}
}

func newWalletActionCmd(app *app, use, short, done string, action func(context.Context, domain.AccountID) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [account]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := accountArg(app, args)
			if err := action(cmd.Context(), account); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), done, account)
			return err
		},
	}
}

func newWalletAmountCmd(app *app, use, short string, apply func(context.Context, domain.AccountID, string) error) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := app.caller
			if account != "" {
				target = domain.AccountID(account)
			}
			if err := apply(cmd.Context(), target, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", use, args[0], target)
			return err
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Target account (default: caller)")

	return cmd
}

func newWalletStakeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stake <amount>",
		Short: "Move currency from the balance into the stake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseUint64("amount", args[0])
			if err != nil {
				return err
			}
			if err := app.economy.Stake(cmd.Context(), app.caller, amount); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "staked %d\n", amount)
			return err
		},
	}
}

func newWalletWithdrawCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Return the stake plus interest to the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := app.economy.Withdraw(cmd.Context(), app.caller)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "withdrew %d\n", amount)
			return err
		},
	}
}
