package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint tokens and manage the assets they carry",
	}

	cmd.AddCommand(
		newTokenMintCmd(app),
		newTokenAssetsCmd(app),
		newTokenAttachCmd(app),
		newTokenTransitionCmd(app, "accept", "Accept a pending asset", (*application.AssetService).AcceptAsset),
		newTokenTransitionCmd(app, "reject", "Reject a pending asset", (*application.AssetService).RejectAsset),
		newTokenTransitionCmd(app, "remove", "Remove an accepted asset", (*application.AssetService).RemoveAsset),
		newTokenPriorityCmd(app),
		newTokenURICmd(app),
	)

	return cmd
}

func newTokenMintCmd(app *app) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "mint <token-id>",
		Short: "Register a token and its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}

			account := app.caller
			if owner != "" {
				account = domain.AccountID(owner)
			}
			if err := app.minter.Mint(cmd.Context(), token, account); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "minted token %s for %s\n", token, account)
			return err
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner account (default: caller)")

	return cmd
}

func newTokenAssetsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assets <token-id>",
		Short: "Show accepted and pending assets of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}

			view, err := app.assets.TokenAssets(cmd.Context(), token)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "token: %s\n", view.TokenID)
			_, _ = fmt.Fprintf(out, "owner: %s\n", view.Owner)
			_, _ = fmt.Fprintf(out, "accepted: %s\n", formatAssetIDs(view.Accepted))
			_, err = fmt.Fprintf(out, "pending: %s\n", formatAssetIDs(view.Pending))
			return err
		},
	}
}

func newTokenAttachCmd(app *app) *cobra.Command {
	var replace string

	cmd := &cobra.Command{
		Use:   "attach <token-id> <asset-id>",
		Short: "Add an asset to a token",
		Long:  "Add an asset to a token. The owner's assets are accepted at once; anyone else's land in pending. --replace overwrites an accepted asset in place.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}
			asset, err := domain.ParseAssetID(args[1])
			if err != nil {
				return err
			}

			attach := application.AttachAssetCommand{Caller: app.caller, Token: token, Asset: asset}
			if replace != "" {
				replaced, err := domain.ParseAssetID(replace)
				if err != nil {
					return err
				}
				attach.Replaces = &replaced
			}

			placement, err := app.assets.AttachAsset(cmd.Context(), attach)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "asset %s %s on token %s\n", asset, placement, token)
			return err
		},
	}

	cmd.Flags().StringVar(&replace, "replace", "", "Accepted asset id to replace")

	return cmd
}

type tokenTransition func(s *application.AssetService, ctx context.Context, caller domain.AccountID, token domain.TokenID, asset domain.AssetID) error

func newTokenTransitionCmd(app *app, verb, short string, transition tokenTransition) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <token-id> <asset-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}
			asset, err := domain.ParseAssetID(args[1])
			if err != nil {
				return err
			}

			if err := transition(app.assets, cmd.Context(), app.caller, token, asset); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s asset %s on token %s\n", pastTense(verb), asset, token)
			return err
		},
	}
}

func pastTense(verb string) string {
	switch verb {
	case "accept":
		return "accepted"
	case "reject":
		return "rejected"
	case "remove":
		return "removed"
	default:
		return verb
	}
}

func newTokenPriorityCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <token-id> <asset-id>...",
		Short: "Set the display order of accepted assets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}
			priorities, err := parseAssetIDs(args[1:])
			if err != nil {
				return err
			}

			if err := app.assets.SetPriority(cmd.Context(), app.caller, token, priorities); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "priority of token %s: %s\n", token, formatAssetIDs(priorities))
			return err
		},
	}
}

func newTokenURICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uri <token-id>",
		Short: "Print the token URI for the pet's current condition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}

			uri, err := app.pets.TokenURI(cmd.Context(), token)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), uri)
			return err
		},
	}
}
