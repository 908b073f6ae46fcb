package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/tamago/internal/adapters/render/status"
	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/cobra"
)

func newPetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Feed pets and inspect their condition",
	}

	cmd.AddCommand(
		newPetStatusCmd(app),
		newPetFeedCmd(app),
		newPetSetStatusCmd(app),
		newPetURICmd(app),
	)

	return cmd
}

func newPetStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status <token-id>...",
		Short: "Show the decayed status of one or more pets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := make([]application.PetStatus, 0, len(args))
			for _, arg := range args {
				token, err := domain.ParseTokenID(arg)
				if err != nil {
					return err
				}
				status, err := app.pets.Status(cmd.Context(), token)
				if err != nil {
					return err
				}
				statuses = append(statuses, status)
			}

			return writePetStatuses(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writePetStatuses(cmd *cobra.Command, app *app, statuses []application.PetStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newPetFeedCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feed <token-id>",
		Short: "Spend one fruit to feed a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}

			result, err := app.pets.Feed(cmd.Context(), token, app.caller)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"fed token %s: roll %d, outcome %s (hungry %d, health %d, happy %d), fruit left %d\n",
				result.TokenID, result.Roll, result.Outcome,
				result.Status.Hungry, result.Status.Health, result.Status.Happy,
				result.Fruit,
			)
			return err
		},
	}
}

func newPetSetStatusCmd(app *app) *cobra.Command {
	var (
		hungry uint32
		health uint32
		happy  uint32
		full   bool
		death  bool
	)

	cmd := &cobra.Command{
		Use:   "set-status <token-id>",
		Short: "Overwrite a pet's stored status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := domain.ParseTokenID(args[0])
			if err != nil {
				return err
			}

			switch {
			case full:
				err = app.pets.SetFullStatus(cmd.Context(), app.caller, token)
			case death:
				err = app.pets.SetDeathStatus(cmd.Context(), app.caller, token)
			default:
				err = app.pets.SetStatus(cmd.Context(), application.SetStatusCommand{
					Caller: app.caller,
					Token:  token,
					Status: domain.Status{Hungry: hungry, Health: health, Happy: happy},
				})
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated status of token %s\n", token)
			return err
		},
	}

	cmd.Flags().Uint32Var(&hungry, "hungry", 0, "Hunger value")
	cmd.Flags().Uint32Var(&health, "health", 0, "Health value")
	cmd.Flags().Uint32Var(&happy, "happy", 0, "Happiness value")
	cmd.Flags().BoolVar(&full, "full", false, "Set the fully fed status")
	cmd.Flags().BoolVar(&death, "death", false, "Set the death status")
	cmd.MarkFlagsMutuallyExclusive("full", "death")

	return cmd
}

func newPetURICmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uri",
		Short: "Manage the per-condition token URI bases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the URI base of each condition tier",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				uris, err := app.pets.ConditionURIs(cmd.Context())
				if err != nil {
					return err
				}
				for _, tier := range domain.Tiers {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tier, uris.For(tier))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <bad|normal|good> <uri>",
			Short: "Set the URI base of one condition tier",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				tier, err := domain.ParseTier(args[0])
				if err != nil {
					return err
				}
				err = app.pets.SetConditionURI(cmd.Context(), application.SetConditionURICommand{
					Caller: app.caller,
					Tier:   tier,
					URI:    args[1],
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "set %s uri\n", tier)
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default URI bases",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.pets.ResetConditionURIs(cmd.Context(), app.caller); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "reset condition uris")
				return err
			},
		},
	)

	return cmd
}
