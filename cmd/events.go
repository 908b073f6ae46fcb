package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the event journal",
	}

	cmd.AddCommand(newEventsListCmd(app))

	return cmd
}

func newEventsListCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journaled events in commit order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				events []domain.Event
				err    error
			)
			if token == "" {
				events, err = app.journal.All(cmd.Context())
			} else {
				id, parseErr := domain.ParseTokenID(token)
				if parseErr != nil {
					return parseErr
				}
				events, err = app.journal.Events(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			for _, event := range events {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatEvent(event))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Only events for this token")

	return cmd
}

func formatEvent(event domain.Event) string {
	fields := []string{string(event.Kind)}
	if event.Kind != domain.EventAssetDefined {
		fields = append(fields, "token="+event.TokenID.String())
	}
	if event.Kind != domain.EventPrioritySet {
		fields = append(fields, "asset="+event.AssetID.String())
	}
	if event.ReplacesID != nil {
		fields = append(fields, "replaces="+event.ReplacesID.String())
	}
	if len(event.Priorities) > 0 {
		fields = append(fields, "priorities="+formatAssetIDs(event.Priorities))
	}
	if !event.At.IsZero() {
		fields = append(fields, "at="+event.At.Time().Format("2006-01-02T15:04:05.000Z07:00"))
	}
	return strings.Join(fields, "\t")
}
