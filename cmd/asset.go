package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tamago/internal/adapters/catalog"
	"github.com/bnema/tamago/internal/adapters/export"
	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/cobra"
)

func newAssetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Define and inspect catalog assets",
	}

	cmd.AddCommand(
		newAssetDefineCmd(app),
		newAssetShowCmd(app),
		newAssetListCmd(app),
		newAssetCountCmd(app),
		newAssetImportCmd(app),
	)

	return cmd
}

func newAssetDefineCmd(app *app) *cobra.Command {
	var (
		uri        string
		catalogRef string
		group      uint64
		parts      []uint
	)

	cmd := &cobra.Command{
		Use:   "define <asset-id>",
		Short: "Define a new asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseAssetID(args[0])
			if err != nil {
				return err
			}

			partIDs := make([]domain.PartID, 0, len(parts))
			for _, part := range parts {
				partIDs = append(partIDs, domain.PartID(part))
			}

			err = app.assets.DefineAsset(cmd.Context(), application.DefineAssetCommand{
				Caller: app.caller,
				Asset: domain.AssetDefinition{
					ID:                id,
					CatalogRef:        catalogRef,
					EquippableGroupID: domain.EquippableGroupID(group),
					URI:               uri,
					PartIDs:           partIDs,
				},
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "defined asset %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "Asset metadata URI")
	cmd.Flags().StringVar(&catalogRef, "catalog-ref", "", "Catalog reference")
	cmd.Flags().Uint64Var(&group, "group", 0, "Equippable group id")
	cmd.Flags().UintSliceVar(&parts, "parts", nil, "Comma-separated part ids")
	_ = cmd.MarkFlagRequired("uri")

	return cmd
}

func newAssetShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <asset-id>",
		Short: "Show one asset definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseAssetID(args[0])
			if err != nil {
				return err
			}

			asset, err := app.assets.Asset(cmd.Context(), id)
			if err != nil {
				return err
			}

			parts := make([]string, 0, len(asset.PartIDs))
			for _, part := range asset.PartIDs {
				parts = append(parts, fmt.Sprintf("%d", part))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id: %s\n", asset.ID)
			_, _ = fmt.Fprintf(out, "uri: %s\n", asset.URI)
			_, _ = fmt.Fprintf(out, "catalog_ref: %s\n", asset.CatalogRef)
			_, _ = fmt.Fprintf(out, "equippable_group: %d\n", asset.EquippableGroupID)
			_, err = fmt.Fprintf(out, "parts: %s\n", strings.Join(parts, ","))
			return err
		},
	}
}

func newAssetListCmd(app *app) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List defined assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := app.assets.Assets(cmd.Context())
			if err != nil {
				return err
			}

			if asCSV {
				return export.WriteAssets(cmd.OutOrStdout(), assets)
			}

			for _, asset := range assets {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", asset.ID, asset.URI)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Render CSV output")

	return cmd
}

func newAssetCountCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of defined assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := app.assets.AssetCount(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}
}

func newAssetImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.yaml>",
		Short: "Define every asset listed in a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			report, importErr := runCatalogImport(cmd.Context(), cmd.ErrOrStderr(), cat, func(ctx context.Context, progress catalog.Progress) (catalog.Report, error) {
				return catalog.ImportWithProgress(ctx, app.assets, app.caller, cat, progress)
			})

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "defined: %d\n", len(report.Defined))
			if len(report.Existing) > 0 {
				_, _ = fmt.Fprintf(out, "already defined: %s\n", formatAssetIDs(report.Existing))
			}

			return importErr
		},
	}
}
