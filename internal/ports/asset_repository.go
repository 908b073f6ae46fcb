package ports

import (
	"context"

	"github.com/bnema/tamago/internal/domain"
)

// AssetRepository stores asset definitions. Insert fails with
// domain.ErrAssetExists on a duplicate id; List keeps insertion order.
type AssetRepository interface {
	Get(ctx context.Context, id domain.AssetID) (domain.AssetDefinition, error)
	Insert(ctx context.Context, asset domain.AssetDefinition) error
	List(ctx context.Context) ([]domain.AssetDefinition, error)
	Count(ctx context.Context) (uint32, error)
}

// TokenAssetRepository returns an empty record for tokens it has never
// stored.
type TokenAssetRepository interface {
	Get(ctx context.Context, token domain.TokenID) (domain.TokenAssets, error)
	Save(ctx context.Context, assets domain.TokenAssets) error
}
