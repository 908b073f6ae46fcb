package ports

import (
	"context"

	"github.com/bnema/tamago/internal/domain"
)

type PetRepository interface {
	Get(ctx context.Context, token domain.TokenID) (domain.Pet, error)
	Save(ctx context.Context, pet domain.Pet) error
}

type WalletRepository interface {
	Get(ctx context.Context, account domain.AccountID) (domain.Wallet, error)
	Save(ctx context.Context, wallet domain.Wallet) error
}

type SettingsRepository interface {
	ConditionURIs(ctx context.Context) (domain.ConditionURIs, error)
	SaveConditionURIs(ctx context.Context, uris domain.ConditionURIs) error
}
