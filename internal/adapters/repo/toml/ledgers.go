package toml

import (
	"context"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

type AssetRepository struct{ repo *Repository }
type TokenAssetRepository struct{ repo *Repository }
type TokenRepository struct{ repo *Repository }
type PetRepository struct{ repo *Repository }
type WalletRepository struct{ repo *Repository }
type SettingsRepository struct{ repo *Repository }
type SaltStore struct{ repo *Repository }

var (
	_ ports.AssetRepository      = (*AssetRepository)(nil)
	_ ports.TokenAssetRepository = (*TokenAssetRepository)(nil)
	_ ports.TokenRegistry        = (*TokenRepository)(nil)
	_ ports.TokenMinter          = (*TokenRepository)(nil)
	_ ports.PetRepository        = (*PetRepository)(nil)
	_ ports.WalletRepository     = (*WalletRepository)(nil)
	_ ports.SettingsRepository   = (*SettingsRepository)(nil)
	_ ports.SaltStore            = (*SaltStore)(nil)
)

func (r *Repository) Assets() *AssetRepository           { return &AssetRepository{repo: r} }
func (r *Repository) TokenAssets() *TokenAssetRepository { return &TokenAssetRepository{repo: r} }
func (r *Repository) Tokens() *TokenRepository           { return &TokenRepository{repo: r} }
func (r *Repository) Pets() *PetRepository               { return &PetRepository{repo: r} }
func (r *Repository) Wallets() *WalletRepository         { return &WalletRepository{repo: r} }
func (r *Repository) Settings() *SettingsRepository      { return &SettingsRepository{repo: r} }
func (r *Repository) Salt() *SaltStore                   { return &SaltStore{repo: r} }

func (a *AssetRepository) Get(ctx context.Context, id domain.AssetID) (domain.AssetDefinition, error) {
	var asset domain.AssetDefinition
	err := a.repo.view(ctx, func(file fileSchema) error {
		for _, entry := range file.Assets {
			if entry.ID == uint32(id) {
				asset = fromAssetSchema(entry)
				return nil
			}
		}
		return domain.ErrAssetNotFound
	})
	return asset, err
}

func (a *AssetRepository) Insert(ctx context.Context, asset domain.AssetDefinition) error {
	return a.repo.update(ctx, func(file *fileSchema) error {
		for _, entry := range file.Assets {
			if entry.ID == uint32(asset.ID) {
				return domain.ErrAssetExists
			}
		}
		file.Assets = append(file.Assets, toAssetSchema(asset))
		return nil
	})
}

func (a *AssetRepository) List(ctx context.Context) ([]domain.AssetDefinition, error) {
	var assets []domain.AssetDefinition
	err := a.repo.view(ctx, func(file fileSchema) error {
		assets = make([]domain.AssetDefinition, 0, len(file.Assets))
		for _, entry := range file.Assets {
			assets = append(assets, fromAssetSchema(entry))
		}
		return nil
	})
	return assets, err
}

func (a *AssetRepository) Count(ctx context.Context) (uint32, error) {
	var count uint32
	err := a.repo.view(ctx, func(file fileSchema) error {
		count = uint32(len(file.Assets))
		return nil
	})
	return count, err
}

func (t *TokenAssetRepository) Get(ctx context.Context, token domain.TokenID) (domain.TokenAssets, error) {
	assets := domain.TokenAssets{TokenID: token}
	err := t.repo.view(ctx, func(file fileSchema) error {
		for _, entry := range file.TokenAssets {
			if entry.TokenID == u64(token) {
				assets.Pending = toAssetIDs(entry.Pending)
				assets.Accepted = toAssetIDs(entry.Accepted)
				break
			}
		}
		return nil
	})
	return assets, err
}

func (t *TokenAssetRepository) Save(ctx context.Context, assets domain.TokenAssets) error {
	return t.repo.update(ctx, func(file *fileSchema) error {
		encoded := tokenAssetsSchema{
			TokenID:  u64(assets.TokenID),
			Pending:  fromAssetIDs(assets.Pending),
			Accepted: fromAssetIDs(assets.Accepted),
		}
		for i := range file.TokenAssets {
			if file.TokenAssets[i].TokenID == encoded.TokenID {
				file.TokenAssets[i] = encoded
				return nil
			}
		}
		file.TokenAssets = append(file.TokenAssets, encoded)
		return nil
	})
}

func (t *TokenRepository) OwnerOf(ctx context.Context, token domain.TokenID) (domain.AccountID, bool, error) {
	var (
		owner domain.AccountID
		found bool
	)
	err := t.repo.view(ctx, func(file fileSchema) error {
		for _, entry := range file.Tokens {
			if entry.ID == u64(token) {
				owner, found = domain.AccountID(entry.Owner), true
				break
			}
		}
		return nil
	})
	return owner, found, err
}

func (t *TokenRepository) Mint(ctx context.Context, token domain.TokenID, owner domain.AccountID) error {
	if owner == "" {
		return domain.ErrAccountRequired
	}
	return t.repo.update(ctx, func(file *fileSchema) error {
		for _, entry := range file.Tokens {
			if entry.ID == u64(token) {
				return domain.ErrTokenExists
			}
		}
		file.Tokens = append(file.Tokens, tokenSchema{ID: u64(token), Owner: string(owner)})
		return nil
	})
}

func (p *PetRepository) Get(ctx context.Context, token domain.TokenID) (domain.Pet, error) {
	var pet domain.Pet
	err := p.repo.view(ctx, func(file fileSchema) error {
		for _, entry := range file.Pets {
			if entry.TokenID == u64(token) {
				pet = fromPetSchema(entry)
				return nil
			}
		}
		return domain.ErrPetNotFound
	})
	return pet, err
}

func (p *PetRepository) Save(ctx context.Context, pet domain.Pet) error {
	return p.repo.update(ctx, func(file *fileSchema) error {
		encoded := toPetSchema(pet)
		for i := range file.Pets {
			if file.Pets[i].TokenID == encoded.TokenID {
				file.Pets[i] = encoded
				return nil
			}
		}
		file.Pets = append(file.Pets, encoded)
		return nil
	})
}

func (w *WalletRepository) Get(ctx context.Context, account domain.AccountID) (domain.Wallet, error) {
	var wallet domain.Wallet
	err := w.repo.view(ctx, func(file fileSchema) error {
		for _, entry := range file.Wallets {
			if entry.Account == string(account) {
				wallet = fromWalletSchema(entry)
				return nil
			}
		}
		return domain.ErrWalletNotFound
	})
	return wallet, err
}

func (w *WalletRepository) Save(ctx context.Context, wallet domain.Wallet) error {
	return w.repo.update(ctx, func(file *fileSchema) error {
		encoded := toWalletSchema(wallet)
		for i := range file.Wallets {
			if file.Wallets[i].Account == encoded.Account {
				file.Wallets[i] = encoded
				return nil
			}
		}
		file.Wallets = append(file.Wallets, encoded)
		return nil
	})
}

func (w *WalletRepository) List(ctx context.Context) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	err := w.repo.view(ctx, func(file fileSchema) error {
		wallets = make([]domain.Wallet, 0, len(file.Wallets))
		for _, entry := range file.Wallets {
			wallets = append(wallets, fromWalletSchema(entry))
		}
		return nil
	})
	return wallets, err
}

func (s *SettingsRepository) ConditionURIs(ctx context.Context) (domain.ConditionURIs, error) {
	var uris domain.ConditionURIs
	err := s.repo.view(ctx, func(file fileSchema) error {
		if file.ConditionURIs != nil {
			uris = domain.ConditionURIs{
				Bad:    file.ConditionURIs.Bad,
				Normal: file.ConditionURIs.Normal,
				Good:   file.ConditionURIs.Good,
			}
		}
		return nil
	})
	return uris, err
}

func (s *SettingsRepository) SaveConditionURIs(ctx context.Context, uris domain.ConditionURIs) error {
	return s.repo.update(ctx, func(file *fileSchema) error {
		file.ConditionURIs = &conditionURISchema{Bad: uris.Bad, Normal: uris.Normal, Good: uris.Good}
		return nil
	})
}

func (s *SaltStore) LoadSalt(ctx context.Context) (uint64, error) {
	var salt uint64
	err := s.repo.view(ctx, func(file fileSchema) error {
		salt = uint64(file.Salt)
		return nil
	})
	return salt, err
}

func (s *SaltStore) SaveSalt(ctx context.Context, salt uint64) error {
	return s.repo.update(ctx, func(file *fileSchema) error {
		file.Salt = u64(salt)
		return nil
	})
}

func toAssetSchema(asset domain.AssetDefinition) assetSchema {
	parts := make([]uint32, 0, len(asset.PartIDs))
	for _, part := range asset.PartIDs {
		parts = append(parts, uint32(part))
	}

	return assetSchema{
		ID:                uint32(asset.ID),
		CatalogRef:        asset.CatalogRef,
		EquippableGroupID: u64(asset.EquippableGroupID),
		URI:               asset.URI,
		PartIDs:           parts,
	}
}

func fromAssetSchema(entry assetSchema) domain.AssetDefinition {
	var parts []domain.PartID
	for _, part := range entry.PartIDs {
		parts = append(parts, domain.PartID(part))
	}

	return domain.AssetDefinition{
		ID:                domain.AssetID(entry.ID),
		CatalogRef:        entry.CatalogRef,
		EquippableGroupID: domain.EquippableGroupID(entry.EquippableGroupID),
		URI:               entry.URI,
		PartIDs:           parts,
	}
}

func toPetSchema(pet domain.Pet) petSchema {
	return petSchema{
		TokenID:     u64(pet.TokenID),
		Hungry:      pet.Status.Hungry,
		Health:      pet.Status.Health,
		Happy:       pet.Status.Happy,
		LastEatenAt: u64(pet.LastEatenAt),
	}
}

func fromPetSchema(entry petSchema) domain.Pet {
	return domain.Pet{
		TokenID:     domain.TokenID(entry.TokenID),
		Status:      domain.Status{Hungry: entry.Hungry, Health: entry.Health, Happy: entry.Happy},
		LastEatenAt: domain.Timestamp(entry.LastEatenAt),
	}
}

func toWalletSchema(wallet domain.Wallet) walletSchema {
	return walletSchema{
		Account:      string(wallet.AccountID),
		Fruit:        wallet.Fruit,
		Balance:      u64(wallet.Balance),
		Staked:       u64(wallet.Staked),
		LastStakedAt: u64(wallet.LastStakedAt),
		LastBonusAt:  u64(wallet.LastBonusAt),
	}
}

func fromWalletSchema(entry walletSchema) domain.Wallet {
	return domain.Wallet{
		AccountID:    domain.AccountID(entry.Account),
		Fruit:        entry.Fruit,
		Balance:      uint64(entry.Balance),
		Staked:       uint64(entry.Staked),
		LastStakedAt: domain.Timestamp(entry.LastStakedAt),
		LastBonusAt:  domain.Timestamp(entry.LastBonusAt),
	}
}

func toAssetIDs(raw []uint32) []domain.AssetID {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]domain.AssetID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.AssetID(id))
	}
	return ids
}

func fromAssetIDs(ids []domain.AssetID) []uint32 {
	raw := make([]uint32, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, uint32(id))
	}
	return raw
}
