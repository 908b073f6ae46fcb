// Package memory holds every ledger in process memory. It backs tests
// and hosts that do not need persistence.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

type Store struct {
	mu          sync.RWMutex
	assets      map[domain.AssetID]domain.AssetDefinition
	assetOrder  []domain.AssetID
	owners      map[domain.TokenID]domain.AccountID
	tokenAssets map[domain.TokenID]domain.TokenAssets
	pets        map[domain.TokenID]domain.Pet
	wallets     map[domain.AccountID]domain.Wallet
	uris        domain.ConditionURIs
	salt        uint64
}

func NewStore() *Store {
	return &Store{
		assets:      map[domain.AssetID]domain.AssetDefinition{},
		owners:      map[domain.TokenID]domain.AccountID{},
		tokenAssets: map[domain.TokenID]domain.TokenAssets{},
		pets:        map[domain.TokenID]domain.Pet{},
		wallets:     map[domain.AccountID]domain.Wallet{},
	}
}

type AssetRepository struct{ s *Store }
type TokenAssetRepository struct{ s *Store }
type TokenRepository struct{ s *Store }
type PetRepository struct{ s *Store }
type WalletRepository struct{ s *Store }
type SettingsRepository struct{ s *Store }
type SaltStore struct{ s *Store }

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

func (s *Store) Assets() *AssetRepository           { return &AssetRepository{s: s} }
func (s *Store) TokenAssets() *TokenAssetRepository { return &TokenAssetRepository{s: s} }
func (s *Store) Tokens() *TokenRepository           { return &TokenRepository{s: s} }
func (s *Store) Pets() *PetRepository               { return &PetRepository{s: s} }
func (s *Store) Wallets() *WalletRepository         { return &WalletRepository{s: s} }
func (s *Store) Settings() *SettingsRepository      { return &SettingsRepository{s: s} }
func (s *Store) Salt() *SaltStore                   { return &SaltStore{s: s} }

func (r *AssetRepository) Get(ctx context.Context, id domain.AssetID) (domain.AssetDefinition, error) {
	if err := ctx.Err(); err != nil {
		return domain.AssetDefinition{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	asset, ok := r.s.assets[id]
	if !ok {
		return domain.AssetDefinition{}, domain.ErrAssetNotFound
	}
	return asset.Clone(), nil
}

func (r *AssetRepository) Insert(ctx context.Context, asset domain.AssetDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.assets[asset.ID]; ok {
		return domain.ErrAssetExists
	}
	r.s.assets[asset.ID] = asset.Clone()
	r.s.assetOrder = append(r.s.assetOrder, asset.ID)
	return nil
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.AssetDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	assets := make([]domain.AssetDefinition, 0, len(r.s.assetOrder))
	for _, id := range r.s.assetOrder {
		assets = append(assets, r.s.assets[id].Clone())
	}
	return assets, nil
}

func (r *AssetRepository) Count(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return uint32(len(r.s.assetOrder)), nil
}

func (r *TokenAssetRepository) Get(ctx context.Context, token domain.TokenID) (domain.TokenAssets, error) {
	if err := ctx.Err(); err != nil {
		return domain.TokenAssets{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	state, ok := r.s.tokenAssets[token]
	if !ok {
		return domain.TokenAssets{TokenID: token}, nil
	}
	return state.Clone(), nil
}

func (r *TokenAssetRepository) Save(ctx context.Context, assets domain.TokenAssets) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tokenAssets[assets.TokenID] = assets.Clone()
	return nil
}

func (r *TokenRepository) OwnerOf(ctx context.Context, token domain.TokenID) (domain.AccountID, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owner, ok := r.s.owners[token]
	return owner, ok, nil
}

func (r *TokenRepository) Mint(ctx context.Context, token domain.TokenID, owner domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if owner == "" {
		return domain.ErrAccountRequired
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[token]; ok {
		return domain.ErrTokenExists
	}
	r.s.owners[token] = owner
	return nil
}

func (r *PetRepository) Get(ctx context.Context, token domain.TokenID) (domain.Pet, error) {
	if err := ctx.Err(); err != nil {
		return domain.Pet{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	pet, ok := r.s.pets[token]
	if !ok {
		return domain.Pet{}, domain.ErrPetNotFound
	}
	return pet, nil
}

func (r *PetRepository) Save(ctx context.Context, pet domain.Pet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.pets[pet.TokenID] = pet
	return nil
}

func (r *WalletRepository) Get(ctx context.Context, account domain.AccountID) (domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return domain.Wallet{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wallet, ok := r.s.wallets[account]
	if !ok {
		return domain.Wallet{}, domain.ErrWalletNotFound
	}
	return wallet, nil
}

func (r *WalletRepository) Save(ctx context.Context, wallet domain.Wallet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.wallets[wallet.AccountID] = wallet
	return nil
}

// List returns wallets ordered by account id.
func (r *WalletRepository) List(ctx context.Context) ([]domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wallets := make([]domain.Wallet, 0, len(r.s.wallets))
	for _, wallet := range r.s.wallets {
		wallets = append(wallets, wallet)
	}
	slices.SortFunc(wallets, func(a, b domain.Wallet) int {
		return strings.Compare(string(a.AccountID), string(b.AccountID))
	})
	return wallets, nil
}

func (r *SettingsRepository) ConditionURIs(ctx context.Context) (domain.ConditionURIs, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConditionURIs{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.uris, nil
}

func (r *SettingsRepository) SaveConditionURIs(ctx context.Context, uris domain.ConditionURIs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.uris = uris
	return nil
}

func (r *SaltStore) LoadSalt(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.salt, nil
}

func (r *SaltStore) SaveSalt(ctx context.Context, salt uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.salt = salt
	return nil
}
