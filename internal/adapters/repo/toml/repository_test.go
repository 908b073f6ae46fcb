package toml

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/tamago/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, ledgerPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(StatePathKey, ledgerPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryAssetsRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "ledger.toml"))
	ctx := context.Background()

	first := domain.AssetDefinition{ID: 7, CatalogRef: "catalog-1", EquippableGroupID: 2, URI: "ipfs://seven", PartIDs: []domain.PartID{1, 2}}
	second := domain.AssetDefinition{ID: 3, URI: "ipfs://three"}

	require.NoError(t, repo.Assets().Insert(ctx, first))
	require.NoError(t, repo.Assets().Insert(ctx, second))
	require.ErrorIs(t, repo.Assets().Insert(ctx, first), domain.ErrAssetExists)

	got, err := repo.Assets().Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	assets, err := repo.Assets().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetDefinition{first, second}, assets)

	count, err := repo.Assets().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)
}

func TestRepositoryTokensAndTokenAssets(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "ledger.toml"))
	ctx := context.Background()

	_, ok, err := repo.Tokens().OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Tokens().Mint(ctx, 1, "alice"))
	require.ErrorIs(t, repo.Tokens().Mint(ctx, 1, "bob"), domain.ErrTokenExists)
	require.ErrorIs(t, repo.Tokens().Mint(ctx, 2, ""), domain.ErrAccountRequired)

	owner, ok, err := repo.Tokens().OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.AccountID("alice"), owner)

	empty, err := repo.TokenAssets().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenAssets{TokenID: 1}, empty)

	state := domain.TokenAssets{TokenID: 1, Pending: []domain.AssetID{4}, Accepted: []domain.AssetID{2, 1}}
	require.NoError(t, repo.TokenAssets().Save(ctx, state))
	state.Pending = nil
	require.NoError(t, repo.TokenAssets().Save(ctx, state))

	got, err := repo.TokenAssets().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestRepositoryPetsWalletsSettingsAndSalt(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "ledger.toml"))
	ctx := context.Background()

	_, err := repo.Pets().Get(ctx, 1)
	require.ErrorIs(t, err, domain.ErrPetNotFound)
	_, err = repo.Wallets().Get(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrWalletNotFound)

	pet := domain.Pet{TokenID: 1, Status: domain.Status{Hungry: 5, Health: 70, Happy: 40}, LastEatenAt: 1_700_000_000_000}
	require.NoError(t, repo.Pets().Save(ctx, pet))
	gotPet, err := repo.Pets().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, pet, gotPet)

	wallet := domain.Wallet{AccountID: "alice", Fruit: 9, Balance: 480, Staked: 20, LastStakedAt: 1_700_000_000_000, LastBonusAt: 1_700_000_100_000}
	require.NoError(t, repo.Wallets().Save(ctx, wallet))
	wallet.Fruit = 8
	require.NoError(t, repo.Wallets().Save(ctx, wallet))
	gotWallet, err := repo.Wallets().Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, wallet, gotWallet)

	wallets, err := repo.Wallets().List(ctx)
	require.NoError(t, err)
	assert.Len(t, wallets, 1)

	uris, err := repo.Settings().ConditionURIs(ctx)
	require.NoError(t, err)
	assert.True(t, uris.IsZero())
	require.NoError(t, repo.Settings().SaveConditionURIs(ctx, domain.DefaultConditionURIs))
	uris, err = repo.Settings().ConditionURIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConditionURIs, uris)

	require.NoError(t, repo.Salt().SaveSalt(ctx, 12))
	salt, err := repo.Salt().LoadSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), salt)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Wallets().Save(context.Background(), domain.Wallet{AccountID: "alice", Fruit: 10, Balance: 500}))

	ledgerPath := filepath.Join(homeDir, ".tamago", "ledger.toml")
	assert.Equal(t, ledgerPath, repo.Path())
	info, err := os.Stat(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "ledger.toml"))

	assets, err := repo.Assets().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)

	_, err = repo.Assets().Get(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(ledgerPath, []byte("assets = ["), 0o600))

	repo := newTestRepository(t, ledgerPath)

	_, err := repo.Assets().List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode ledger file")
}

func TestRepositoryFailedUpdateDoesNotWrite(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	repo := newTestRepository(t, ledgerPath)
	ctx := context.Background()

	require.NoError(t, repo.Assets().Insert(ctx, domain.AssetDefinition{ID: 1, URI: "ipfs://one"}))
	before, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)

	require.ErrorIs(t, repo.Assets().Insert(ctx, domain.AssetDefinition{ID: 1, URI: "ipfs://other"}), domain.ErrAssetExists)

	after, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "ledger.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Pets().Save(ctx, domain.Pet{TokenID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveBothWallets(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	repoA := newTestRepository(t, ledgerPath)
	repoB := newTestRepository(t, ledgerPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			account := domain.AccountID(prefix + strings.Repeat("x", i))
			errCh <- repo.Wallets().Save(context.Background(), domain.Wallet{AccountID: account, Balance: uint64(i)})
		}
	}
	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	wallets, err := repoA.Wallets().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, wallets, perRepoWrites*2)
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	repo := newTestRepository(t, ledgerPath)

	require.NoError(t, repo.Salt().SaveSalt(context.Background(), 1))

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 2")
	assert.Contains(t, string(data), "salt = '1'")
}

func TestRepositoryRoundTripsFullUint64Range(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	repo := newTestRepository(t, ledgerPath)
	ctx := context.Background()

	const token = domain.TokenID(math.MaxUint64)

	require.NoError(t, repo.Tokens().Mint(ctx, token, "alice"))
	require.NoError(t, repo.TokenAssets().Save(ctx, domain.TokenAssets{TokenID: token, Accepted: []domain.AssetID{1}}))
	pet := domain.Pet{TokenID: token, Status: domain.Status{Health: 1}, LastEatenAt: math.MaxUint64}
	require.NoError(t, repo.Pets().Save(ctx, pet))
	wallet := domain.Wallet{AccountID: "alice", Balance: math.MaxUint64, Staked: 1 << 63, LastStakedAt: math.MaxUint64, LastBonusAt: 1 << 63}
	require.NoError(t, repo.Wallets().Save(ctx, wallet))
	asset := domain.AssetDefinition{ID: 1, EquippableGroupID: math.MaxUint64, URI: "ipfs://max"}
	require.NoError(t, repo.Assets().Insert(ctx, asset))
	require.NoError(t, repo.Salt().SaveSalt(ctx, math.MaxUint64))

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "balance = '18446744073709551615'")

	reopened := newTestRepository(t, ledgerPath)

	owner, ok, err := reopened.Tokens().OwnerOf(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.AccountID("alice"), owner)

	assets, err := reopened.TokenAssets().Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{1}, assets.Accepted)

	gotPet, err := reopened.Pets().Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, pet, gotPet)

	gotWallet, err := reopened.Wallets().Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, wallet, gotWallet)

	gotAsset, err := reopened.Assets().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, asset, gotAsset)

	salt, err := reopened.Salt().LoadSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), salt)
}

func TestRepositoryReadsVersionOneIntegerFields(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(ledgerPath, []byte(strings.Join([]string{
		"version = 1",
		"salt = 7",
		"",
		"[[wallets]]",
		"account = 'alice'",
		"fruit = 3",
		"balance = 1_000",
		"staked = 0",
		"last_staked_at = 0",
		"last_bonus_at = 1700000000000",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, ledgerPath)
	ctx := context.Background()

	salt, err := repo.Salt().LoadSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), salt)

	wallet, err := repo.Wallets().Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Wallet{AccountID: "alice", Fruit: 3, Balance: 1000, LastBonusAt: 1_700_000_000_000}, wallet)

	require.NoError(t, repo.Salt().SaveSalt(ctx, 8))
	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 2")
	assert.Contains(t, string(data), "balance = '1000'")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(ledgerPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"assets = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, ledgerPath)

	_, err := repo.Assets().List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported ledger schema version")
}
