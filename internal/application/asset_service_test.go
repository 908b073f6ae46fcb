package application

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/bnema/tamago/internal/adapters/repo/memory"
	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServiceDefineAsset(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	asset := domain.AssetDefinition{ID: 7, CatalogRef: "catalog", EquippableGroupID: 1, URI: "ipfs://seven", PartIDs: []domain.PartID{1, 2}}

	require.NoError(t, f.assets.DefineAsset(ctx, DefineAssetCommand{Caller: adminAccount, Asset: asset}))

	err := f.assets.DefineAsset(ctx, DefineAssetCommand{Caller: adminAccount, Asset: asset})
	require.ErrorIs(t, err, domain.ErrAssetExists)
	assert.ErrorIs(t, err, domain.KindAlreadyExists)

	count, err := f.assets.AssetCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count)

	uri, err := f.assets.AssetURI(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://seven", uri)
	ref, err := f.assets.AssetCatalogRef(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "catalog", ref)

	assert.Equal(t, []domain.EventKind{domain.EventAssetDefined}, f.notifier.Kinds())
}

func TestAssetServiceDefineAssetDeniedByAuthorizer(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	authz := mocks.NewMockAuthorizer(t)
	clock := mocks.NewMockClock(t)
	notifier := &recordingNotifier{}
	ctx := context.Background()

	clock.EXPECT().Now().Return(baseTime)
	authz.EXPECT().Authorize(domain.ActionDefineAsset, domain.AccountID("mallory")).Return(false).Once()

	service := NewAssetService(store.Assets(), store.TokenAssets(), store.Tokens(), authz, notifier, clock, nil)

	err := service.DefineAsset(ctx, DefineAssetCommand{Caller: "mallory", Asset: domain.AssetDefinition{ID: 1, URI: "ipfs://one"}})
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.ErrorIs(t, err, domain.KindNotAuthorized)

	count, err := service.AssetCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, notifier.Kinds())
}

func TestAssetServiceAttachChecksTokenRegistry(t *testing.T) {
	t.Parallel()

	registryErr := errors.New("registry unavailable")
	tests := []struct {
		name    string
		owner   domain.AccountID
		ok      bool
		err     error
		wantErr error
	}{
		{name: "unknown token", wantErr: domain.ErrTokenNotFound},
		{name: "registry failure", err: registryErr, wantErr: registryErr},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := memory.NewStore()
			ctx := context.Background()
			tokens := mocks.NewMockTokenRegistry(t)
			notifier := &recordingNotifier{}
			service := NewAssetService(store.Assets(), store.TokenAssets(), tokens, adminOnly{}, notifier, newFakeClock(baseTime), nil)
			require.NoError(t, service.DefineAsset(ctx, DefineAssetCommand{Caller: adminAccount, Asset: domain.AssetDefinition{ID: 1, URI: "ipfs://one"}}))

			tokens.EXPECT().OwnerOf(mockAnyContext(), domain.TokenID(9)).Return(tc.owner, tc.ok, tc.err).Once()

			_, err := service.AttachAsset(ctx, AttachAssetCommand{Caller: adminAccount, Token: 9, Asset: 1})
			require.ErrorIs(t, err, tc.wantErr)

			state, err := store.TokenAssets().Get(ctx, 9)
			require.NoError(t, err)
			assert.Empty(t, state.Pending)
			assert.Empty(t, state.Accepted)
			assert.Equal(t, []domain.EventKind{domain.EventAssetDefined}, notifier.Kinds())
		})
	}
}

func TestAssetServiceDefineAssetGuards(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	err := f.assets.DefineAsset(ctx, DefineAssetCommand{Caller: "mallory", Asset: domain.AssetDefinition{ID: 1}})
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	err = f.assets.DefineAsset(ctx, DefineAssetCommand{Caller: adminAccount, Asset: domain.AssetDefinition{ID: 1, PartIDs: []domain.PartID{3, 3}}})
	require.ErrorIs(t, err, domain.ErrInvalidPartList)

	_, err = f.assets.Asset(ctx, 1)
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
	assert.Empty(t, f.notifier.Kinds())
}

func TestAssetServiceAttachPlacement(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.mint(t, 1, "alice")
	f.define(t, 10, 11)

	placement, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 1, Asset: 10})
	require.NoError(t, err)
	assert.Equal(t, PlacementAccepted, placement)

	placement, err = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "bob", Token: 1, Asset: 11})
	require.NoError(t, err)
	assert.Equal(t, PlacementPending, placement)

	view, err := f.assets.TokenAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{10}, view.Accepted)
	assert.Equal(t, []domain.AssetID{11}, view.Pending)
	assert.Equal(t, domain.AccountID("alice"), view.Owner)

	assert.Equal(t, []domain.EventKind{
		domain.EventAssetDefined,
		domain.EventAssetDefined,
		domain.EventAssetAdded,
		domain.EventAssetAccepted,
		domain.EventAssetAdded,
	}, f.notifier.Kinds())
}

func TestAssetServiceAttachGuards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     AttachAssetCommand
		wantErr error
	}{
		{name: "unknown asset", cmd: AttachAssetCommand{Caller: "alice", Token: 1, Asset: 99}, wantErr: domain.ErrAssetNotFound},
		{name: "unknown token", cmd: AttachAssetCommand{Caller: "alice", Token: 2, Asset: 10}, wantErr: domain.ErrTokenNotFound},
		{name: "already accepted", cmd: AttachAssetCommand{Caller: "bob", Token: 1, Asset: 10}, wantErr: domain.ErrAlreadyAdded},
		{name: "already pending", cmd: AttachAssetCommand{Caller: "alice", Token: 1, Asset: 11}, wantErr: domain.ErrAlreadyPending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil)
			ctx := context.Background()
			f.mint(t, 1, "alice")
			f.define(t, 10, 11)
			_, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 1, Asset: 10})
			require.NoError(t, err)
			_, err = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "bob", Token: 1, Asset: 11})
			require.NoError(t, err)

			_, err = f.assets.AttachAsset(ctx, tc.cmd)
			require.ErrorIs(t, err, tc.wantErr)

			view, err := f.assets.TokenAssets(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, []domain.AssetID{10}, view.Accepted)
			assert.Equal(t, []domain.AssetID{11}, view.Pending)
		})
	}
}

func TestAssetServiceOwnerTransitions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.mint(t, 1, "alice")
	f.define(t, 10, 11, 12)
	for _, id := range []domain.AssetID{10, 11, 12} {
		_, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "bob", Token: 1, Asset: id})
		require.NoError(t, err)
	}

	require.ErrorIs(t, f.assets.AcceptAsset(ctx, "bob", 1, 10), domain.ErrNotTokenOwner)
	require.ErrorIs(t, f.assets.AcceptAsset(ctx, "alice", 1, 99), domain.ErrAssetNotFound)
	require.ErrorIs(t, f.assets.RemoveAsset(ctx, "alice", 1, 10), domain.ErrAssetNotFound)

	require.NoError(t, f.assets.AcceptAsset(ctx, "alice", 1, 11))
	require.NoError(t, f.assets.AcceptAsset(ctx, "alice", 1, 10))
	require.NoError(t, f.assets.RejectAsset(ctx, "alice", 1, 12))
	require.ErrorIs(t, f.assets.RejectAsset(ctx, "alice", 1, 12), domain.ErrAssetNotFound)

	accepted, err := f.assets.AcceptedAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{11, 10}, accepted)
	pending, err := f.assets.PendingAssets(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.ErrorIs(t, f.assets.RemoveAsset(ctx, "bob", 1, 11), domain.ErrNotTokenOwner)
	require.NoError(t, f.assets.RemoveAsset(ctx, "alice", 1, 11))

	acceptedCount, pendingCount, err := f.assets.TotalTokenAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, acceptedCount)
	assert.Equal(t, 0, pendingCount)

	assert.Equal(t, domain.Event{Kind: domain.EventAssetRemoved, TokenID: 1, AssetID: 11, At: domain.TimestampFrom(baseTime)}, f.notifier.Last())
}

func TestAssetServiceReplace(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.mint(t, 1, "alice")
	f.mint(t, 2, "alice")
	f.define(t, 10, 11, 12, 13)
	for _, id := range []domain.AssetID{10, 11} {
		_, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 1, Asset: id})
		require.NoError(t, err)
	}
	_, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "bob", Token: 1, Asset: 12})
	require.NoError(t, err)

	target := domain.AssetID(10)
	placement, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "bob", Token: 1, Asset: 13, Replaces: &target})
	require.NoError(t, err)
	assert.Equal(t, PlacementReplaced, placement)

	accepted, err := f.assets.AcceptedAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{13, 11}, accepted)

	last := f.notifier.Last()
	assert.Equal(t, domain.EventAssetAdded, last.Kind)
	require.NotNil(t, last.ReplacesID)
	assert.Equal(t, domain.AssetID(10), *last.ReplacesID)

	pendingTarget := domain.AssetID(12)
	_, err = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 1, Asset: 10, Replaces: &pendingTarget})
	require.ErrorIs(t, err, domain.ErrInvalidAssetID)

	_, err = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 2, Asset: 10, Replaces: &target})
	require.ErrorIs(t, err, domain.ErrAcceptedAssetsMissing)
}

func TestAssetServiceSetPriority(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.mint(t, 1, "alice")
	f.define(t, 1, 2, 3)
	for _, id := range []domain.AssetID{1, 2, 3} {
		_, err := f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: "alice", Token: 1, Asset: id})
		require.NoError(t, err)
	}

	require.ErrorIs(t, f.assets.SetPriority(ctx, "bob", 1, []domain.AssetID{3, 2, 1}), domain.ErrNotTokenOwner)
	require.ErrorIs(t, f.assets.SetPriority(ctx, "alice", 1, []domain.AssetID{3, 2}), domain.ErrBadPriorityLength)
	require.ErrorIs(t, f.assets.SetPriority(ctx, "alice", 1, []domain.AssetID{3, 2, 9}), domain.ErrAssetNotFound)
	require.ErrorIs(t, f.assets.SetPriority(ctx, "alice", 9, []domain.AssetID{}), domain.ErrTokenNotFound)

	accepted, err := f.assets.AcceptedAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{1, 2, 3}, accepted)

	require.NoError(t, f.assets.SetPriority(ctx, "alice", 1, []domain.AssetID{1, 2, 3}))
	require.NoError(t, f.assets.SetPriority(ctx, "alice", 1, []domain.AssetID{3, 1, 2}))

	accepted, err = f.assets.AcceptedAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetID{3, 1, 2}, accepted)
	assert.Equal(t, []domain.AssetID{3, 1, 2}, f.notifier.Last().Priorities)
}

func TestAssetServiceReadsRequireToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.assets.AcceptedAssets(ctx, 1)
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
	_, _, err = f.assets.TotalTokenAssets(ctx, 1)
	require.ErrorIs(t, err, domain.ErrTokenNotFound)

	f.mint(t, 1, "alice")
	view, err := f.assets.TokenAssets(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Accepted)
	assert.Empty(t, view.Pending)
}

func TestAssetServiceNeverPendingAndAccepted(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.mint(t, 1, "alice")
	ids := []domain.AssetID{1, 2, 3, 4, 5, 6}
	f.define(t, ids...)

	rng := rand.New(rand.NewSource(42))
	callers := []domain.AccountID{"alice", "bob"}

	for i := 0; i < 400; i++ {
		caller := callers[rng.Intn(len(callers))]
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(5) {
		case 0:
			_, _ = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: caller, Token: 1, Asset: id})
		case 1:
			target := ids[rng.Intn(len(ids))]
			_, _ = f.assets.AttachAsset(ctx, AttachAssetCommand{Caller: caller, Token: 1, Asset: id, Replaces: &target})
		case 2:
			_ = f.assets.AcceptAsset(ctx, caller, 1, id)
		case 3:
			_ = f.assets.RejectAsset(ctx, caller, 1, id)
		case 4:
			_ = f.assets.RemoveAsset(ctx, caller, 1, id)
		}

		view, err := f.assets.TokenAssets(ctx, 1)
		require.NoError(t, err)
		seen := map[domain.AssetID]int{}
		for _, accepted := range view.Accepted {
			seen[accepted]++
		}
		for _, pending := range view.Pending {
			seen[pending]++
		}
		for id, n := range seen {
			require.Equal(t, 1, n, "asset %d listed %d times after step %d", id, n, i)
		}
	}
}
