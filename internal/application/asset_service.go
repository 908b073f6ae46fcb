package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

type AssetService struct {
	assets   ports.AssetRepository
	ledger   ports.TokenAssetRepository
	tokens   ports.TokenRegistry
	authz    ports.Authorizer
	notifier ports.Notifier
	clock    ports.Clock
	locks    *Locks
	logger   *slog.Logger

	registryMu sync.Mutex
}

func NewAssetService(
	assets ports.AssetRepository,
	ledger ports.TokenAssetRepository,
	tokens ports.TokenRegistry,
	authz ports.Authorizer,
	notifier ports.Notifier,
	clock ports.Clock,
	locks *Locks,
) *AssetService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if locks == nil {
		locks = NewLocks()
	}

	return &AssetService{
		assets:   assets,
		ledger:   ledger,
		tokens:   tokens,
		authz:    authz,
		notifier: notifier,
		clock:    clock,
		locks:    locks,
		logger:   discardLogger(),
	}
}

func (s *AssetService) WithLogger(logger *slog.Logger) *AssetService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *AssetService) DefineAsset(ctx context.Context, cmd DefineAssetCommand) (err error) {
	defer func() {
		logOutcome(ctx, s.logger, "define asset", err, assetAttr(cmd.Asset.ID), accountAttr(cmd.Caller))
	}()
	now := domain.TimestampFrom(s.clock.Now())

	if !s.authz.Authorize(domain.ActionDefineAsset, cmd.Caller) {
		return fmt.Errorf("define asset %d as %s: %w", cmd.Asset.ID, cmd.Caller, domain.ErrNotAuthorized)
	}
	if err := cmd.Asset.Validate(); err != nil {
		return fmt.Errorf("validate asset %d: %w", cmd.Asset.ID, err)
	}

	s.registryMu.Lock()
	defer s.registryMu.Unlock()

	if err := s.assets.Insert(ctx, cmd.Asset.Clone()); err != nil {
		return fmt.Errorf("insert asset %d: %w", cmd.Asset.ID, err)
	}

	s.notify(ctx, domain.Event{Kind: domain.EventAssetDefined, AssetID: cmd.Asset.ID, At: now})
	return nil
}

func (s *AssetService) Asset(ctx context.Context, id domain.AssetID) (domain.AssetDefinition, error) {
	asset, err := s.assets.Get(ctx, id)
	if err != nil {
		return domain.AssetDefinition{}, fmt.Errorf("get asset %d: %w", id, err)
	}
	return asset, nil
}

func (s *AssetService) Assets(ctx context.Context) ([]domain.AssetDefinition, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (s *AssetService) AssetCount(ctx context.Context) (uint32, error) {
	count, err := s.assets.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return count, nil
}

// AttachAsset adds an asset to a token. The owner's own additions are
// accepted immediately; anyone else's land in pending. With Replaces set
// the new asset takes the replaced one's slot in the accepted list.
func (s *AssetService) AttachAsset(ctx context.Context, cmd AttachAssetCommand) (placement Placement, err error) {
	defer func() {
		logOutcome(ctx, s.logger, "attach asset", err, tokenAttr(cmd.Token), assetAttr(cmd.Asset), slog.String("placement", string(placement)))
	}()
	now := domain.TimestampFrom(s.clock.Now())

	if _, err := s.assets.Get(ctx, cmd.Asset); err != nil {
		return "", fmt.Errorf("get asset %d: %w", cmd.Asset, err)
	}
	owner, err := s.ownerOf(ctx, cmd.Token)
	if err != nil {
		return "", err
	}

	unlock := s.locks.token(cmd.Token)
	defer unlock()

	state, err := s.ledger.Get(ctx, cmd.Token)
	if err != nil {
		return "", fmt.Errorf("get token %d assets: %w", cmd.Token, err)
	}
	if err := state.EnsureAttachable(cmd.Asset); err != nil {
		return "", err
	}

	switch {
	case cmd.Replaces != nil:
		if err := state.Replace(cmd.Asset, *cmd.Replaces); err != nil {
			return "", err
		}
		placement = PlacementReplaced
	case cmd.Caller == owner:
		if err := state.AddAccepted(cmd.Asset); err != nil {
			return "", err
		}
		placement = PlacementAccepted
	default:
		if err := state.AddPending(cmd.Asset); err != nil {
			return "", err
		}
		placement = PlacementPending
	}

	if err := s.ledger.Save(ctx, state); err != nil {
		return "", fmt.Errorf("save token %d assets: %w", cmd.Token, err)
	}

	added := domain.Event{Kind: domain.EventAssetAdded, TokenID: cmd.Token, AssetID: cmd.Asset, At: now}
	if cmd.Replaces != nil {
		replaced := *cmd.Replaces
		added.ReplacesID = &replaced
	}
	s.notify(ctx, added)
	if placement == PlacementAccepted {
		s.notify(ctx, domain.Event{Kind: domain.EventAssetAccepted, TokenID: cmd.Token, AssetID: cmd.Asset, At: now})
	}

	return placement, nil
}

func (s *AssetService) AcceptAsset(ctx context.Context, caller domain.AccountID, token domain.TokenID, asset domain.AssetID) error {
	return s.ownerTransition(ctx, caller, token, asset, domain.EventAssetAccepted, (*domain.TokenAssets).Accept)
}

func (s *AssetService) RejectAsset(ctx context.Context, caller domain.AccountID, token domain.TokenID, asset domain.AssetID) error {
	return s.ownerTransition(ctx, caller, token, asset, domain.EventAssetRejected, (*domain.TokenAssets).Reject)
}

func (s *AssetService) RemoveAsset(ctx context.Context, caller domain.AccountID, token domain.TokenID, asset domain.AssetID) error {
	return s.ownerTransition(ctx, caller, token, asset, domain.EventAssetRemoved, (*domain.TokenAssets).Remove)
}

// ownerTransition checks the asset's current state first, then token
// existence, then ownership, each with its own error.
func (s *AssetService) ownerTransition(
	ctx context.Context,
	caller domain.AccountID,
	token domain.TokenID,
	asset domain.AssetID,
	kind domain.EventKind,
	apply func(*domain.TokenAssets, domain.AssetID) error,
) (err error) {
	defer func() { logOutcome(ctx, s.logger, string(kind), err, tokenAttr(token), assetAttr(asset)) }()
	now := domain.TimestampFrom(s.clock.Now())

	unlock := s.locks.token(token)
	defer unlock()

	state, err := s.ledger.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("get token %d assets: %w", token, err)
	}
	next := state.Clone()
	if err := apply(&next, asset); err != nil {
		return err
	}

	owner, err := s.ownerOf(ctx, token)
	if err != nil {
		return err
	}
	if caller != owner {
		return fmt.Errorf("%s on token %d as %s: %w", kind, token, caller, domain.ErrNotTokenOwner)
	}

	if err := s.ledger.Save(ctx, next); err != nil {
		return fmt.Errorf("save token %d assets: %w", token, err)
	}

	s.notify(ctx, domain.Event{Kind: kind, TokenID: token, AssetID: asset, At: now})
	return nil
}

func (s *AssetService) SetPriority(ctx context.Context, caller domain.AccountID, token domain.TokenID, priorities []domain.AssetID) (err error) {
	defer func() { logOutcome(ctx, s.logger, "set priority", err, tokenAttr(token)) }()
	now := domain.TimestampFrom(s.clock.Now())

	owner, err := s.ownerOf(ctx, token)
	if err != nil {
		return err
	}
	if caller != owner {
		return fmt.Errorf("set priority on token %d as %s: %w", token, caller, domain.ErrNotTokenOwner)
	}

	unlock := s.locks.token(token)
	defer unlock()

	state, err := s.ledger.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("get token %d assets: %w", token, err)
	}
	if err := state.SetPriority(priorities); err != nil {
		return err
	}
	if err := s.ledger.Save(ctx, state); err != nil {
		return fmt.Errorf("save token %d assets: %w", token, err)
	}

	s.notify(ctx, domain.Event{Kind: domain.EventPrioritySet, TokenID: token, Priorities: slices.Clone(priorities), At: now})
	return nil
}

func (s *AssetService) TokenAssets(ctx context.Context, token domain.TokenID) (TokenAssetsView, error) {
	owner, err := s.ownerOf(ctx, token)
	if err != nil {
		return TokenAssetsView{}, err
	}

	state, err := s.ledger.Get(ctx, token)
	if err != nil {
		return TokenAssetsView{}, fmt.Errorf("get token %d assets: %w", token, err)
	}

	return TokenAssetsView{
		TokenID:  token,
		Owner:    owner,
		Accepted: slices.Clone(state.Accepted),
		Pending:  slices.Clone(state.Pending),
	}, nil
}

func (s *AssetService) AcceptedAssets(ctx context.Context, token domain.TokenID) ([]domain.AssetID, error) {
	view, err := s.TokenAssets(ctx, token)
	if err != nil {
		return nil, err
	}
	return view.Accepted, nil
}

func (s *AssetService) PendingAssets(ctx context.Context, token domain.TokenID) ([]domain.AssetID, error) {
	view, err := s.TokenAssets(ctx, token)
	if err != nil {
		return nil, err
	}
	return view.Pending, nil
}

// TotalTokenAssets returns the accepted and pending counts.
func (s *AssetService) TotalTokenAssets(ctx context.Context, token domain.TokenID) (accepted, pending int, err error) {
	view, err := s.TokenAssets(ctx, token)
	if err != nil {
		return 0, 0, err
	}
	return len(view.Accepted), len(view.Pending), nil
}

func (s *AssetService) AssetURI(ctx context.Context, id domain.AssetID) (string, error) {
	asset, err := s.Asset(ctx, id)
	if err != nil {
		return "", err
	}
	return asset.URI, nil
}

func (s *AssetService) AssetCatalogRef(ctx context.Context, id domain.AssetID) (string, error) {
	asset, err := s.Asset(ctx, id)
	if err != nil {
		return "", err
	}
	return asset.CatalogRef, nil
}

func (s *AssetService) ownerOf(ctx context.Context, token domain.TokenID) (domain.AccountID, error) {
	return ownerOf(ctx, s.tokens, token)
}

func (s *AssetService) notify(ctx context.Context, event domain.Event) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, event)
	}
}

func ownerOf(ctx context.Context, tokens ports.TokenRegistry, token domain.TokenID) (domain.AccountID, error) {
	owner, ok, err := tokens.OwnerOf(ctx, token)
	if err != nil {
		return "", fmt.Errorf("owner of token %d: %w", token, err)
	}
	if !ok {
		return "", fmt.Errorf("token %d: %w", token, domain.ErrTokenNotFound)
	}
	return owner, nil
}
