package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

type PetService struct {
	pets     ports.PetRepository
	wallets  ports.WalletRepository
	settings ports.SettingsRepository
	tokens   ports.TokenRegistry
	authz    ports.Authorizer
	random   ports.RandomSource
	clock    ports.Clock
	locks    *Locks
	logger   *slog.Logger
}

func NewPetService(
	pets ports.PetRepository,
	wallets ports.WalletRepository,
	settings ports.SettingsRepository,
	tokens ports.TokenRegistry,
	authz ports.Authorizer,
	random ports.RandomSource,
	clock ports.Clock,
	locks *Locks,
) *PetService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if locks == nil {
		locks = NewLocks()
	}

	return &PetService{
		pets:     pets,
		wallets:  wallets,
		settings: settings,
		tokens:   tokens,
		authz:    authz,
		random:   random,
		clock:    clock,
		locks:    locks,
		logger:   discardLogger(),
	}
}

func (s *PetService) WithLogger(logger *slog.Logger) *PetService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Feed spends one fruit from account and rolls a new status for token.
// Every guard runs before anything is written.
func (s *PetService) Feed(ctx context.Context, token domain.TokenID, account domain.AccountID) (result FeedResult, err error) {
	defer func() {
		logOutcome(ctx, s.logger, "feed", err, tokenAttr(token), accountAttr(account), slog.String("outcome", string(result.Outcome)))
	}()
	now := domain.TimestampFrom(s.clock.Now())

	if account == "" {
		return FeedResult{}, domain.ErrAccountRequired
	}
	if _, err := ownerOf(ctx, s.tokens, token); err != nil {
		return FeedResult{}, err
	}

	unlockToken := s.locks.token(token)
	defer unlockToken()
	unlockAccount := s.locks.account(account)
	defer unlockAccount()

	pet, err := s.loadPet(ctx, token)
	if err != nil {
		return FeedResult{}, err
	}
	if !domain.FiveMinuteGate.Open(pet.LastEatenAt, now) {
		return FeedResult{}, fmt.Errorf("feed token %d: %w", token, domain.ErrCooldownActive)
	}
	originalPet := pet

	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return FeedResult{}, err
	}
	originalWallet := wallet
	if err := wallet.SpendFruit(); err != nil {
		return FeedResult{}, err
	}

	roll, err := s.random.Reserve(ctx, now, domain.FeedRollMax)
	if err != nil {
		return FeedResult{}, fmt.Errorf("draw feed outcome: %w", err)
	}
	defer roll.Release()
	outcome := domain.OutcomeForRoll(roll.Value)

	pet.LastEatenAt = now
	pet.Status = outcome.Apply(pet.Status)

	if err := s.wallets.Save(ctx, wallet); err != nil {
		return FeedResult{}, fmt.Errorf("save wallet %s: %w", account, err)
	}
	if err := s.pets.Save(ctx, pet); err != nil {
		if rollbackErr := s.wallets.Save(ctx, originalWallet); rollbackErr != nil {
			return FeedResult{}, fmt.Errorf("save pet %d and rollback wallet: %w", token, errors.Join(err, rollbackErr))
		}
		return FeedResult{}, fmt.Errorf("save pet %d: %w", token, err)
	}
	if err := roll.Commit(ctx); err != nil {
		rollbackErr := errors.Join(s.pets.Save(ctx, originalPet), s.wallets.Save(ctx, originalWallet))
		if rollbackErr != nil {
			return FeedResult{}, fmt.Errorf("commit feed draw and rollback: %w", errors.Join(err, rollbackErr))
		}
		return FeedResult{}, fmt.Errorf("commit feed draw: %w", err)
	}

	return FeedResult{
		TokenID: token,
		Account: account,
		Roll:    roll.Value,
		Outcome: outcome,
		Status:  pet.Status,
		Fruit:   wallet.Fruit,
	}, nil
}

// CurrentStatus is the stored snapshot decayed to now. Tokens without a
// record read as zeros.
func (s *PetService) CurrentStatus(ctx context.Context, token domain.TokenID) (domain.Status, error) {
	now := domain.TimestampFrom(s.clock.Now())

	pet, err := s.loadPet(ctx, token)
	if err != nil {
		return domain.Status{}, err
	}
	return pet.Current(now), nil
}

func (s *PetService) StoredStatus(ctx context.Context, token domain.TokenID) (domain.Status, error) {
	pet, err := s.loadPet(ctx, token)
	if err != nil {
		return domain.Status{}, err
	}
	return pet.Status, nil
}

func (s *PetService) LastEatenAt(ctx context.Context, token domain.TokenID) (domain.Timestamp, error) {
	pet, err := s.loadPet(ctx, token)
	if err != nil {
		return 0, err
	}
	return pet.LastEatenAt, nil
}

func (s *PetService) TotalStatus(ctx context.Context, token domain.TokenID) (uint32, error) {
	status, err := s.CurrentStatus(ctx, token)
	if err != nil {
		return 0, err
	}
	return status.Total(), nil
}

func (s *PetService) ConditionTier(ctx context.Context, token domain.TokenID) (domain.Tier, error) {
	status, err := s.CurrentStatus(ctx, token)
	if err != nil {
		return domain.TierBad, err
	}
	return status.Tier(), nil
}

func (s *PetService) ConditionURI(ctx context.Context, token domain.TokenID) (string, error) {
	view, err := s.Status(ctx, token)
	if err != nil {
		return "", err
	}
	return view.ConditionURI, nil
}

func (s *PetService) TokenURI(ctx context.Context, token domain.TokenID) (string, error) {
	view, err := s.Status(ctx, token)
	if err != nil {
		return "", err
	}
	return view.TokenURI, nil
}

// Status gathers every status read for token against a single clock
// reading.
func (s *PetService) Status(ctx context.Context, token domain.TokenID) (PetStatus, error) {
	nowTime := s.clock.Now()
	now := domain.TimestampFrom(nowTime)

	pet, err := s.loadPet(ctx, token)
	if err != nil {
		return PetStatus{}, err
	}
	uris, err := s.ConditionURIs(ctx)
	if err != nil {
		return PetStatus{}, err
	}

	current := pet.Current(now)
	tier := current.Tier()
	base := uris.For(tier)

	view := PetStatus{
		TokenID:      token,
		Stored:       pet.Status,
		Current:      current,
		Total:        current.Total(),
		Tier:         tier,
		ConditionURI: base,
		TokenURI:     domain.TokenURI(base, token),
		LastEatenAt:  pet.LastEatenAt.Time(),
		AsOf:         nowTime,
	}
	if !pet.LastEatenAt.IsZero() {
		view.NextFeedAt = domain.FiveMinuteGate.ReadyAt(pet.LastEatenAt).Time()
	}

	return view, nil
}

func (s *PetService) SetStatus(ctx context.Context, cmd SetStatusCommand) (err error) {
	defer func() { logOutcome(ctx, s.logger, "set status", err, tokenAttr(cmd.Token), accountAttr(cmd.Caller)) }()
	if !s.authz.Authorize(domain.ActionSetStatus, cmd.Caller) {
		return fmt.Errorf("set status on token %d as %s: %w", cmd.Token, cmd.Caller, domain.ErrNotAuthorized)
	}
	if _, err := ownerOf(ctx, s.tokens, cmd.Token); err != nil {
		return err
	}

	unlock := s.locks.token(cmd.Token)
	defer unlock()

	pet, err := s.loadPet(ctx, cmd.Token)
	if err != nil {
		return err
	}
	pet.Status = cmd.Status

	if err := s.pets.Save(ctx, pet); err != nil {
		return fmt.Errorf("save pet %d: %w", cmd.Token, err)
	}
	return nil
}

func (s *PetService) SetFullStatus(ctx context.Context, caller domain.AccountID, token domain.TokenID) error {
	return s.SetStatus(ctx, SetStatusCommand{Caller: caller, Token: token, Status: domain.FullStatus})
}

func (s *PetService) SetDeathStatus(ctx context.Context, caller domain.AccountID, token domain.TokenID) error {
	return s.SetStatus(ctx, SetStatusCommand{Caller: caller, Token: token, Status: domain.DeathStatus})
}

// ConditionURIs returns the stored tier URIs, falling back to the
// defaults until any have been saved.
func (s *PetService) ConditionURIs(ctx context.Context) (domain.ConditionURIs, error) {
	uris, err := s.settings.ConditionURIs(ctx)
	if err != nil {
		return domain.ConditionURIs{}, fmt.Errorf("get condition uris: %w", err)
	}
	if uris.IsZero() {
		return domain.DefaultConditionURIs, nil
	}
	return uris, nil
}

func (s *PetService) SetConditionURI(ctx context.Context, cmd SetConditionURICommand) (err error) {
	defer func() { logOutcome(ctx, s.logger, "set condition uri", err, slog.String("tier", cmd.Tier.String())) }()
	if !s.authz.Authorize(domain.ActionSetURI, cmd.Caller) {
		return fmt.Errorf("set %s uri as %s: %w", cmd.Tier, cmd.Caller, domain.ErrNotAuthorized)
	}

	uris, err := s.ConditionURIs(ctx)
	if err != nil {
		return err
	}
	if err := uris.Set(cmd.Tier, cmd.URI); err != nil {
		return err
	}
	if err := s.settings.SaveConditionURIs(ctx, uris); err != nil {
		return fmt.Errorf("save condition uris: %w", err)
	}
	return nil
}

// ResetConditionURIs stores the default tier URIs.
func (s *PetService) ResetConditionURIs(ctx context.Context, caller domain.AccountID) error {
	if !s.authz.Authorize(domain.ActionSetURI, caller) {
		return fmt.Errorf("reset condition uris as %s: %w", caller, domain.ErrNotAuthorized)
	}
	if err := s.settings.SaveConditionURIs(ctx, domain.DefaultConditionURIs); err != nil {
		return fmt.Errorf("save condition uris: %w", err)
	}
	return nil
}

func (s *PetService) loadPet(ctx context.Context, token domain.TokenID) (domain.Pet, error) {
	pet, err := s.pets.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrPetNotFound) {
			return domain.Pet{}, fmt.Errorf("get pet %d: %w", token, err)
		}
		pet = domain.Pet{TokenID: token}
	}
	return pet, nil
}

func loadWallet(ctx context.Context, wallets ports.WalletRepository, account domain.AccountID) (domain.Wallet, error) {
	wallet, err := wallets.Get(ctx, account)
	if err != nil {
		if !errors.Is(err, domain.ErrWalletNotFound) {
			return domain.Wallet{}, fmt.Errorf("get wallet %s: %w", account, err)
		}
		wallet = domain.NewWallet(account)
	}
	return wallet, nil
}
