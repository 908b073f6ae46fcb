package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

type EconomyService struct {
	wallets ports.WalletRepository
	authz   ports.Authorizer
	clock   ports.Clock
	locks   *Locks
	logger  *slog.Logger
}

func NewEconomyService(wallets ports.WalletRepository, authz ports.Authorizer, clock ports.Clock, locks *Locks) *EconomyService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if locks == nil {
		locks = NewLocks()
	}

	return &EconomyService{wallets: wallets, authz: authz, clock: clock, locks: locks, logger: discardLogger()}
}

func (s *EconomyService) WithLogger(logger *slog.Logger) *EconomyService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *EconomyService) Wallet(ctx context.Context, account domain.AccountID) (WalletView, error) {
	nowTime := s.clock.Now()
	now := domain.TimestampFrom(nowTime)

	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return WalletView{}, err
	}

	view := WalletView{
		Account:            account,
		Fruit:              wallet.Fruit,
		Balance:            wallet.Balance,
		Staked:             wallet.Staked,
		StakedWithInterest: wallet.StakedWithInterest(now),
		LastStakedAt:       wallet.LastStakedAt.Time(),
		LastBonusAt:        wallet.LastBonusAt.Time(),
		AsOf:               nowTime,
	}
	if !wallet.LastBonusAt.IsZero() {
		view.NextBonusAt = domain.FiveMinuteGate.ReadyAt(wallet.LastBonusAt).Time()
	}
	return view, nil
}

func (s *EconomyService) Fruit(ctx context.Context, account domain.AccountID) (uint16, error) {
	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return 0, err
	}
	return wallet.Fruit, nil
}

func (s *EconomyService) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (s *EconomyService) LastBonusAt(ctx context.Context, account domain.AccountID) (domain.Timestamp, error) {
	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return 0, err
	}
	return wallet.LastBonusAt, nil
}

func (s *EconomyService) StakedWithInterest(ctx context.Context, account domain.AccountID) (uint64, error) {
	now := domain.TimestampFrom(s.clock.Now())

	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return 0, err
	}
	return wallet.StakedWithInterest(now), nil
}

func (s *EconomyService) BuyFruit(ctx context.Context, account domain.AccountID) error {
	return s.mutate(ctx, "buy fruit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		return w.BuyFruit()
	})
}

func (s *EconomyService) SpendFruit(ctx context.Context, account domain.AccountID) error {
	return s.mutate(ctx, "spend fruit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		return w.SpendFruit()
	})
}

func (s *EconomyService) Stake(ctx context.Context, account domain.AccountID, amount uint64) error {
	return s.mutate(ctx, "stake", account, func(w *domain.Wallet, now domain.Timestamp) error {
		return w.Stake(amount, now)
	})
}

// Withdraw returns the credited principal plus interest.
func (s *EconomyService) Withdraw(ctx context.Context, account domain.AccountID) (uint64, error) {
	var accrued uint64
	err := s.mutate(ctx, "withdraw", account, func(w *domain.Wallet, now domain.Timestamp) error {
		var err error
		accrued, err = w.Withdraw(now)
		return err
	})
	if err != nil {
		return 0, err
	}
	return accrued, nil
}

// ClaimDailyBonus only lets an account claim for itself.
func (s *EconomyService) ClaimDailyBonus(ctx context.Context, caller, account domain.AccountID) error {
	if caller != account {
		return fmt.Errorf("claim bonus for %s as %s: %w", account, caller, domain.ErrInvalidAccount)
	}
	return s.mutate(ctx, "claim bonus", account, func(w *domain.Wallet, now domain.Timestamp) error {
		return w.ClaimBonus(now)
	})
}

func (s *EconomyService) SetFruit(ctx context.Context, caller, account domain.AccountID, count uint16) error {
	if err := s.authorizeAdjust(caller, account); err != nil {
		return err
	}
	return s.mutate(ctx, "set fruit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		w.SetFruit(count)
		return nil
	})
}

func (s *EconomyService) AddFruit(ctx context.Context, caller, account domain.AccountID, n uint16) error {
	if err := s.authorizeAdjust(caller, account); err != nil {
		return err
	}
	return s.mutate(ctx, "add fruit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		return w.AddFruit(n)
	})
}

func (s *EconomyService) Credit(ctx context.Context, caller, account domain.AccountID, amount uint64) error {
	if err := s.authorizeAdjust(caller, account); err != nil {
		return err
	}
	return s.mutate(ctx, "credit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		return w.Credit(amount)
	})
}

func (s *EconomyService) Debit(ctx context.Context, caller, account domain.AccountID, amount uint64) error {
	if err := s.authorizeAdjust(caller, account); err != nil {
		return err
	}
	return s.mutate(ctx, "debit", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		return w.Debit(amount)
	})
}

// SeedWallet applies the starting fruit and balance to account.
func (s *EconomyService) SeedWallet(ctx context.Context, caller, account domain.AccountID) error {
	if err := s.authorizeAdjust(caller, account); err != nil {
		return err
	}
	return s.mutate(ctx, "seed wallet", account, func(w *domain.Wallet, _ domain.Timestamp) error {
		w.Seed()
		return nil
	})
}

func (s *EconomyService) authorizeAdjust(caller, account domain.AccountID) error {
	if !s.authz.Authorize(domain.ActionAdjustWallet, caller) {
		err := fmt.Errorf("adjust wallet %s as %s: %w", account, caller, domain.ErrNotAuthorized)
		logOutcome(context.Background(), s.logger, "adjust wallet", err, accountAttr(account), slog.String("caller", string(caller)))
		return err
	}
	return nil
}

// mutate runs apply on a copy of the wallet and saves it only when apply
// succeeds.
func (s *EconomyService) mutate(ctx context.Context, op string, account domain.AccountID, apply func(*domain.Wallet, domain.Timestamp) error) (err error) {
	defer func() { logOutcome(ctx, s.logger, op, err, accountAttr(account)) }()
	now := domain.TimestampFrom(s.clock.Now())

	if account == "" {
		return domain.ErrAccountRequired
	}

	unlock := s.locks.account(account)
	defer unlock()

	wallet, err := loadWallet(ctx, s.wallets, account)
	if err != nil {
		return err
	}
	if err := apply(&wallet, now); err != nil {
		return err
	}
	if err := s.wallets.Save(ctx, wallet); err != nil {
		return fmt.Errorf("save wallet %s: %w", account, err)
	}
	return nil
}
