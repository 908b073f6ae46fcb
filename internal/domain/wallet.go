package domain

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	FruitPrice       uint64 = 20
	DailyBonusAmount uint64 = 100
	SeedFruit        uint16 = 10
	SeedBalance      uint64 = 500

	// Staked balances earn StakeRatePercent for every full StakeUnitMillis.
	StakeUnitMillis  uint64 = 10_000
	StakeRatePercent uint64 = 1
)

// Wallet is the per-account economy record.
type Wallet struct {
	AccountID    AccountID
	Fruit        uint16
	Balance      uint64
	Staked       uint64
	LastStakedAt Timestamp
	LastBonusAt  Timestamp
}

func NewWallet(account AccountID) Wallet {
	return Wallet{AccountID: account}
}

// Seed applies the starting allowance.
func (w *Wallet) Seed() {
	w.Fruit = SeedFruit
	w.Balance = SeedBalance
}

// StakedWithInterest is principal plus simple interest accrued since the
// last stake. Zero when nothing is staked.
func (w Wallet) StakedWithInterest(now Timestamp) uint64 {
	if w.LastStakedAt.IsZero() || w.Staked == 0 {
		return 0
	}

	units := w.LastStakedAt.Since(now) / StakeUnitMillis
	hi, lo := bits.Mul64(w.Staked, units*StakeRatePercent)
	if hi >= 100 {
		return math.MaxUint64
	}
	interest, _ := bits.Div64(hi, lo, 100)

	total, carry := bits.Add64(w.Staked, interest, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return total
}

func (w *Wallet) SpendFruit() error {
	if w.Fruit == 0 {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrInsufficientFruit)
	}
	w.Fruit--
	return nil
}

func (w *Wallet) BuyFruit() error {
	if w.Balance < FruitPrice {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrInsufficientFunds)
	}
	if w.Fruit == math.MaxUint16 {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrFruitOverflow)
	}
	w.Balance -= FruitPrice
	w.Fruit++
	return nil
}

func (w *Wallet) SetFruit(count uint16) {
	w.Fruit = count
}

func (w *Wallet) AddFruit(n uint16) error {
	if uint32(w.Fruit)+uint32(n) > math.MaxUint16 {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrFruitOverflow)
	}
	w.Fruit += n
	return nil
}

func (w *Wallet) Credit(amount uint64) error {
	sum, carry := bits.Add64(w.Balance, amount, 0)
	if carry != 0 {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrBalanceOverflow)
	}
	w.Balance = sum
	return nil
}

func (w *Wallet) Debit(amount uint64) error {
	if w.Balance < amount {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrInsufficientFunds)
	}
	w.Balance -= amount
	return nil
}

// Stake moves amount from balance to staked and restarts the accrual
// clock for the whole staked principal.
func (w *Wallet) Stake(amount uint64, now Timestamp) error {
	if w.Balance == 0 || w.Balance < amount {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrInsufficientFunds)
	}
	staked, carry := bits.Add64(w.Staked, amount, 0)
	if carry != 0 {
		return fmt.Errorf("account %s: %w", w.AccountID, ErrBalanceOverflow)
	}
	w.Balance -= amount
	w.Staked = staked
	w.LastStakedAt = now
	return nil
}

// Withdraw credits principal plus interest and clears the stake.
func (w *Wallet) Withdraw(now Timestamp) (uint64, error) {
	accrued := w.StakedWithInterest(now)
	if accrued == 0 {
		return 0, fmt.Errorf("account %s has nothing staked: %w", w.AccountID, ErrInsufficientFunds)
	}
	balance, carry := bits.Add64(w.Balance, accrued, 0)
	if carry != 0 {
		return 0, fmt.Errorf("account %s: %w", w.AccountID, ErrBalanceOverflow)
	}
	w.Staked = 0
	w.Balance = balance
	return accrued, nil
}

func (w *Wallet) ClaimBonus(now Timestamp) error {
	if !FiveMinuteGate.Open(w.LastBonusAt, now) {
		return fmt.Errorf("daily bonus for %s: %w", w.AccountID, ErrCooldownActive)
	}
	if err := w.Credit(DailyBonusAmount); err != nil {
		return err
	}
	w.LastBonusAt = now
	return nil
}
