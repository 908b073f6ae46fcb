package application

import (
	"time"

	"github.com/bnema/tamago/internal/domain"
)

type TokenAssetsView struct {
	TokenID  domain.TokenID
	Owner    domain.AccountID
	Accepted []domain.AssetID
	Pending  []domain.AssetID
}

type PetStatus struct {
	TokenID      domain.TokenID
	Stored       domain.Status
	Current      domain.Status
	Total        uint32
	Tier         domain.Tier
	ConditionURI string
	TokenURI     string
	LastEatenAt  time.Time
	NextFeedAt   time.Time
	AsOf         time.Time
}

type FeedResult struct {
	TokenID domain.TokenID
	Account domain.AccountID
	Roll    uint8
	Outcome domain.FeedOutcome
	Status  domain.Status
	Fruit   uint16
}

type WalletView struct {
	Account            domain.AccountID
	Fruit              uint16
	Balance            uint64
	Staked             uint64
	StakedWithInterest uint64
	LastStakedAt       time.Time
	LastBonusAt        time.Time
	NextBonusAt        time.Time
	AsOf               time.Time
}
