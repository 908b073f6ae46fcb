// Package export writes registry and wallet snapshots as CSV.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/tamago/internal/domain"
	"github.com/gocarina/gocsv"
)

type AssetRow struct {
	ID              uint32 `csv:"id"`
	CatalogRef      string `csv:"catalog_ref"`
	EquippableGroup uint64 `csv:"equippable_group"`
	URI             string `csv:"uri"`
	Parts           string `csv:"parts"`
}

type WalletRow struct {
	Account            string `csv:"account"`
	Fruit              uint16 `csv:"fruit"`
	Balance            uint64 `csv:"balance"`
	Staked             uint64 `csv:"staked"`
	StakedWithInterest uint64 `csv:"staked_with_interest"`
	LastStakedAt       uint64 `csv:"last_staked_at"`
	LastBonusAt        uint64 `csv:"last_bonus_at"`
}

func AssetRows(assets []domain.AssetDefinition) []*AssetRow {
	rows := make([]*AssetRow, 0, len(assets))
	for _, asset := range assets {
		parts := make([]string, 0, len(asset.PartIDs))
		for _, part := range asset.PartIDs {
			parts = append(parts, strconv.FormatUint(uint64(part), 10))
		}
		rows = append(rows, &AssetRow{
			ID:              uint32(asset.ID),
			CatalogRef:      asset.CatalogRef,
			EquippableGroup: uint64(asset.EquippableGroupID),
			URI:             asset.URI,
			Parts:           strings.Join(parts, ";"),
		})
	}
	return rows
}

// WalletRows projects stakes to now.
func WalletRows(wallets []domain.Wallet, now domain.Timestamp) []*WalletRow {
	rows := make([]*WalletRow, 0, len(wallets))
	for _, wallet := range wallets {
		rows = append(rows, &WalletRow{
			Account:            string(wallet.AccountID),
			Fruit:              wallet.Fruit,
			Balance:            wallet.Balance,
			Staked:             wallet.Staked,
			StakedWithInterest: wallet.StakedWithInterest(now),
			LastStakedAt:       uint64(wallet.LastStakedAt),
			LastBonusAt:        uint64(wallet.LastBonusAt),
		})
	}
	return rows
}

func WriteAssets(w io.Writer, assets []domain.AssetDefinition) error {
	if err := gocsv.Marshal(AssetRows(assets), w); err != nil {
		return fmt.Errorf("write assets csv: %w", err)
	}
	return nil
}

func WriteWallets(w io.Writer, wallets []domain.Wallet, now domain.Timestamp) error {
	if err := gocsv.Marshal(WalletRows(wallets, now), w); err != nil {
		return fmt.Errorf("write wallets csv: %w", err)
	}
	return nil
}
