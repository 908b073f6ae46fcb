package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Version 2 stores 64-bit fields as decimal strings. Version 1 files wrote
// them as integers and still decode.
const currentSchemaVersion = 2

type fileSchema struct {
	Version       int                 `toml:"version"`
	Salt          u64                 `toml:"salt"`
	ConditionURIs *conditionURISchema `toml:"condition_uris,omitempty"`
	Assets        []assetSchema       `toml:"assets"`
	Tokens        []tokenSchema       `toml:"tokens"`
	TokenAssets   []tokenAssetsSchema `toml:"token_assets"`
	Pets          []petSchema         `toml:"pets"`
	Wallets       []walletSchema      `toml:"wallets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported ledger schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// u64 round-trips the full uint64 range. TOML integers are signed 64-bit,
// so values are written as decimal strings.
type u64 uint64

func (v u64) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

func (v *u64) UnmarshalText(text []byte) error {
	raw := strings.TrimPrefix(string(text), "+")
	parsed, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %q: %w", text, err)
	}
	*v = u64(parsed)
	return nil
}

type conditionURISchema struct {
	Bad    string `toml:"bad"`
	Normal string `toml:"normal"`
	Good   string `toml:"good"`
}

type assetSchema struct {
	ID                uint32   `toml:"id"`
	CatalogRef        string   `toml:"catalog_ref,omitempty"`
	EquippableGroupID u64      `toml:"equippable_group_id"`
	URI               string   `toml:"uri"`
	PartIDs           []uint32 `toml:"part_ids"`
}

type tokenSchema struct {
	ID    u64    `toml:"id"`
	Owner string `toml:"owner"`
}

type tokenAssetsSchema struct {
	TokenID  u64      `toml:"token_id"`
	Pending  []uint32 `toml:"pending"`
	Accepted []uint32 `toml:"accepted"`
}

type petSchema struct {
	TokenID     u64    `toml:"token_id"`
	Hungry      uint32 `toml:"hungry"`
	Health      uint32 `toml:"health"`
	Happy       uint32 `toml:"happy"`
	LastEatenAt u64    `toml:"last_eaten_at"`
}

type walletSchema struct {
	Account      string `toml:"account"`
	Fruit        uint16 `toml:"fruit"`
	Balance      u64    `toml:"balance"`
	Staked       u64    `toml:"staked"`
	LastStakedAt u64    `toml:"last_staked_at"`
	LastBonusAt  u64    `toml:"last_bonus_at"`
}
