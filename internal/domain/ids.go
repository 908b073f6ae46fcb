package domain

import "strconv"

type TokenID uint64
type AssetID uint32
type AccountID string
type EquippableGroupID uint64
type PartID uint32

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id AssetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseTokenID(raw string) (TokenID, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, Errorf(KindInvalidArgument, "invalid token id %q", raw)
	}
	return TokenID(v), nil
}

func ParseAssetID(raw string) (AssetID, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, Errorf(KindInvalidArgument, "invalid asset id %q", raw)
	}
	return AssetID(v), nil
}
