package domain

import (
	"fmt"
	"slices"
)

// AssetDefinition is a catalog entry that tokens can carry.
type AssetDefinition struct {
	ID                AssetID
	CatalogRef        string
	EquippableGroupID EquippableGroupID
	URI               string
	PartIDs           []PartID
}

func (a AssetDefinition) Validate() error {
	seen := make(map[PartID]struct{}, len(a.PartIDs))
	for _, part := range a.PartIDs {
		if _, ok := seen[part]; ok {
			return fmt.Errorf("part %d: %w", part, ErrInvalidPartList)
		}
		seen[part] = struct{}{}
	}

	return nil
}

func (a AssetDefinition) Clone() AssetDefinition {
	a.PartIDs = slices.Clone(a.PartIDs)
	return a
}
