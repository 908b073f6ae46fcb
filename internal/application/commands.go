package application

import "github.com/bnema/tamago/internal/domain"

type DefineAssetCommand struct {
	Caller domain.AccountID
	Asset  domain.AssetDefinition
}

// AttachAssetCommand adds Asset to Token. A non-nil Replaces overwrites
// that accepted asset in place instead.
type AttachAssetCommand struct {
	Caller   domain.AccountID
	Token    domain.TokenID
	Asset    domain.AssetID
	Replaces *domain.AssetID
}

type SetStatusCommand struct {
	Caller domain.AccountID
	Token  domain.TokenID
	Status domain.Status
}

type SetConditionURICommand struct {
	Caller domain.AccountID
	Tier   domain.Tier
	URI    string
}

type Placement string

const (
	PlacementAccepted Placement = "accepted"
	PlacementPending  Placement = "pending"
	PlacementReplaced Placement = "replaced"
)
