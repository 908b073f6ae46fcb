package domain

type EventKind string

const (
	EventAssetDefined  EventKind = "asset_defined"
	EventAssetAdded    EventKind = "asset_added"
	EventAssetAccepted EventKind = "asset_accepted"
	EventAssetRejected EventKind = "asset_rejected"
	EventAssetRemoved  EventKind = "asset_removed"
	EventPrioritySet   EventKind = "priority_set"
)

// Event is emitted after a registry or ledger mutation commits. TokenID is
// zero for registry events.
type Event struct {
	ID         string
	Kind       EventKind
	TokenID    TokenID
	AssetID    AssetID
	ReplacesID *AssetID
	Priorities []AssetID
	At         Timestamp
}
