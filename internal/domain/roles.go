package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
)

// Action names a privileged operation checked by an Authorizer.
type Action string

const (
	ActionDefineAsset  Action = "define_asset"
	ActionSetURI       Action = "set_uri"
	ActionSetStatus    Action = "set_status"
	ActionAdjustWallet Action = "adjust_wallet"
)

var contributorActions = map[Action]struct{}{
	ActionDefineAsset: {},
	ActionSetURI:      {},
}

func ParseAction(raw string) (Action, error) {
	action := Action(strings.TrimSpace(raw))
	switch action {
	case ActionDefineAsset, ActionSetURI, ActionSetStatus, ActionAdjustWallet:
		return action, nil
	default:
		return "", fmt.Errorf("action %q: %w", raw, ErrUnknownAction)
	}
}

// Allows reports whether role grants action. Admin grants everything.
func (r Role) Allows(action Action) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleContributor:
		_, ok := contributorActions[action]
		return ok
	default:
		return false
	}
}
