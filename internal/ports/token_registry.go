package ports

import (
	"context"

	"github.com/bnema/tamago/internal/domain"
)

// TokenRegistry answers ownership for minted tokens. ok is false when the
// token does not exist.
type TokenRegistry interface {
	OwnerOf(ctx context.Context, token domain.TokenID) (owner domain.AccountID, ok bool, err error)
}

type TokenMinter interface {
	Mint(ctx context.Context, token domain.TokenID, owner domain.AccountID) error
}

type Authorizer interface {
	Authorize(action domain.Action, account domain.AccountID) bool
}

// Notifier receives committed events. Delivery is fire-and-forget but
// must keep per-token ordering.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}
