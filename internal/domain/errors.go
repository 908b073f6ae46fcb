package domain

import (
	"errors"
	"fmt"
)

// Kind groups domain failures so callers can branch on the category
// without knowing every sentinel.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindAlreadyExists        Kind = "already_exists"
	KindNotAuthorized        Kind = "not_authorized"
	KindInsufficientResource Kind = "insufficient_resource"
	KindCooldownActive       Kind = "cooldown_active"
	KindInvalidArgument      Kind = "invalid_argument"
)

func (k Kind) Error() string {
	return string(k)
}

// Error is a categorized domain failure. errors.Is matches both the
// sentinel value and its Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Errorf(kind Kind, format string, args ...any) error {
	return newError(kind, fmt.Sprintf(format, args...))
}

// KindOf returns the Kind of the first domain error in err's chain.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

var (
	ErrTokenNotFound         = newError(KindNotFound, "token not found")
	ErrAssetNotFound         = newError(KindNotFound, "asset not found")
	ErrAcceptedAssetsMissing = newError(KindNotFound, "token has no accepted assets")
	ErrPetNotFound           = newError(KindNotFound, "pet status not found")
	ErrWalletNotFound        = newError(KindNotFound, "wallet not found")

	ErrAssetExists    = newError(KindAlreadyExists, "asset id already defined")
	ErrTokenExists    = newError(KindAlreadyExists, "token already minted")
	ErrAlreadyAdded   = newError(KindAlreadyExists, "asset already accepted on token")
	ErrAlreadyPending = newError(KindAlreadyExists, "asset already pending on token")

	ErrNotTokenOwner  = newError(KindNotAuthorized, "caller is not the token owner")
	ErrNotAuthorized  = newError(KindNotAuthorized, "caller lacks the required role")
	ErrInvalidAccount = newError(KindNotAuthorized, "caller does not match account")

	ErrInsufficientFruit = newError(KindInsufficientResource, "not enough fruit")
	ErrInsufficientFunds = newError(KindInsufficientResource, "not enough money")

	ErrCooldownActive = newError(KindCooldownActive, "time has not passed")

	ErrInvalidAssetID    = newError(KindInvalidArgument, "replaced asset is not accepted on token")
	ErrBadPriorityLength = newError(KindInvalidArgument, "priority list length does not match accepted assets")
	ErrDuplicatePriority = newError(KindInvalidArgument, "priority list repeats an asset")
	ErrInvalidPartList   = newError(KindInvalidArgument, "part list repeats a part id")
	ErrFruitOverflow     = newError(KindInvalidArgument, "fruit count would overflow")
	ErrBalanceOverflow   = newError(KindInvalidArgument, "balance would overflow")
	ErrUnknownTier       = newError(KindInvalidArgument, "unknown condition tier")
	ErrUnknownAction     = newError(KindInvalidArgument, "unknown action")
	ErrAccountRequired   = newError(KindInvalidArgument, "account id is required")
	ErrEmptyConditionURI = newError(KindInvalidArgument, "condition uri is required")
)
