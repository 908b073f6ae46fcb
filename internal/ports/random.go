package ports

import (
	"context"
	"errors"

	"github.com/bnema/tamago/internal/domain"
)

// RandomSource reserves a draw in [0, maxInclusive] seeded from now. The
// source stays reserved until the returned Roll is committed or released.
type RandomSource interface {
	Reserve(ctx context.Context, now domain.Timestamp, maxInclusive uint8) (Roll, error)
}

var ErrRollSettled = errors.New("roll already committed or released")

// Roll is a reserved draw. Commit advances the source so the next draw
// differs; Release drops the reservation and leaves the source as it was.
// Release after Commit is a no-op.
type Roll struct {
	Value   uint8
	commit  func(context.Context) error
	release func()
}

func NewRoll(value uint8, commit func(context.Context) error, release func()) Roll {
	return Roll{Value: value, commit: commit, release: release}
}

func (r Roll) Commit(ctx context.Context) error {
	if r.commit == nil {
		return nil
	}
	return r.commit(ctx)
}

func (r Roll) Release() {
	if r.release != nil {
		r.release()
	}
}

// SaltStore persists the random source's call counter.
type SaltStore interface {
	LoadSalt(ctx context.Context) (uint64, error)
	SaveSalt(ctx context.Context, salt uint64) error
}
