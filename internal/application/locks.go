package application

import (
	"sync"

	"github.com/bnema/tamago/internal/domain"
)

// Locks serializes mutations per token and per account. Services that
// touch the same entities must share one Locks value.
type Locks struct {
	tokens   keyedLocks[domain.TokenID]
	accounts keyedLocks[domain.AccountID]
}

func NewLocks() *Locks {
	return &Locks{}
}

func (l *Locks) token(id domain.TokenID) func() {
	return l.tokens.lock(id)
}

func (l *Locks) account(id domain.AccountID) func() {
	return l.accounts.lock(id)
}

type keyedLocks[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*sync.Mutex
}

func (k *keyedLocks[K]) lock(key K) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[K]*sync.Mutex)
	}
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
