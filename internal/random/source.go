// Package random implements the salted keccak draw used for feeding
// outcomes. Both inputs are observable, so draws are predictable; callers
// must not rely on it for anything adversarial.
package random

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"golang.org/x/crypto/sha3"
)

type Source struct {
	mu    sync.Mutex
	salts ports.SaltStore
}

func NewSource(salts ports.SaltStore) *Source {
	if salts == nil {
		salts = &MemorySalt{}
	}

	return &Source{salts: salts}
}

// Reserve hashes now with the current salt. The source stays locked until
// the roll is settled; committing advances the salt, releasing leaves it.
// The salt is never reset, so two committed draws at the same instant hash
// different input.
func (s *Source) Reserve(ctx context.Context, now domain.Timestamp, maxInclusive uint8) (ports.Roll, error) {
	s.mu.Lock()

	salt, err := s.salts.LoadSalt(ctx)
	if err != nil {
		s.mu.Unlock()
		return ports.Roll{}, fmt.Errorf("load random salt: %w", err)
	}

	r := &reservation{source: s, salt: salt}
	return ports.NewRoll(Draw(now, salt, maxInclusive), r.commit, r.release), nil
}

type reservation struct {
	source  *Source
	salt    uint64
	settled bool
}

func (r *reservation) commit(ctx context.Context) error {
	if r.settled {
		return ports.ErrRollSettled
	}
	r.settled = true
	defer r.source.mu.Unlock()

	if err := r.source.salts.SaveSalt(ctx, r.salt+1); err != nil {
		return fmt.Errorf("save random salt: %w", err)
	}
	return nil
}

func (r *reservation) release() {
	if r.settled {
		return
	}
	r.settled = true
	r.source.mu.Unlock()
}

// Draw is keccak256(be64(now) || be64(salt))[0] mod (maxInclusive+1).
func Draw(now domain.Timestamp, salt uint64, maxInclusive uint8) uint8 {
	var seed [16]byte
	binary.BigEndian.PutUint64(seed[:8], uint64(now))
	binary.BigEndian.PutUint64(seed[8:], salt)

	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write(seed[:])
	sum := hash.Sum(nil)

	return uint8(uint16(sum[0]) % (uint16(maxInclusive) + 1))
}

// MemorySalt keeps the counter in process memory.
type MemorySalt struct {
	mu   sync.Mutex
	salt uint64
}

func (m *MemorySalt) LoadSalt(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.salt, nil
}

func (m *MemorySalt) SaveSalt(ctx context.Context, salt uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.salt = salt
	return nil
}

var (
	_ ports.RandomSource = (*Source)(nil)
	_ ports.SaltStore    = (*MemorySalt)(nil)
)
