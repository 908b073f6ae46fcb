package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tamago/internal/adapters/repo/memory"
	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/bnema/tamago/internal/random"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminAccount domain.AccountID = "admin"

var baseTime = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(at time.Time) *fakeClock {
	return &fakeClock{now: at}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *recordingNotifier) Notify(_ context.Context, event domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Kinds() []domain.EventKind {
	n.mu.Lock()
	defer n.mu.Unlock()

	kinds := make([]domain.EventKind, 0, len(n.events))
	for _, event := range n.events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func (n *recordingNotifier) Last() domain.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

// adminOnly grants every action to adminAccount and nothing to anyone else.
type adminOnly struct{}

func (adminOnly) Authorize(_ domain.Action, account domain.AccountID) bool {
	return account == adminAccount
}

type fixture struct {
	store    *memory.Store
	clock    *fakeClock
	notifier *recordingNotifier
	assets   *AssetService
	pets     *PetService
	economy  *EconomyService
}

func newFixture(t *testing.T, source ports.RandomSource) *fixture {
	t.Helper()

	store := memory.NewStore()
	if source == nil {
		source = random.NewSource(store.Salt())
	}
	clock := newFakeClock(baseTime)
	notifier := &recordingNotifier{}
	locks := NewLocks()

	return &fixture{
		store:    store,
		clock:    clock,
		notifier: notifier,
		assets:   NewAssetService(store.Assets(), store.TokenAssets(), store.Tokens(), adminOnly{}, notifier, clock, locks),
		pets:     NewPetService(store.Pets(), store.Wallets(), store.Settings(), store.Tokens(), adminOnly{}, source, clock, locks),
		economy:  NewEconomyService(store.Wallets(), adminOnly{}, clock, locks),
	}
}

func (f *fixture) mint(t *testing.T, token domain.TokenID, owner domain.AccountID) {
	t.Helper()
	require.NoError(t, f.store.Tokens().Mint(context.Background(), token, owner))
}

func (f *fixture) define(t *testing.T, ids ...domain.AssetID) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, f.assets.DefineAsset(context.Background(), DefineAssetCommand{
			Caller: adminAccount,
			Asset:  domain.AssetDefinition{ID: id, URI: "ipfs://asset/" + id.String()},
		}))
	}
}

func (f *fixture) seed(t *testing.T, account domain.AccountID) {
	t.Helper()
	require.NoError(t, f.economy.SeedWallet(context.Background(), adminAccount, account))
}

func fixedRolls(t *testing.T, rolls ...uint8) *fixedSource {
	t.Helper()
	return &fixedSource{rolls: rolls}
}

type fixedSource struct {
	mu    sync.Mutex
	rolls []uint8
	calls []domain.Timestamp
}

func (s *fixedSource) Reserve(_ context.Context, now domain.Timestamp, _ uint8) (ports.Roll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, now)
	roll := s.rolls[0]
	if len(s.rolls) > 1 {
		s.rolls = s.rolls[1:]
	}
	return ports.Roll{Value: roll}, nil
}

func mockAnyContext() interface{} {
	return mock.Anything
}
