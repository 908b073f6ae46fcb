package fanout

import (
	"context"
	"testing"

	"github.com/bnema/tamago/internal/domain"
	portmocks "github.com/bnema/tamago/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversToEverySinkInOrder(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockNotifier(t)
	second := portmocks.NewMockNotifier(t)
	event := domain.Event{ID: "evt-1", Kind: domain.EventAssetAdded, TokenID: 1, AssetID: 2}

	var order []string
	first.EXPECT().Notify(mock.Anything, event).Run(func(context.Context, domain.Event) { order = append(order, "first") }).Return().Once()
	second.EXPECT().Notify(mock.Anything, event).Run(func(context.Context, domain.Event) { order = append(order, "second") }).Return().Once()

	NewNotifier(first, second).Notify(context.Background(), event)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotifierAssignsOneIDForAllSinks(t *testing.T) {
	t.Parallel()

	first := portmocks.NewMockNotifier(t)
	second := portmocks.NewMockNotifier(t)

	var ids []string
	record := func(_ context.Context, event domain.Event) { ids = append(ids, event.ID) }
	first.EXPECT().Notify(mock.Anything, mock.Anything).Run(record).Return().Once()
	second.EXPECT().Notify(mock.Anything, mock.Anything).Run(record).Return().Once()

	NewNotifier(first, second).Notify(context.Background(), domain.Event{Kind: domain.EventAssetDefined, AssetID: 9})

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
}

func TestNotifierStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	sink := portmocks.NewMockNotifier(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewNotifier(sink).Notify(ctx, domain.Event{Kind: domain.EventAssetDefined})
}

func TestNewNotifierCheckedRejectsNilSink(t *testing.T) {
	t.Parallel()

	_, err := NewNotifierChecked(portmocks.NewMockNotifier(t), nil)
	assert.ErrorIs(t, err, errNilSink)
	assert.Panics(t, func() { NewNotifier(nil) })
}
