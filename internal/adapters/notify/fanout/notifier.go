package fanout

import (
	"context"
	"errors"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/google/uuid"
)

// Notifier delivers each event to every sink in order. Events without an
// ID get one first so every sink records the same ID.
type Notifier struct {
	sinks []ports.Notifier
}

var _ ports.Notifier = (*Notifier)(nil)

var errNilSink = errors.New("notifier sink is nil")

func NewNotifier(sinks ...ports.Notifier) *Notifier {
	notifier, err := NewNotifierChecked(sinks...)
	if err != nil {
		panic(err)
	}

	return notifier
}

func NewNotifierChecked(sinks ...ports.Notifier) (*Notifier, error) {
	for _, sink := range sinks {
		if sink == nil {
			return nil, errNilSink
		}
	}

	return &Notifier{sinks: append([]ports.Notifier(nil), sinks...)}, nil
}

func (n *Notifier) Notify(ctx context.Context, event domain.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	for _, sink := range n.sinks {
		if shouldStop(ctx) {
			return
		}
		sink.Notify(ctx, event)
	}
}

func shouldStop(ctx context.Context) bool {
	err := ctx.Err()
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
