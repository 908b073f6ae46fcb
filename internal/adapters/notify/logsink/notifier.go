package logsink

import (
	"context"
	"log/slog"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
)

// Notifier writes each event as a structured log record.
type Notifier struct {
	logger *slog.Logger
	level  slog.Level
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(logger *slog.Logger, level slog.Level) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{logger: logger, level: level}
}

func (n *Notifier) Notify(ctx context.Context, event domain.Event) {
	attrs := []slog.Attr{
		slog.String("kind", string(event.Kind)),
		slog.Uint64("asset", uint64(event.AssetID)),
	}
	if event.Kind != domain.EventAssetDefined {
		attrs = append(attrs, slog.Uint64("token", uint64(event.TokenID)))
	}
	if event.ReplacesID != nil {
		attrs = append(attrs, slog.Uint64("replaces", uint64(*event.ReplacesID)))
	}
	if len(event.Priorities) > 0 {
		attrs = append(attrs, slog.Any("priorities", event.Priorities))
	}
	if !event.At.IsZero() {
		attrs = append(attrs, slog.Time("at", event.At.Time()))
	}

	n.logger.LogAttrs(ctx, n.level, "asset event", attrs...)
}
