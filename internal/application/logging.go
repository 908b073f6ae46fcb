package application

import (
	"context"
	"log/slog"

	"github.com/bnema/tamago/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logOutcome records a mutation: debug when committed, info when a domain
// guard rejected it, error for anything else.
func logOutcome(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) {
	switch {
	case err == nil:
		logger.LogAttrs(ctx, slog.LevelDebug, op+" committed", attrs...)
	case domain.KindOf(err) != "":
		attrs = append(attrs, slog.String("kind", string(domain.KindOf(err))), slog.String("error", err.Error()))
		logger.LogAttrs(ctx, slog.LevelInfo, op+" rejected", attrs...)
	default:
		attrs = append(attrs, slog.String("error", err.Error()))
		logger.LogAttrs(ctx, slog.LevelError, op+" failed", attrs...)
	}
}

func tokenAttr(token domain.TokenID) slog.Attr {
	return slog.Uint64("token", uint64(token))
}

func assetAttr(asset domain.AssetID) slog.Attr {
	return slog.Uint64("asset", uint64(asset))
}

func accountAttr(account domain.AccountID) slog.Attr {
	return slog.String("account", string(account))
}
