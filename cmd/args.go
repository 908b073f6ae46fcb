package cmd

import (
	"strconv"
	"strings"

	"github.com/bnema/tamago/internal/domain"
)

func parseAssetIDs(raw []string) ([]domain.AssetID, error) {
	ids := make([]domain.AssetID, 0, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := domain.ParseAssetID(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseUint16(name, raw string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil {
		return 0, domain.Errorf(domain.KindInvalidArgument, "invalid %s %q", name, raw)
	}
	return uint16(v), nil
}

func parseUint64(name, raw string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.Errorf(domain.KindInvalidArgument, "invalid %s %q", name, raw)
	}
	return v, nil
}

// accountArg returns the first positional argument, or the caller when
// none is given.
func accountArg(app *app, args []string) domain.AccountID {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return domain.AccountID(strings.TrimSpace(args[0]))
	}
	return app.caller
}

func formatAssetIDs(ids []domain.AssetID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ",")
}
