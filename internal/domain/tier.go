package domain

import (
	"fmt"
	"strings"
)

type Tier uint8

const (
	TierBad Tier = iota
	TierNormal
	TierGood
)

var Tiers = []Tier{TierBad, TierNormal, TierGood}

func TierFor(total uint32) Tier {
	switch {
	case total < 100:
		return TierBad
	case total < 200:
		return TierNormal
	default:
		return TierGood
	}
}

func (t Tier) String() string {
	switch t {
	case TierBad:
		return "bad"
	case TierNormal:
		return "normal"
	case TierGood:
		return "good"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

func ParseTier(raw string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bad":
		return TierBad, nil
	case "normal":
		return TierNormal, nil
	case "good":
		return TierGood, nil
	default:
		return 0, fmt.Errorf("tier %q: %w", raw, ErrUnknownTier)
	}
}

// ConditionURIs maps each tier to a base URI; the token id is appended to
// form a token URI.
type ConditionURIs struct {
	Bad    string
	Normal string
	Good   string
}

var DefaultConditionURIs = ConditionURIs{
	Bad:    "ipfs://QmYJhYes1kzp2soWYEYKzvA84V8YivL8BCpsnN773xyufr/",
	Normal: "ipfs://QmXtnr9aEJVywiLs1keZdyiKbQwignZT3FhwKYivF15oZp/",
	Good:   "ipfs://QmZAdpKf4zr9x2vX26gU6LkG8gtj44GhoGMbWJAa2HsVzt/",
}

func (u ConditionURIs) For(t Tier) string {
	switch t {
	case TierBad:
		return u.Bad
	case TierNormal:
		return u.Normal
	default:
		return u.Good
	}
}

func (u *ConditionURIs) Set(t Tier, uri string) error {
	if strings.TrimSpace(uri) == "" {
		return ErrEmptyConditionURI
	}
	switch t {
	case TierBad:
		u.Bad = uri
	case TierNormal:
		u.Normal = uri
	case TierGood:
		u.Good = uri
	default:
		return fmt.Errorf("%s: %w", t, ErrUnknownTier)
	}
	return nil
}

// IsZero reports whether no tier URI has been configured.
func (u ConditionURIs) IsZero() bool {
	return u == ConditionURIs{}
}

func TokenURI(base string, token TokenID) string {
	return base + token.String()
}
