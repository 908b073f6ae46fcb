package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	barWidth = 24
	// statScale is the value that fills a bar; a fed pet starts there.
	statScale = 100
)

type RenderOptions struct {
	Now time.Time
}

func renderView(pets []application.PetStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Pet Status"),
		s.header.Render(fmt.Sprintf("pets: %d", len(pets))),
	}

	if len(pets) == 0 {
		lines = append(lines, s.empty.Render("No pets to show."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.statMeta.Render(tierTally(pets)))
	for _, pet := range pets {
		lines = append(lines, s.section.Render(renderPet(pet, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPet(pet application.PetStatus, opts RenderOptions, s styles) string {
	now := petNow(pet, opts.Now)

	parts := []string{
		s.tier(pet.Tier).Render(fmt.Sprintf("Token #%s (%s)", pet.TokenID, pet.Tier)),
		statLine("health", pet.Current.Health, false, s),
		statLine("happy", pet.Current.Happy, false, s),
		statLine("hungry", pet.Current.Hungry, true, s),
		s.detail.Render(fmt.Sprintf("total: %d", pet.Total)),
		s.detail.Render(fedLine(pet.LastEatenAt, now)),
	}

	if line, ready := nextFeedLine(pet.LastEatenAt, pet.NextFeedAt, now); ready {
		parts = append(parts, s.statMeta.Render(line))
	} else {
		parts = append(parts, s.warning.Render(line))
	}

	if pet.TokenURI != "" {
		parts = append(parts, s.statMeta.Render("uri: "+pet.TokenURI))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func tierTally(pets []application.PetStatus) string {
	counts := make(map[domain.Tier]int, len(domain.Tiers))
	for _, pet := range pets {
		counts[pet.Tier]++
	}

	parts := make([]string, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		parts = append(parts, fmt.Sprintf("%s: %d", tier, counts[tier]))
	}
	return strings.Join(parts, "  ")
}

// statLine draws value against statScale. Hunger fills as it gets worse.
func statLine(name string, value uint32, worseWhenHigh bool, s styles) string {
	label := s.statKey.Render(fmt.Sprintf("%-7s", name+":"))
	bar := renderProgressBar(float64(value)/statScale*100, barWidth, s)

	good := float64(value)
	if worseWhenHigh {
		good = statScale - good
	}
	valueStyle := lipgloss.NewStyle().Foreground(interpolateColor(good, 0, statScale))

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", valueStyle.Render(fmt.Sprintf("%d", value)))
}

func fedLine(lastEatenAt, now time.Time) string {
	if lastEatenAt.IsZero() {
		return "never fed"
	}
	if now.IsZero() {
		return "fed " + lastEatenAt.Format(time.RFC3339)
	}
	return "fed " + humanize.RelTime(lastEatenAt, now, "ago", "from now")
}

func nextFeedLine(lastEatenAt, nextFeedAt, now time.Time) (string, bool) {
	if lastEatenAt.IsZero() || nextFeedAt.IsZero() || !now.Before(nextFeedAt) {
		return "next feed: ready", true
	}
	return "next feed: " + humanize.RelTime(nextFeedAt, now, "ago", "from now"), false
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(filledPercent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright).
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// RenderWallet formats a wallet with grouped thousands.
func RenderWallet(view application.WalletView, opts RenderOptions) string {
	s := newStyles()
	p := message.NewPrinter(language.English)
	now := opts.Now
	if now.IsZero() {
		now = view.AsOf
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Wallet %s", view.Account)),
		s.detail.Render(p.Sprintf("fruit: %d", view.Fruit)),
		s.detail.Render(p.Sprintf("balance: %d", view.Balance)),
		s.detail.Render(p.Sprintf("staked: %d (with interest %d)", view.Staked, view.StakedWithInterest)),
	}

	if !view.LastStakedAt.IsZero() && !now.IsZero() {
		lines = append(lines, s.statMeta.Render("staked "+humanize.RelTime(view.LastStakedAt, now, "ago", "from now")))
	}

	switch {
	case view.LastBonusAt.IsZero() || view.NextBonusAt.IsZero() || !now.Before(view.NextBonusAt):
		lines = append(lines, s.statMeta.Render("daily bonus: ready"))
	default:
		lines = append(lines, s.warning.Render("daily bonus: "+humanize.RelTime(view.NextBonusAt, now, "ago", "from now")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
