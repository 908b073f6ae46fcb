package status

import (
	"github.com/bnema/tamago/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	statKey    lipgloss.Style
	statMeta   lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	tiers      map[domain.Tier]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		statKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		statMeta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		tiers: map[domain.Tier]lipgloss.Style{
			domain.TierBad:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.TierNormal: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")),
			domain.TierGood:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120")),
		},
	}
}

func (s styles) tier(t domain.Tier) lipgloss.Style {
	if style, ok := s.tiers[t]; ok {
		return style
	}
	return s.detail
}
