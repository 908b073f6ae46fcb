package status

import (
	"cmp"
	"errors"
	"io"
	"slices"
	"time"

	"github.com/bnema/tamago/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// model renders the board once. Pets that need care come first.
type model struct {
	pets   []application.PetStatus
	opts   RenderOptions
	styles styles
	output string
}

func newModel(pets []application.PetStatus, opts RenderOptions) model {
	ordered := slices.Clone(pets)
	sortByCare(ordered, opts.Now)

	return model{
		pets:   ordered,
		opts:   opts,
		styles: newStyles(),
	}
}

// sortByCare orders pets by tier, worst first, then ready-to-feed before
// cooling down, then by token id.
func sortByCare(pets []application.PetStatus, now time.Time) {
	slices.SortStableFunc(pets, func(a, b application.PetStatus) int {
		if c := cmp.Compare(a.Tier, b.Tier); c != 0 {
			return c
		}
		readyA, readyB := feedReady(a, now), feedReady(b, now)
		switch {
		case readyA && !readyB:
			return -1
		case readyB && !readyA:
			return 1
		}
		return cmp.Compare(a.TokenID, b.TokenID)
	})
}

func feedReady(pet application.PetStatus, now time.Time) bool {
	_, ready := nextFeedLine(pet.LastEatenAt, pet.NextFeedAt, petNow(pet, now))
	return ready
}

func petNow(pet application.PetStatus, now time.Time) time.Time {
	if now.IsZero() {
		return pet.AsOf
	}
	return now
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.pets, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws pets as a status board ordered by care need.
func Render(pets []application.PetStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(pets, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
