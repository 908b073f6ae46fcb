package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/tamago/internal/adapters/catalog"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type importProgressMsg struct {
	defined  int
	existing int
}

type importDoneMsg struct {
	report catalog.Report
	err    error
}

// importModel shows a running count while a catalog is imported and a
// one-line summary once it stops.
type importModel struct {
	spinner  spinner.Model
	total    int
	defined  int
	existing int
	task     tea.Cmd
	report   catalog.Report
	err      error
	done     bool
}

var (
	importOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	importFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func newImportModel(total int, task tea.Cmd) importModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return importModel{spinner: s, total: total, task: task}
}

func (m importModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m importModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case importProgressMsg:
		m.defined, m.existing = msg.defined, msg.existing
		return m, nil
	case importDoneMsg:
		m.done = true
		m.report, m.err = msg.report, msg.err
		m.defined, m.existing = len(msg.report.Defined), len(msg.report.Existing)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m importModel) View() string {
	processed := m.defined + m.existing
	if !m.done {
		return fmt.Sprintf("%s importing assets %d/%d", m.spinner.View(), processed, m.total)
	}
	if m.err != nil {
		return importFailStyle.Render(fmt.Sprintf("import stopped after %d of %d assets", processed, m.total)) + "\n"
	}
	return importOKStyle.Render(fmt.Sprintf("imported %d of %d assets, %d already defined", m.defined, m.total, m.existing)) + "\n"
}

func runCatalogImport(ctx context.Context, output io.Writer, cat catalog.Catalog, importer func(context.Context, catalog.Progress) (catalog.Report, error)) (catalog.Report, error) {
	var p *tea.Program
	taskCmd := func() tea.Msg {
		report, err := importer(ctx, func(r catalog.Report) {
			p.Send(importProgressMsg{defined: len(r.Defined), existing: len(r.Existing)})
		})
		return importDoneMsg{report: report, err: err}
	}

	p = tea.NewProgram(
		newImportModel(len(cat.Assets), taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return catalog.Report{}, err
	}

	result, ok := finalModel.(importModel)
	if !ok {
		return catalog.Report{}, fmt.Errorf("unexpected final import model type %T", finalModel)
	}

	return result.report, result.err
}
