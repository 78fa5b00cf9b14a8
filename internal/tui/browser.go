// Package tui is the interactive catalogue browser: every model assembled
// at its reference parameters, with metadata and energy spectrum beside
// the selection list.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/hamforge/hamforge/internal/catalog"
	"github.com/hamforge/hamforge/internal/models"
	"github.com/hamforge/hamforge/internal/spectrum"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	listStyle     = lipgloss.NewStyle().Padding(1, 2)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type entry struct {
	tag    string
	inst   *models.Instance
	levels []float64
	err    error
}

// Browser is the bubbletea model for the catalogue view.
type Browser struct {
	entries []entry
	cursor  int
}

// NewBrowser assembles the whole catalogue at reference parameters.
func NewBrowser() *Browser {
	b := &Browser{}
	for _, tag := range catalog.Tags() {
		e := entry{tag: tag}
		m, err := catalog.Default(tag)
		if err == nil {
			e.inst, err = models.Assemble(m)
		}
		if err == nil {
			e.inst.Check()
			e.levels, err = spectrum.Eigenvalues(e.inst.Operator())
		}
		e.err = err
		b.entries = append(b.entries, e)
	}
	return b
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		}
	}
	return b, nil
}

func (b *Browser) View() string {
	var list strings.Builder
	list.WriteString(headerStyle.Render("hamiltonian catalogue"))
	list.WriteString("\n")
	for i, e := range b.entries {
		line := "  " + e.tag
		if i == b.cursor {
			line = selectedStyle.Render("> " + e.tag)
		} else {
			line = itemStyle.Render(line)
		}
		list.WriteString(line + "\n")
	}

	left := listStyle.Render(list.String())
	right := detailStyle.Render(b.detail(b.entries[b.cursor]))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + helpStyle.Render("up/down: select   q: quit")
}

func (b *Browser) detail(e entry) string {
	if e.err != nil {
		return invalidStyle.Render(fmt.Sprintf("error: %v", e.err))
	}
	var sb strings.Builder
	m := e.inst.Model()
	status, reason := e.inst.Status()

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("model", m.Name())
	row("domain", m.Domain())
	row("shape", fmt.Sprintf("%v", e.inst.Shape().Dims()))
	row("space", e.inst.Shape().String())
	row("status", status.String())
	if reason != "" {
		row("reason", invalidStyle.Render(reason))
	}

	params := m.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row(name, fmt.Sprintf("%g", params[name]))
	}

	if len(e.levels) > 1 {
		graph := asciigraph.Plot(e.levels,
			asciigraph.Height(8),
			asciigraph.Width(40),
			asciigraph.Caption("energy levels"))
		sb.WriteString(graphStyle.Render(graph))
	}
	return sb.String()
}

// Run opens the browser in the alternate screen until quit.
func Run() error {
	_, err := tea.NewProgram(NewBrowser(), tea.WithAltScreen()).Run()
	return err
}
