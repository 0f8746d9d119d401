// Package tui is the interactive terminal frontend: pick a calculator,
// adjust its inputs, and watch the results and sweep chart update live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/physlab/internal/calc"
	"github.com/avelar/physlab/internal/plot"
)

type state int

const (
	stateMenu state = iota
	stateParams
	stateResults
)

type model struct {
	state    state
	registry *calc.Registry
	names    []string
	cursor   int

	selected calc.Calculator
	fields   []calc.Field
	params   calc.Params

	paramCursor int
	editing     bool
	editBuf     string

	result calc.Result

	width  int
	height int
}

func NewApp() *model {
	registry := calc.NewRegistry()
	return &model{
		state:    stateMenu,
		registry: registry,
		names:    registry.Names(),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateResults:
		return m.resultsKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		c, err := m.registry.Get(m.names[m.cursor])
		if err != nil {
			return m, nil
		}
		m.selected = c
		m.fields = c.Fields()
		m.params = calc.Defaults(m.fields)
		m.paramCursor = 0
		m.state = stateParams
	}
	return m, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.fields)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.params[m.fields[m.paramCursor].Name])
	case "d":
		m.params = calc.Defaults(m.fields)
	case "s", " ":
		m.recompute()
		m.state = stateResults
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			m.params[m.fields[m.paramCursor].Name] = val
			calc.Clamp(m.fields, m.params)
		}
		m.editing = false
		m.editBuf = ""
	case "escape":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) resultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.state = stateParams
		return m, tea.ClearScreen
	case "m":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "tab", "down", "j":
		m.paramCursor = (m.paramCursor + 1) % len(m.fields)
	case "up", "k":
		m.paramCursor = (m.paramCursor + len(m.fields) - 1) % len(m.fields)
	case "left", "h":
		m.adjust(-1)
		m.recompute()
	case "right", "l":
		m.adjust(1)
		m.recompute()
	case "d":
		m.params = calc.Defaults(m.fields)
		m.recompute()
	}
	return m, nil
}

// adjust moves the selected field by n steps, clamped to its bounds.
func (m *model) adjust(n int) {
	f := m.fields[m.paramCursor]
	m.params[f.Name] += float64(n) * f.Step
	calc.Clamp(m.fields, m.params)
}

// recompute is one pure evaluation; nothing carries over between calls.
func (m *model) recompute() {
	m.result = m.selected.Compute(m.params)
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateParams:
		return m.viewParams()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("p h y s l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.names {
		c, err := m.registry.Get(name)
		if err != nil {
			continue
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(c.Description()) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(c.Description()) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected.Title()) + "  " + dim.Render(m.selected.Description()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	for i, f := range m.fields {
		val := formatValue(f, m.params[f.Name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		label := fmt.Sprintf("%-18s", f.Label)
		unit := dim.Render(" " + f.Unit)
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + magenta.Render(val) + unit + "\n")
		} else {
			b.WriteString("        " + dim.Render(label) + dim.Render(val) + unit + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  d defaults  s results  esc back") + "\n")

	return b.String()
}

func (m model) viewResults() string {
	var b strings.Builder

	b.WriteString("\n   " + cyan.Render(m.selected.Title()) + "\n\n")

	for _, metric := range m.result.Metrics {
		display := metric.Display
		if display == "" {
			display = fmt.Sprintf("%.2f", metric.Value)
		}
		line := "   " + dim.Render(fmt.Sprintf("%-22s", metric.Label)) +
			white.Render(display) + dim.Render(" "+metric.Unit)
		if metric.Delta != "" {
			line += "  " + yellow.Render(metric.Delta)
		}
		b.WriteString(line + "\n")
	}

	if m.result.Warning != "" {
		b.WriteString("\n   " + red.Render("⚠ "+m.result.Warning) + "\n")
	}
	if m.result.Note != "" {
		b.WriteString("\n   " + dim.Render(m.result.Note) + "\n")
	}

	b.WriteString("\n")
	if m.result.Series != nil {
		width := m.width - 14
		if width < 40 {
			width = 40
		}
		height := m.height - 14
		if height < 8 {
			height = 8
		}
		if height > 14 {
			height = 14
		}
		chart := plot.Render(m.result.Series, width, height)
		for _, line := range strings.Split(chart, "\n") {
			b.WriteString("   " + line + "\n")
		}
	}

	f := m.fields[m.paramCursor]
	b.WriteString("\n   " + green.Render("● ") + white.Render(f.Label) + " " +
		magenta.Render(formatValue(f, m.params[f.Name])) + dim.Render(" "+f.Unit) + "\n")
	b.WriteString(dim.Render("   ←→ adjust  tab field  d defaults  esc params  m menu") + "\n")

	return b.String()
}

func formatValue(f calc.Field, v float64) string {
	if f.Integer {
		return fmt.Sprintf("%10.0f", v)
	}
	return fmt.Sprintf("%10.2f", v)
}

func Run() error {
	p := tea.NewProgram(NewApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
