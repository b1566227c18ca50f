// Package ui implements the interactive inspector behind `wikitext inspect`:
// a terminal browser over the token stream, the tree, and the diagnostics
// of one document.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"wikitext/internal/ast"
	"wikitext/internal/driver"
	"wikitext/internal/token"
)

type keyMap struct {
	Quit     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	NextPane: key.NewBinding(key.WithKeys("tab", "right", "l")),
	PrevPane: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home", "g")),
	End:      key.NewBinding(key.WithKeys("end", "G")),
}

type pane uint8

const (
	paneTokens pane = iota
	paneTree
	paneDiags
	paneCount
)

func (p pane) String() string {
	switch p {
	case paneTokens:
		return "tokens"
	case paneTree:
		return "tree"
	case paneDiags:
		return "diagnostics"
	}
	return "?"
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	tabStyle    = lipgloss.NewStyle().Faint(true)
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	spanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

type inspectModel struct {
	result driver.ParseResult

	pane   pane
	cursor [paneCount]int
	offset [paneCount]int

	lines  [paneCount][]string
	width  int
	height int
}

// NewInspectModel строит модель инспектора по результату прогона.
func NewInspectModel(result driver.ParseResult) tea.Model {
	m := &inspectModel{result: result, width: 80, height: 24}
	m.lines[paneTokens] = tokenLines(result)
	m.lines[paneTree] = treeLines(result.Tree)
	m.lines[paneDiags] = diagLines(result)
	return m
}

// Run запускает инспектор и блокируется до выхода пользователя.
func Run(result driver.ParseResult) error {
	_, err := tea.NewProgram(NewInspectModel(result), tea.WithAltScreen()).Run()
	return err
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextPane):
			m.pane = (m.pane + 1) % paneCount
		case key.Matches(msg, keys.PrevPane):
			m.pane = (m.pane + paneCount - 1) % paneCount
		case key.Matches(msg, keys.Up):
			m.move(-1)
		case key.Matches(msg, keys.Down):
			m.move(1)
		case key.Matches(msg, keys.PageUp):
			m.move(-m.bodyHeight())
		case key.Matches(msg, keys.PageDown):
			m.move(m.bodyHeight())
		case key.Matches(msg, keys.Home):
			m.cursor[m.pane] = 0
		case key.Matches(msg, keys.End):
			m.cursor[m.pane] = max(0, len(m.lines[m.pane])-1)
		}
		m.clampScroll()
		return m, nil
	}
	return m, nil
}

func (m *inspectModel) move(delta int) {
	c := m.cursor[m.pane] + delta
	if c < 0 {
		c = 0
	}
	if last := len(m.lines[m.pane]) - 1; c > last {
		c = max(0, last)
	}
	m.cursor[m.pane] = c
}

func (m *inspectModel) bodyHeight() int {
	// заголовок, табы, пустая строка, подсказки
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *inspectModel) clampScroll() {
	body := m.bodyHeight()
	cur := m.cursor[m.pane]
	off := m.offset[m.pane]
	if cur < off {
		off = cur
	}
	if cur >= off+body {
		off = cur - body + 1
	}
	m.offset[m.pane] = off
}

func (m *inspectModel) View() string {
	var b strings.Builder

	name := m.result.Text.Name
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %d tokens, %d warnings",
		name, len(m.result.Tokens), len(m.result.Diags))))
	b.WriteString("\n")

	var tabs []string
	for p := paneTokens; p < paneCount; p++ {
		label := p.String()
		if p == m.pane {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n")

	lines := m.lines[m.pane]
	body := m.bodyHeight()
	off := m.offset[m.pane]
	for i := off; i < off+body; i++ {
		if i >= len(lines) {
			b.WriteString("\n")
			continue
		}
		line := runewidth.Truncate(lines[i], max(10, m.width-2), "…")
		if i == m.cursor[m.pane] {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString(hintStyle.Render("↑/↓ move · tab pane · q quit"))
	return b.String()
}

func tokenLines(result driver.ParseResult) []string {
	lines := make([]string, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		line := fmt.Sprintf("%-18s %s", tok.Kind, spanStyle.Render(tok.Span.String()))
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		lines = append(lines, line)
		if tok.Kind == token.EOF {
			break
		}
	}
	return lines
}

func treeLines(tree *ast.Node) []string {
	var lines []string
	var walk func(n *ast.Node, depth int)
	walk = func(n *ast.Node, depth int) {
		line := strings.Repeat("  ", depth) + n.Kind.String()
		if n.Kind == ast.Format {
			line += fmt.Sprintf("(%s)", n.Style)
		}
		line += " " + spanStyle.Render(n.Span.String())
		if n.Text != "" {
			line += fmt.Sprintf(" %q", n.Text)
		}
		lines = append(lines, line)
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	if tree != nil {
		walk(tree, 0)
	}
	return lines
}

func diagLines(result driver.ParseResult) []string {
	if len(result.Diags) == 0 {
		return []string{hintStyle.Render("no diagnostics")}
	}
	lines := make([]string, 0, len(result.Diags))
	for _, d := range result.Diags {
		start, _ := result.Text.Resolve(d.Primary)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			warnStyle.Render(fmt.Sprintf("%d:%d", start.Line, start.Col)),
			d.Code.Name(), d.Message))
	}
	return lines
}
