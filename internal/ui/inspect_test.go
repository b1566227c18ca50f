package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wikitext/internal/driver"
)

func testModel(t *testing.T, input string) *inspectModel {
	t.Helper()
	m, ok := NewInspectModel(driver.Parse("doc.wiki", input, driver.Options{})).(*inspectModel)
	if !ok {
		t.Fatal("unexpected model type")
	}
	return m
}

func keyRunes(r rune) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestTokenPaneLines(t *testing.T) {
	m := testModel(t, "**x")
	lines := m.lines[paneTokens]
	if len(lines) != 3 {
		t.Fatalf("token lines = %d, want bold, text, eof", len(lines))
	}
	if !strings.Contains(lines[0], "bold") {
		t.Fatalf("first line = %q", lines[0])
	}
}

func TestTreePaneIndent(t *testing.T) {
	m := testModel(t, "**b**")
	lines := m.lines[paneTree]
	// document / paragraph / format / text
	if len(lines) != 4 {
		t.Fatalf("tree lines = %d", len(lines))
	}
	if !strings.HasPrefix(lines[2], "    format(bold)") {
		t.Fatalf("format line = %q", lines[2])
	}
}

func TestDiagPane(t *testing.T) {
	m := testModel(t, "**unclosed")
	lines := m.lines[paneDiags]
	if len(lines) != 1 || !strings.Contains(lines[0], "unclosed-auto-closed") {
		t.Fatalf("diag lines = %v", lines)
	}

	m = testModel(t, "clean")
	if len(m.lines[paneDiags]) != 1 || !strings.Contains(m.lines[paneDiags][0], "no diagnostics") {
		t.Fatalf("diag lines = %v", m.lines[paneDiags])
	}
}

func TestCursorAndPaneKeys(t *testing.T) {
	m := testModel(t, "a b c d")

	next, _ := m.Update(keyRunes('j'))
	m = next.(*inspectModel)
	if m.cursor[paneTokens] != 1 {
		t.Fatalf("cursor = %d after down", m.cursor[paneTokens])
	}

	next, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	m = next.(*inspectModel)
	if m.pane != paneTree {
		t.Fatalf("pane = %v after tab", m.pane)
	}

	// вверх за пределы — остаёмся на нуле
	next, _ = m.Update(keyRunes('k'))
	m = next.(*inspectModel)
	if m.cursor[paneTree] != 0 {
		t.Fatalf("cursor = %d, want clamp at 0", m.cursor[paneTree])
	}
}

func TestViewRenders(t *testing.T) {
	m := testModel(t, "= Title")
	view := m.View()
	if !strings.Contains(view, "doc.wiki") {
		t.Fatalf("missing document name:\n%s", view)
	}
	if !strings.Contains(view, "tokens") || !strings.Contains(view, "diagnostics") {
		t.Fatalf("missing tabs:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, "x")
	_, cmd := m.Update(keyRunes('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
