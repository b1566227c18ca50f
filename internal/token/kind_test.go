package token_test

import (
	"testing"

	"wikitext/internal/token"
)

func TestKindNamesStable(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "eof"},
		{token.Text, "text"},
		{token.Bold, "bold"},
		{token.Strike, "strike"},
		{token.ParagraphBreak, "paragraph-break"},
		{token.TableColumnTitle, "table-column-title"},
		{token.LeftLink, "left-link"},
		{token.URL, "url"},
		{token.Kind(250), "invalid"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]token.Kind)
	for k := token.EOF; k <= token.URL; k++ {
		name := k.String()
		if name == "invalid" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestTokenClasses(t *testing.T) {
	if !(token.Token{Kind: token.Bold}).IsFormatting() {
		t.Error("bold should be a formatting toggle")
	}
	if (token.Token{Kind: token.LeftMonospace}).IsFormatting() {
		t.Error("left-monospace is not ambiguous, has a dedicated closer")
	}
	if !(token.Token{Kind: token.Heading}).IsBlockStart() {
		t.Error("heading should start a block")
	}
	if !(token.Token{Kind: token.EOF}).IsBreak() {
		t.Error("eof should act as a break")
	}
}
