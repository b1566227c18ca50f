package lexer_test

import (
	"strings"
	"testing"

	"wikitext/internal/lexer"
	"wikitext/internal/source"
	"wikitext/internal/token"
)

// collect токенизирует строку и возвращает все токены, включая EOF
func collect(input string) []token.Token {
	return lexer.Tokenize(source.New("test.wiki", input))
}

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens := collect(input)
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: got %d tokens, want %d\n%s", input, len(tokens), len(expected), dump(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Fatalf("input %q: token %d is %s, want %s\n%s", input, i, tok.Kind, expected[i], dump(tokens))
		}
	}
}

func dump(tokens []token.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		sb.WriteString(tok.Kind.String())
		if tok.Text != "" {
			sb.WriteString(" ")
			sb.WriteString(tok.Text)
		}
		if i != len(tokens)-1 {
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}

func TestEmptyInput(t *testing.T) {
	tokens := collect("")
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("empty input should produce exactly EOF, got %s", dump(tokens))
	}
	if !tokens[0].Span.Empty() || tokens[0].Span.Start != 0 {
		t.Fatalf("EOF span should be empty at 0, got %v", tokens[0].Span)
	}
}

func TestPlainText(t *testing.T) {
	expectKinds(t, "hello world", []token.Kind{
		token.Text, token.Whitespace, token.Text, token.EOF,
	})
}

func TestFormattingToggles(t *testing.T) {
	expectKinds(t, "**bold**", []token.Kind{
		token.Bold, token.Text, token.Bold, token.EOF,
	})
	expectKinds(t, "//it// and __u__", []token.Kind{
		token.Italics, token.Text, token.Italics,
		token.Whitespace, token.Text, token.Whitespace,
		token.Underline, token.Text, token.Underline, token.EOF,
	})
	expectKinds(t, "x^^2^^ and a,,b,,", []token.Kind{
		token.Text, token.Superscript, token.Text, token.Superscript,
		token.Whitespace, token.Text, token.Whitespace,
		token.Text, token.Subscript, token.Text, token.Subscript, token.EOF,
	})
	expectKinds(t, "--gone--", []token.Kind{
		token.Strike, token.Text, token.Strike, token.EOF,
	})
	expectKinds(t, "{{code}}", []token.Kind{
		token.LeftMonospace, token.Text, token.RightMonospace, token.EOF,
	})
}

func TestHeadings(t *testing.T) {
	expectKinds(t, "= Title", []token.Kind{
		token.Heading, token.Whitespace, token.Text, token.EOF,
	})
	expectKinds(t, "=== Deep", []token.Kind{
		token.Heading, token.Whitespace, token.Text, token.EOF,
	})
	// Без пробела это не заголовок
	expectKinds(t, "=Title", []token.Kind{
		token.Text, token.EOF,
	})
	// Не в начале строки — тоже нет
	expectKinds(t, "a = b", []token.Kind{
		token.Text, token.Whitespace, token.Text, token.Whitespace, token.Text, token.EOF,
	})

	tokens := collect("== Two")
	if tokens[0].Text != "==" {
		t.Fatalf("heading marker text = %q, want %q", tokens[0].Text, "==")
	}
}

func TestListMarkers(t *testing.T) {
	expectKinds(t, "* item", []token.Kind{
		token.BulletItem, token.Whitespace, token.Text, token.EOF,
	})
	expectKinds(t, "## second", []token.Kind{
		token.NumberedItem, token.Whitespace, token.Text, token.EOF,
	})
	// Жирный маркер в начале строки без пробела — это bold
	expectKinds(t, "**bold", []token.Kind{
		token.Bold, token.Text, token.EOF,
	})
}

func TestHorizontalRule(t *testing.T) {
	expectKinds(t, "----", []token.Kind{
		token.HorizontalRule, token.EOF,
	})
	expectKinds(t, "-----\ntext", []token.Kind{
		token.HorizontalRule, token.LineBreak, token.Text, token.EOF,
	})
	// Три дефиса — не линейка: strike + text
	expectKinds(t, "---", []token.Kind{
		token.Strike, token.Text, token.EOF,
	})
}

func TestBreaks(t *testing.T) {
	expectKinds(t, "a\nb", []token.Kind{
		token.Text, token.LineBreak, token.Text, token.EOF,
	})
	expectKinds(t, "a\n\nb", []token.Kind{
		token.Text, token.ParagraphBreak, token.Text, token.EOF,
	})
	expectKinds(t, "a\n\n\n\nb", []token.Kind{
		token.Text, token.ParagraphBreak, token.Text, token.EOF,
	})
}

func TestTables(t *testing.T) {
	expectKinds(t, "|| a || b ||", []token.Kind{
		token.TableColumn, token.Whitespace, token.Text, token.Whitespace,
		token.TableColumn, token.Whitespace, token.Text, token.Whitespace,
		token.TableColumn, token.EOF,
	})
	expectKinds(t, "||~ head ||", []token.Kind{
		token.TableColumnTitle, token.Whitespace, token.Text, token.Whitespace,
		token.TableColumn, token.EOF,
	})
}

func TestLinks(t *testing.T) {
	expectKinds(t, "[[[page]]]", []token.Kind{
		token.LeftLink, token.Text, token.RightLink, token.EOF,
	})
	expectKinds(t, "[[[page|label]]]", []token.Kind{
		token.LeftLink, token.Text, token.Pipe, token.Text, token.RightLink, token.EOF,
	})
	expectKinds(t, "[https://example.com here]", []token.Kind{
		token.LeftBracket, token.URL, token.Whitespace, token.Text, token.RightBracket, token.EOF,
	})
}

func TestBareURL(t *testing.T) {
	expectKinds(t, "see https://example.com now", []token.Kind{
		token.Text, token.Whitespace, token.URL, token.Whitespace, token.Text, token.EOF,
	})
	tokens := collect("https://example.com/x?y=1")
	if tokens[0].Kind != token.URL || tokens[0].Text != "https://example.com/x?y=1" {
		t.Fatalf("URL not scanned greedily: %s", dump(tokens))
	}
	// Внутри слова // остаётся форматированием
	expectKinds(t, "a//b//", []token.Kind{
		token.Text, token.Italics, token.Text, token.Italics, token.EOF,
	})
}

func TestIncludeMarkers(t *testing.T) {
	expectKinds(t, "[[include page]]", []token.Kind{
		token.LeftBlock, token.Text, token.Whitespace, token.Text, token.RightBlock, token.EOF,
	})
}

func TestRawMarkers(t *testing.T) {
	expectKinds(t, "@@**not bold**@@", []token.Kind{
		token.Raw, token.Bold, token.Text, token.Whitespace, token.Text, token.Bold, token.Raw, token.EOF,
	})
}

func TestMalformedMarkersDegrade(t *testing.T) {
	// Одиночные маркерные байты — просто текст, лексер не падает
	for _, input := range []string{"*", "^", "{", "}", "@", "-", "~", "=", "#", "]"} {
		tokens := collect(input)
		if len(tokens) == 1 {
			t.Errorf("input %q produced no tokens before EOF", input)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Kind == token.EOF {
				t.Errorf("input %q: EOF not last", input)
			}
		}
	}
}

// TestFullCoverage проверяет главный инвариант: конкатенация всех спанов
// в точности восстанавливает вход, без дыр и перекрытий.
func TestFullCoverage(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"**bold** //it// __u__ --s-- ^^sup^^ ,,sub,,",
		"= Heading\n\n* list\n# num\n\n|| a ||~ b ||\n----\n",
		"[[[link|label]]] [https://x.y z] [[include page]]",
		"@@raw@@ text ** unmatched",
		"   \n\n\n mixed \t whitespace  ",
		"*]}{|=#-^,@",
	}
	for _, input := range inputs {
		txt := source.New("test.wiki", input)
		tokens := lexer.Tokenize(txt)

		last := tokens[len(tokens)-1]
		if last.Kind != token.EOF {
			t.Errorf("input %q: last token is %s, want eof", input, last.Kind)
			continue
		}
		if last.Span.Start != txt.Len() || !last.Span.Empty() {
			t.Errorf("input %q: EOF span %v, want empty at %d", input, last.Span, txt.Len())
		}

		var off uint32
		var sb strings.Builder
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Span.Start != off {
				t.Errorf("input %q: token %s starts at %d, want %d", input, tok.Kind, tok.Span.Start, off)
			}
			if tok.Span.Empty() {
				t.Errorf("input %q: token %s has empty span %v", input, tok.Kind, tok.Span)
			}
			sb.WriteString(txt.Slice(tok.Span))
			off = tok.Span.End
		}
		if off != txt.Len() {
			t.Errorf("input %q: tokens cover up to %d, want %d", input, off, txt.Len())
		}
		if sb.String() != input {
			t.Errorf("input %q: concatenated slices = %q", input, sb.String())
		}
	}
}

func TestDeterminism(t *testing.T) {
	input := "= H\n**a //b__ c\n\n|| t ||"
	first := collect(input)
	second := collect(input)
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New(source.New("test.wiki", "ab **"))
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Fatalf("Peek %+v != Next %+v", p, n)
	}
}
