package lexer

import (
	"wikitext/internal/source"
	"wikitext/internal/token"
)

// Lexer turns preprocessed wikitext into a stream of tokens. It never fails:
// bytes that match no rule are absorbed into text runs.
type Lexer struct {
	text   *source.Text
	cursor Cursor
	look   *token.Token // 1-элементный буфер для токена

	// lineStart отслеживает начало строки (для heading/list/hrule правил),
	// wordStart — начало слова (для распознавания голых URL).
	lineStart bool
	wordStart bool
}

// New creates a lexer over the given preprocessed text.
func New(text *source.Text) *Lexer {
	return &Lexer{
		text:      text,
		cursor:    NewCursor(text),
		lineStart: true,
		wordStart: true,
	}
}

// Tokenize scans the whole text and returns the complete token sequence,
// terminated by an EOF token. This is the tokenization entry point; it is
// total for any input.
func Tokenize(text *source.Text) []token.Token {
	lx := New(text)
	tokens := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	tok := lx.scan()

	// Обновляем контекст для следующего токена
	switch tok.Kind {
	case token.LineBreak, token.ParagraphBreak:
		lx.lineStart = true
		lx.wordStart = true
	case token.Whitespace:
		lx.lineStart = false
		lx.wordStart = true
	case token.LeftBracket, token.LeftBlock, token.LeftLink, token.Pipe:
		lx.lineStart = false
		lx.wordStart = true
	default:
		lx.lineStart = false
		lx.wordStart = false
	}

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scan dispatches to the right scanner for the byte under the cursor.
// Order matters: line-start rules, then breaks and whitespace, then URLs at
// word starts, then the literal marker table, then the text absorber.
func (lx *Lexer) scan() token.Token {
	ch := lx.cursor.Peek()

	if ch == '\n' {
		return lx.scanNewlines()
	}
	if ch == ' ' || ch == '\t' {
		return lx.scanWhitespace()
	}

	if lx.lineStart {
		if tok, ok := lx.scanLineStart(ch); ok {
			return tok
		}
	}

	if lx.wordStart {
		if tok, ok := lx.scanURL(); ok {
			return tok
		}
	}

	for _, r := range literalRules {
		if lx.cursor.HasPrefix(r.lit) {
			return lx.emitLiteral(r)
		}
	}

	return lx.scanText()
}

func (lx *Lexer) emitLiteral(r rule) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(uint32(len(r.lit)))
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: r.kind, Span: sp, Text: r.lit}
}

func (lx *Lexer) scanNewlines() token.Token {
	start := lx.cursor.Mark()
	n := lx.cursor.RunLen('\n')
	lx.cursor.Advance(n)
	sp := lx.cursor.SpanFrom(start)

	kind := token.LineBreak
	if n >= 2 {
		kind = token.ParagraphBreak
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text.Slice(sp)}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.text.Slice(sp)}
}

// scanLineStart handles markers that are only recognized at column zero:
// headings, list items, and horizontal rules. Markers missing their trailing
// space are not block starters and fall through to the other scanners.
func (lx *Lexer) scanLineStart(ch byte) (token.Token, bool) {
	switch ch {
	case '=':
		return lx.scanMarkerRun('=', token.Heading)
	case '*':
		return lx.scanMarkerRun('*', token.BulletItem)
	case '#':
		return lx.scanMarkerRun('#', token.NumberedItem)
	case '-':
		n := lx.cursor.RunLen('-')
		after := lx.cursor.PeekAt(n)
		if n >= 4 && (after == '\n' || lx.cursor.Off+n >= lx.text.Len()) {
			start := lx.cursor.Mark()
			lx.cursor.Advance(n)
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.HorizontalRule, Span: sp, Text: lx.text.Slice(sp)}, true
		}
	}
	return token.Token{}, false
}

// scanMarkerRun lexes a run of marker bytes that must be followed by a space.
// The run length carries the nesting depth (lists) or level (headings).
func (lx *Lexer) scanMarkerRun(b byte, kind token.Kind) (token.Token, bool) {
	n := lx.cursor.RunLen(b)
	if lx.cursor.PeekAt(n) != ' ' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Advance(n)
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text.Slice(sp)}, true
}

func (lx *Lexer) scanURL() (token.Token, bool) {
	matched := false
	for _, scheme := range urlSchemes {
		if lx.cursor.HasPrefix(scheme) {
			matched = true
			break
		}
	}
	if !matched {
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == ']' || b == '|' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.URL, Span: sp, Text: lx.text.Slice(sp)}, true
}

// scanText absorbs a maximal run of bytes that start no structural rule.
// The first byte is always consumed, even if it is a marker byte: reaching
// here means no rule matched at this position, so it is literal text.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && !markerStart[lx.cursor.Peek()] {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Text, Span: sp, Text: lx.text.Slice(sp)}
}
