package parser

import (
	"strings"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/token"
)

// scanTo ищет kind впереди, не съедая токены, и возвращает смещение
// относительно текущей позиции. Поиск ограничен концом строки/блока:
// конструкции вроде ссылок не перепрыгивают переносы.
func (p *Parser) scanTo(kind token.Kind) (int, bool) {
	for n := 0; ; n++ {
		t := p.peekAt(n)
		switch t.Kind {
		case kind:
			return n, true
		case token.LineBreak, token.ParagraphBreak, token.EOF:
			return 0, false
		}
	}
}

// gatherText склеивает видимый текст следующих n токенов и съедает их.
func (p *Parser) gatherText(n int) string {
	var sb strings.Builder
	for range n {
		sb.WriteString(p.advance().Text)
	}
	return sb.String()
}

// parseTripleLink — [[[target]]] и [[[target|label]]].
func (in *inlineParser) parseTripleLink(open token.Token) {
	p := in.p
	n, ok := p.scanTo(token.RightLink)
	if !ok {
		in.literal(open)
		p.report(diag.MalformedConstruct, diag.SevWarning, open.Span,
			"'[[[' never closed before end of line; kept as literal text")
		return
	}
	pipe := -1
	for i := range n {
		if p.peekAt(i).Kind == token.Pipe {
			pipe = i
			break
		}
	}
	var target, label string
	if pipe >= 0 {
		target = strings.TrimSpace(p.gatherText(pipe))
		p.advance() // |
		label = strings.TrimSpace(p.gatherText(n - pipe - 1))
	} else {
		target = strings.TrimSpace(p.gatherText(n))
	}
	closing := p.advance()
	in.append(&ast.Node{
		Kind:   ast.Link,
		Span:   open.Span.Cover(closing.Span),
		Target: target,
		Label:  label,
	})
}

// parseBracketLink — [url label]. Одиночная скобка без URL сразу за ней —
// обычный текст: `[` слишком частый символ, чтобы шуметь предупреждением.
func (in *inlineParser) parseBracketLink(open token.Token) {
	p := in.p
	if !p.at(token.URL) {
		in.literal(open)
		return
	}
	url := p.advance()
	n, ok := p.scanTo(token.RightBracket)
	if !ok {
		in.literal(open)
		in.append(&ast.Node{Kind: ast.Link, Span: url.Span, URL: url.Text, Label: url.Text})
		p.report(diag.MalformedConstruct, diag.SevWarning, open.Span,
			"'[' link never closed before end of line; URL kept, bracket kept as literal text")
		return
	}
	label := strings.TrimSpace(p.gatherText(n))
	closing := p.advance()
	in.append(&ast.Node{
		Kind:  ast.Link,
		Span:  open.Span.Cover(closing.Span),
		URL:   url.Text,
		Label: label,
	})
}

// parseRaw — @@ ... @@: содержимое между маркерами проходит как есть,
// вообще без разбора разметки внутри.
func (in *inlineParser) parseRaw(open token.Token) {
	p := in.p
	n, ok := p.scanTo(token.Raw)
	if !ok {
		in.literal(open)
		p.report(diag.MalformedConstruct, diag.SevWarning, open.Span,
			"'@@' never closed before end of line; kept as literal text")
		return
	}
	raw := p.gatherText(n)
	closing := p.advance()
	in.append(&ast.Node{
		Kind: ast.RawRun,
		Span: open.Span.Cover(closing.Span),
		Text: raw,
	})
}

// parseBlockConstruct — [[ ... ]]. Распознаём только include (всё остальное
// дорезолвится на препроцессинге, так что сюда попадают лишь неразрешённые
// и незнакомые конструкции). Незнакомое, но закрытое — сырой прогон;
// include без резолва — инертная заглушка.
func (in *inlineParser) parseBlockConstruct(open token.Token) {
	p := in.p
	n, ok := p.scanTo(token.RightBlock)
	if !ok {
		in.literal(open)
		p.report(diag.MalformedConstruct, diag.SevWarning, open.Span,
			"'[[' never closed before end of line; kept as literal text")
		return
	}
	inner := p.gatherText(n)
	closing := p.advance()
	span := open.Span.Cover(closing.Span)

	name, rest, _ := strings.Cut(strings.TrimSpace(inner), " ")
	if strings.EqualFold(name, "include") {
		target := strings.TrimSpace(rest)
		if target == "" {
			p.report(diag.DeprecatedConstruct, diag.SevWarning, span,
				"include with empty target")
		}
		in.append(&ast.Node{Kind: ast.IncludePlaceholder, Span: span, Target: target})
		return
	}
	in.append(&ast.Node{Kind: ast.RawRun, Span: span, Text: inner})
}
