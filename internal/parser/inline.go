package parser

import (
	"fmt"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/token"
)

// stopPred решает, на каком токене строчный разбор останавливается,
// НЕ съедая его. EOF и ParagraphBreak останавливают всегда.
type stopPred func(token.Kind) bool

func stopAtLineEnd(k token.Kind) bool {
	return k == token.LineBreak
}

func stopAtCellEnd(k token.Kind) bool {
	return k == token.LineBreak || k == token.TableColumn || k == token.TableColumnTitle
}

// inlineFrame — открытый форматирующий спан в стеке.
type inlineFrame struct {
	style ast.Style
	// explicit — у конструкции есть выделенный закрывающий маркер ({{ }}),
	// поэтому открытие однозначно даже при пустом содержимом.
	explicit bool
	open     token.Token
	node     *ast.Node
}

func (f *inlineFrame) empty() bool {
	return len(f.node.Children) == 0
}

// inlineParser — разбор строчного содержимого одного блока.
// Стек явный: глубина вложенности не упирается в стек вызовов.
type inlineParser struct {
	p     *Parser
	stack []*inlineFrame
	out   []*ast.Node
}

// parseInline читает токены до stop(peek), EOF или ParagraphBreak и
// возвращает готовые строчные узлы. Незакрытые спаны добираются в finish:
// отсюда никогда не возвращается наполовину открытое состояние.
func (p *Parser) parseInline(stop stopPred) []*ast.Node {
	in := inlineParser{p: p}
	for {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == token.ParagraphBreak || (stop != nil && stop(t.Kind)) {
			break
		}
		in.step(p.advance())
	}
	in.finish()
	return in.out
}

// target — куда сейчас добавляются готовые узлы: в вершину стека или наружу.
func (in *inlineParser) target() *ast.Node {
	if n := len(in.stack); n > 0 {
		return in.stack[n-1].node
	}
	return nil
}

// append добавляет узел с объединением соседних текстовых прогонов:
// "a" + " b" при смежных спанах становятся одним "a b".
func (in *inlineParser) append(n *ast.Node) {
	if tgt := in.target(); tgt != nil {
		if last := tgt.LastChild(); last != nil && coalesce(last, n) {
			tgt.Span = tgt.Span.Cover(n.Span)
			return
		}
		tgt.Append(n)
		return
	}
	if len(in.out) > 0 && coalesce(in.out[len(in.out)-1], n) {
		return
	}
	in.out = append(in.out, n)
}

func coalesce(dst, src *ast.Node) bool {
	if dst.Kind != ast.TextRun || src.Kind != ast.TextRun {
		return false
	}
	if dst.Span.End != src.Span.Start {
		return false
	}
	dst.Text += src.Text
	dst.Span = dst.Span.Cover(src.Span)
	return true
}

func (in *inlineParser) literal(t token.Token) {
	in.append(ast.NewText(t.Span, t.Text))
}

// step — один токен строчного содержимого.
func (in *inlineParser) step(t token.Token) {
	switch t.Kind {
	case token.Text, token.Whitespace:
		in.literal(t)
	case token.LineBreak:
		// Одиночный перенос внутри абзаца — это узел, а не разделитель блоков.
		in.append(&ast.Node{Kind: ast.LineBreakNode, Span: t.Span})
	case token.Bold:
		in.toggle(t, ast.StyleBold)
	case token.Italics:
		in.toggle(t, ast.StyleItalics)
	case token.Underline:
		in.toggle(t, ast.StyleUnderline)
	case token.Superscript:
		in.toggle(t, ast.StyleSuperscript)
	case token.Subscript:
		in.toggle(t, ast.StyleSubscript)
	case token.Strike:
		in.toggle(t, ast.StyleStrike)
	case token.LeftMonospace:
		in.push(t, ast.StyleMonospace, true)
	case token.RightMonospace:
		if i := in.find(ast.StyleMonospace); i >= 0 {
			in.close(i, t)
		} else {
			in.literal(t)
			in.p.report(diag.UnmatchedClosingMarker, diag.SevWarning, t.Span,
				"'}}' has nothing to close; kept as literal text")
		}
	case token.Raw:
		in.parseRaw(t)
	case token.LeftLink:
		in.parseTripleLink(t)
	case token.LeftBlock:
		in.parseBlockConstruct(t)
	case token.LeftBracket:
		in.parseBracketLink(t)
	case token.URL:
		// голый URL — ссылка, подписанная самим адресом
		in.append(&ast.Node{Kind: ast.Link, Span: t.Span, URL: t.Text, Label: t.Text})
	case token.RightLink, token.RightBlock:
		in.literal(t)
		in.p.report(diag.UnmatchedClosingMarker, diag.SevWarning, t.Span,
			fmt.Sprintf("'%s' has nothing to close; kept as literal text", t.Text))
	default:
		// `|`, `]`, `||` посреди строки и прочие маркеры вне контекста —
		// обычный текст, без шума в диагностиках.
		in.literal(t)
	}
}

// toggle — двусмысленный маркер (** // и т.п.): закрывает одноимённый
// открытый спан, иначе открывает новый. Чем был маркер на самом деле,
// выясняется не раньше конца блока (см. finish).
func (in *inlineParser) toggle(t token.Token, style ast.Style) {
	if i := in.find(style); i >= 0 {
		in.close(i, t)
		return
	}
	in.push(t, style, false)
}

func (in *inlineParser) push(t token.Token, style ast.Style, explicit bool) {
	in.stack = append(in.stack, &inlineFrame{
		style:    style,
		explicit: explicit,
		open:     t,
		node:     &ast.Node{Kind: ast.Format, Span: t.Span, Style: style},
	})
}

// find — индекс ближайшего (самого внутреннего) открытого спана стиля.
func (in *inlineParser) find(style ast.Style) int {
	for i := len(in.stack) - 1; i >= 0; i-- {
		if in.stack[i].style == style {
			return i
		}
	}
	return -1
}

// close закрывает кадр i; всё, что открыто поверх него, добирается
// принудительно — закрывающие маркеры строго LIFO.
func (in *inlineParser) close(i int, closing token.Token) {
	for len(in.stack)-1 > i {
		in.drainTop()
	}
	f := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	f.node.Span = f.node.Span.Cover(closing.Span)
	in.append(f.node)
}

// finish добирает стек в конце блока. Непустой кадр — автозакрытие с
// предупреждением; пустой двусмысленный кадр был, скорее всего, закрывающим
// маркером без пары, и деградирует в литеральный текст.
func (in *inlineParser) finish() {
	for len(in.stack) > 0 {
		in.drainTop()
	}
}

func (in *inlineParser) drainTop() {
	f := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	if f.empty() && !f.explicit {
		in.literal(f.open)
		in.p.report(diag.UnmatchedClosingMarker, diag.SevWarning, f.open.Span,
			fmt.Sprintf("'%s' has nothing to close; kept as literal text", f.open.Text))
		return
	}
	in.append(f.node)
	in.p.report(diag.UnclosedAutoClosed, diag.SevWarning, f.open.Span,
		fmt.Sprintf("'%s' span never closed; auto-closed", f.open.Text))
}
