package parser

import (
	"slices"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/source"
	"wikitext/internal/token"
)

type Options struct {
	// MaxDiagnostics — верхняя граница на число диагностик (0 = без лимита).
	MaxDiagnostics int
	// Reporter — дополнительный приёмник диагностик помимо Outcome.Diags.
	Reporter diag.Reporter
}

// Outcome — результат разбора: дерево всегда есть, ошибок не бывает.
// Любой вход даёт валидный Document; всё подозрительное — предупреждения.
type Outcome struct {
	Tree  *ast.Node
	Diags []diag.Diagnostic
}

// Parser — состояние разбора одного текста.
type Parser struct {
	text *source.Text
	toks []token.Token
	pos  int
	bag  *diag.Bag
	opts Options
}

// Parse — входная точка. Принимает уже токенизированный текст и строит
// Document. Токены обязаны заканчиваться EOF (lexer.Tokenize это гарантирует);
// на всякий случай пустой срез трактуем как пустой документ.
func Parse(text *source.Text, toks []token.Token, opts Options) Outcome {
	p := Parser{
		text: text,
		toks: toks,
		bag:  diag.NewBag(opts.MaxDiagnostics),
		opts: opts,
	}
	doc := &ast.Node{
		Kind: ast.Document,
		Span: source.Span{Start: 0, End: text.Len()},
	}
	p.parseBlocks(doc)
	p.bag.Sort()
	return Outcome{Tree: doc, Diags: p.bag.Items()}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: source.Span{Start: p.text.Len(), End: p.text.Len()}}
	}
	return p.toks[p.pos]
}

// peekAt — заглянуть на n токенов вперёд (0 == peek).
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: source.Span{Start: p.text.Len(), End: p.text.Len()}}
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// skipOneSpace — съесть ровно один пробельный токен, если он есть.
// Маркеры блоков (заголовки, списки) требуют пробел после себя;
// этот пробел — часть маркера, а не содержимого.
func (p *Parser) skipOneSpace() {
	if p.at(token.Whitespace) {
		p.advance()
	}
}

func (p *Parser) report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	p.bag.Add(diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, primary, msg, nil)
	}
}

// parseBlocks — основной цикл верхнего уровня: пока не EOF — очередной блок.
func (p *Parser) parseBlocks(doc *ast.Node) {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.LineBreak, token.ParagraphBreak:
			p.advance()
		case token.Heading:
			doc.Append(p.parseHeading())
		case token.BulletItem, token.NumberedItem:
			doc.Append(p.parseList())
		case token.TableColumn, token.TableColumnTitle:
			doc.Append(p.parseTable())
		case token.HorizontalRule:
			t := p.advance()
			doc.Append(&ast.Node{Kind: ast.HorizontalRuleNode, Span: t.Span})
		default:
			doc.Append(p.parseParagraph())
		}
	}
}

// atLineStart — стоит ли текущий токен в начале строки.
// Лексер выдаёт маркеры заголовков и списков только в начале строки, так что
// проверка нужна лишь для `||`, который легален и посреди текста.
func (p *Parser) atLineStart() bool {
	if p.pos == 0 {
		return true
	}
	prev := p.toks[p.pos-1].Kind
	return prev == token.LineBreak || prev == token.ParagraphBreak
}
