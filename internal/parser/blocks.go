package parser

import (
	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/token"
)

const maxHeadingLevel = 6

// parseHeading — `= Title` ... `====== Title`. Уровень ограничен шестью:
// более длинный маркер не ломает разбор, а прижимается к максимуму.
func (p *Parser) parseHeading() *ast.Node {
	marker := p.advance()
	level := len(marker.Text)
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	n := &ast.Node{Kind: ast.Heading, Span: marker.Span, Level: level}
	p.skipOneSpace()
	n.Append(p.parseInline(stopAtLineEnd)...)
	return n
}

// parseParagraph — всё остальное. Абзац заканчивается на пустой строке,
// EOF или переносе, за которым начинается другой блок. Одиночные переносы
// остаются внутри абзаца узлами line-break.
func (p *Parser) parseParagraph() *ast.Node {
	n := &ast.Node{Kind: ast.Paragraph}
	stop := func(k token.Kind) bool {
		if k != token.LineBreak {
			return false
		}
		next := p.peekAt(1)
		return next.IsBlockStart() || next.Kind == token.EOF
	}
	n.Append(p.parseInline(stop)...)
	// Закрывающий перенос (перед следующим блоком) абзацу не принадлежит.
	if p.at(token.LineBreak) {
		p.advance()
	}
	return n
}

// parseList собирает подряд идущие строки-пункты в дерево списков.
// Глубина пункта — длина маркера: `*` / `**` / `***`. Вложенный список
// подвешивается к последнему пункту родителя. Смена вида маркера
// (* против #) на верхнем уровне начинает новый список.
func (p *Parser) parseList() *ast.Node {
	// stack[i] — открытый список глубины i+1
	var stack []*ast.Node

	for p.atAny(token.BulletItem, token.NumberedItem) {
		marker := p.peek()
		depth := len(marker.Text)
		ordered := marker.Kind == token.NumberedItem

		if len(stack) > 0 && depth == 1 && stack[0].Ordered != ordered {
			break
		}
		p.advance()
		p.skipOneSpace()

		if len(stack) > depth {
			stack = stack[:depth]
		}
		for len(stack) < depth {
			list := &ast.Node{Kind: ast.List, Span: marker.Span, Ordered: ordered}
			if n := len(stack); n > 0 {
				if item := stack[n-1].LastChild(); item != nil {
					item.Append(list)
				} else {
					stack[n-1].Append(list)
				}
			}
			stack = append(stack, list)
		}
		if stack[depth-1].Ordered != ordered {
			// пункт другого вида на той же глубине — новый соседний список
			list := &ast.Node{Kind: ast.List, Span: marker.Span, Ordered: ordered}
			if depth > 1 {
				if item := stack[depth-2].LastChild(); item != nil {
					item.Append(list)
				} else {
					stack[depth-2].Append(list)
				}
			}
			stack[depth-1] = list
		}

		item := &ast.Node{Kind: ast.ListItem, Span: marker.Span}
		item.Append(p.parseInline(stopAtLineEnd)...)
		stack[depth-1].Append(item)

		if p.at(token.LineBreak) && p.atAnyAt(1, token.BulletItem, token.NumberedItem) {
			p.advance()
			continue
		}
		break
	}
	// Вложенные списки подвешивались к уже добавленным пунктам, поэтому
	// спаны предков устарели; добираем их одним проходом.
	stack[0].CoverDescendants()
	return stack[0]
}

// parseTable — подряд идущие строки, начинающиеся с `||` или `||~`.
// Каждый разделитель открывает ячейку; замыкающий `||` в конце строки
// закрывает ряд. Ряд без замыкающего разделителя добирается с
// предупреждением — таблица всё равно строится.
func (p *Parser) parseTable() *ast.Node {
	table := &ast.Node{Kind: ast.Table, Span: p.peek().Span}
	for p.atAny(token.TableColumn, token.TableColumnTitle) && p.atLineStart() {
		table.Append(p.parseTableRow())
		if p.at(token.LineBreak) && p.atAnyAt(1, token.TableColumn, token.TableColumnTitle) {
			p.advance()
			continue
		}
		break
	}
	return table
}

func (p *Parser) atAnyAt(n int, kinds ...token.Kind) bool {
	k := p.peekAt(n).Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) parseTableRow() *ast.Node {
	row := &ast.Node{Kind: ast.TableRow, Span: p.peek().Span}
	for p.atAny(token.TableColumn, token.TableColumnTitle) {
		sep := p.advance()
		if p.atAny(token.LineBreak, token.ParagraphBreak, token.EOF) {
			// замыкающий разделитель: ряд закрыт
			row.Span = row.Span.Cover(sep.Span)
			return row
		}
		cell := &ast.Node{
			Kind:   ast.TableCell,
			Span:   sep.Span,
			Header: sep.Kind == token.TableColumnTitle,
		}
		cell.Append(p.parseInline(stopAtCellEnd)...)
		row.Append(cell)
	}
	// строка кончилась без замыкающего `||`
	p.report(diag.UnclosedAutoClosed, diag.SevWarning, row.Span,
		"table row missing trailing '||'; auto-closed at end of line")
	return row
}
