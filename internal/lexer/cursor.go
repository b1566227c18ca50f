package lexer

import (
	"wikitext/internal/source"
)

// Cursor представляет собой позицию в тексте документа
type Cursor struct {
	Text *source.Text
	Off  uint32
}

// NewCursor creates a new cursor for the provided text.
func NewCursor(t *source.Text) Cursor {
	return Cursor{
		Text: t,
		Off:  0,
	}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Text.Len()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Text.Content[c.Off]
}

// PeekAt читает байт на расстоянии n от текущей позиции
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Text.Len() {
		return 0
	}
	return c.Text.Content[c.Off+n]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// HasPrefix reports whether the remaining input starts with lit.
func (c *Cursor) HasPrefix(lit string) bool {
	if c.Off+uint32(len(lit)) > c.Text.Len() {
		return false
	}
	return string(c.Text.Content[c.Off:c.Off+uint32(len(lit))]) == lit
}

// RunLen возвращает длину подряд идущих байт b, начиная с текущей позиции
func (c *Cursor) RunLen(b byte) uint32 {
	n := uint32(0)
	for c.Off+n < c.Text.Len() && c.Text.Content[c.Off+n] == b {
		n++
	}
	return n
}

// Advance перемещает курсор на n байт вперед
func (c *Cursor) Advance(n uint32) {
	c.Off += n
	if c.Off > c.Text.Len() {
		c.Off = c.Text.Len()
	}
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
