package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"wikitext/internal/diag"
	"wikitext/internal/source"
)

var (
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	boldText  = color.New(color.Bold)
	dimText   = color.New(color.Faint)
)

// PrettyDiagnostics форматирует диагностики в человекочитаемый вид.
// Ожидает отсортированный список (parser.Parse сортирует сам).
// Для каждой диагностики печатает:
//
//	<name>:<line>:<col>: <sev> <code>: <message>
//	затем строку-контекст с подчёркиванием ^~~~ по спану, затем Notes.
func PrettyDiagnostics(w io.Writer, diags []diag.Diagnostic, text *source.Text, opts PrettyOpts) {
	color.NoColor = !opts.Color
	for _, d := range diags {
		writeHeader(w, text, d.Severity, d.Code, d.Message, d.Primary)
		writeContext(w, text, d.Primary)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeader(w, text, diag.SevInfo, diag.UnknownCode, n.Msg, n.Span)
				writeContext(w, text, n.Span)
			}
		}
	}
}

func writeHeader(w io.Writer, text *source.Text, sev diag.Severity, code diag.Code, msg string, sp source.Span) {
	start, _ := text.Resolve(sp)
	sevColor := infoColor
	if sev == diag.SevWarning {
		sevColor = warnColor
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		text.Name, start.Line, start.Col,
		sevColor.Sprint(sev.String()),
		dimText.Sprintf("%s[%s]", code.ID(), code.Name()),
		boldText.Sprint(msg))
}

// writeContext печатает строку с подчёркиванием. Ширину подчёркивания
// считаем по видимой ширине рун, а не по байтам: CJK и прочие широкие
// символы иначе сбивают каретку.
func writeContext(w io.Writer, text *source.Text, sp source.Span) {
	start, end := text.Resolve(sp)
	line := text.Line(start.Line)
	line = strings.TrimRight(line, "\n")
	fmt.Fprintf(w, "  %s\n", line)

	startCol := int(start.Col) - 1
	endCol := int(end.Col) - 1
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1 // многострочный или пустой спан: хотя бы каретка
	}
	if startCol > len(line) {
		startCol = len(line)
	}
	if endCol > len(line) {
		endCol = len(line)
		if endCol <= startCol {
			endCol = startCol + 1
		}
	}

	pad := runewidth.StringWidth(line[:startCol])
	width := runewidth.StringWidth(line[startCol:min(endCol, len(line))])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), warnColor.Sprint(marker))
}
