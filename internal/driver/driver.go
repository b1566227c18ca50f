// Package driver composes the pipeline stages (preprocess → tokenize → parse)
// behind small facades so the CLI and the server never wire stages by hand.
package driver

import (
	"fmt"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/lexer"
	"wikitext/internal/observ"
	"wikitext/internal/parser"
	"wikitext/internal/preproc"
	"wikitext/internal/source"
	"wikitext/internal/token"
)

// Options настраивают один прогон конвейера.
type Options struct {
	// Typography включает типографский проход (кавычки, многоточия).
	Typography bool
	// Includer резолвит [[include ...]]; nil — маркеры остаются как есть.
	Includer preproc.Includer
	// MaxDiagnostics — лимит диагностик парсера (0 = без лимита).
	MaxDiagnostics int
	// Timer, если задан, получает тайминги стадий конвейера.
	Timer *observ.Timer
}

// PreprocessResult — результат текстовой стадии.
type PreprocessResult struct {
	Text  string
	Pages []preproc.PageRef
}

// TokenizeResult — препроцессинг + скан.
type TokenizeResult struct {
	Text   *source.Text
	Tokens []token.Token
	Pages  []preproc.PageRef
}

// ParseResult — полный прогон: текст, токены, дерево, диагностики.
type ParseResult struct {
	Text   *source.Text
	Tokens []token.Token
	Tree   *ast.Node
	Diags  []diag.Diagnostic
	Pages  []preproc.PageRef
}

// Preprocess прогоняет текстовую стадию: include-расширение, затем
// misc-замены, затем (опционально) типографику. Стадия тотальна.
func Preprocess(input string, opts Options) PreprocessResult {
	phase := beginPhase(opts.Timer, "preprocess")
	out, pages := preproc.ExpandIncludes(input, opts.Includer)
	out = preproc.Substitute(out)
	if opts.Typography {
		out = preproc.Typography(out)
	}
	endPhase(opts.Timer, phase, fmt.Sprintf("%d include(s)", len(pages)))
	return PreprocessResult{Text: out, Pages: pages}
}

// Tokenize препроцессит и сканирует. Спаны токенов указывают в
// препроцессированный текст, который и возвращается.
func Tokenize(name, input string, opts Options) TokenizeResult {
	pre := Preprocess(input, opts)
	phase := beginPhase(opts.Timer, "tokenize")
	text := source.New(name, pre.Text)
	toks := lexer.Tokenize(text)
	endPhase(opts.Timer, phase, fmt.Sprintf("%d token(s)", len(toks)))
	return TokenizeResult{
		Text:   text,
		Tokens: toks,
		Pages:  pre.Pages,
	}
}

// Parse — полный конвейер. Не падает ни на каком входе: максимум, что
// может случиться — предупреждения в Diags.
func Parse(name, input string, opts Options) ParseResult {
	tk := Tokenize(name, input, opts)
	phase := beginPhase(opts.Timer, "parse")
	out := parser.Parse(tk.Text, tk.Tokens, parser.Options{
		MaxDiagnostics: opts.MaxDiagnostics,
	})
	endPhase(opts.Timer, phase, fmt.Sprintf("%d diagnostic(s)", len(out.Diags)))
	return ParseResult{
		Text:   tk.Text,
		Tokens: tk.Tokens,
		Tree:   out.Tree,
		Diags:  out.Diags,
		Pages:  tk.Pages,
	}
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}

// ParseFile — то же самое для файла на диске.
func ParseFile(path string, opts Options) (ParseResult, error) {
	text, err := source.Load(path)
	if err != nil {
		return ParseResult{}, err
	}
	return Parse(text.Name, text.String(), opts), nil
}
