package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/source"
	"wikitext/internal/token"
)

// OutcomeOutput — полный результат прогона в сериализуемой форме.
// Общая структура для JSON-ответов сервера и msgpack-вывода CLI.
type OutcomeOutput struct {
	Text        string            `json:"text" msgpack:"text"`
	Tokens      []TokenOutput     `json:"tokens,omitempty" msgpack:"tokens,omitempty"`
	Tree        *NodeJSON         `json:"tree,omitempty" msgpack:"tree,omitempty"`
	Diagnostics DiagnosticsOutput `json:"diagnostics" msgpack:"diagnostics"`
	Pages       []string          `json:"pages,omitempty" msgpack:"pages,omitempty"`
}

// BuildOutcome собирает OutcomeOutput из артефактов конвейера.
// Любой из tokens/tree может быть пустым: стадии независимы.
func BuildOutcome(text *source.Text, tokens []token.Token, tree *ast.Node, diags []diag.Diagnostic, pages []string, opts JSONOpts) OutcomeOutput {
	out := OutcomeOutput{
		Text:        text.String(),
		Diagnostics: DiagnosticsToJSON(diags, text, opts),
		Pages:       pages,
	}
	if tokens != nil {
		out.Tokens = TokensOutput(tokens)
	}
	if tree != nil {
		nj := TreeToJSON(tree)
		out.Tree = &nj
	}
	return out
}

// FormatOutcomeMsgpack кодирует результат прогона в msgpack.
func FormatOutcomeMsgpack(w io.Writer, out OutcomeOutput) error {
	return msgpack.NewEncoder(w).Encode(out)
}

// DecodeOutcomeMsgpack — обратная операция, для потребителей кеша и тестов.
func DecodeOutcomeMsgpack(r io.Reader) (OutcomeOutput, error) {
	var out OutcomeOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return OutcomeOutput{}, err
	}
	return out, nil
}
