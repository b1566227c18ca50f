package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"wikitext/internal/source"
	"wikitext/internal/token"
)

// TokenOutput — сериализуемая форма токена.
type TokenOutput struct {
	Kind string      `json:"kind" msgpack:"kind"`
	Text string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Span source.Span `json:"span" msgpack:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, text *source.Text) {
	for i, tok := range tokens {
		startPos, endPos := text.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-18s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
}

// TokensOutput строит сериализуемый список токенов (общий для JSON и msgpack).
func TokensOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokensOutput(tokens))
}
