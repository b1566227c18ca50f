package server

import (
	"encoding/json"
	"net/http"

	"wikitext/internal/diagfmt"
	"wikitext/internal/driver"
)

// TextInput — тело всех POST-запросов конвейера.
type TextInput struct {
	Text string `json:"text"`
	// Typography переопределяет настройку из конфигурации, если задано.
	Typography *bool `json:"typography,omitempty"`
}

// Envelope — единый конверт ответов: {status, data | error}.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Envelope{Status: "ok", Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Status: "error", Error: msg})
}

// readInput декодирует тело с лимитом размера из конфигурации.
func (s *Server) readInput(w http.ResponseWriter, r *http.Request) (TextInput, bool) {
	var in TextInput
	body := r.Body
	if limit := s.cfg.Pipeline.MaxInputSize; limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return TextInput{}, false
	}
	return in, true
}

func (s *Server) driverOptions(in TextInput) driver.Options {
	typography := s.cfg.Pipeline.Typography
	if in.Typography != nil {
		typography = *in.Typography
	}
	return driver.Options{
		Typography:     typography,
		Includer:       s.includer,
		MaxDiagnostics: s.cfg.Pipeline.MaxDiagnostics,
	}
}

// PreprocessOutput — ответ /preprocess.
type PreprocessOutput struct {
	Text          string   `json:"text"`
	PagesIncluded []string `json:"pages_included"`
}

func (s *Server) handlePreprocess(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}
	res := driver.Preprocess(in.Text, s.driverOptions(in))
	writeOK(w, PreprocessOutput{
		Text:          res.Text,
		PagesIncluded: pageNames(res.Pages),
	})
}

// TokenizeOutput — ответ /tokenize.
type TokenizeOutput struct {
	Tokens        []diagfmt.TokenOutput `json:"tokens"`
	Text          string                `json:"text"`
	PagesIncluded []string              `json:"pages_included"`
}

func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}
	res := driver.Tokenize("request", in.Text, s.driverOptions(in))
	writeOK(w, TokenizeOutput{
		Tokens:        diagfmt.TokensOutput(res.Tokens),
		Text:          res.Text.String(),
		PagesIncluded: pageNames(res.Pages),
	})
}

// ParseOutput — ответ /parse.
type ParseOutput struct {
	Tree          diagfmt.NodeJSON          `json:"tree"`
	Diagnostics   diagfmt.DiagnosticsOutput `json:"diagnostics"`
	Text          string                    `json:"text"`
	PagesIncluded []string                  `json:"pages_included"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}
	res := driver.Parse("request", in.Text, s.driverOptions(in))
	writeOK(w, ParseOutput{
		Tree:          diagfmt.TreeToJSON(res.Tree),
		Diagnostics:   diagfmt.DiagnosticsToJSON(res.Diags, res.Text, diagfmt.JSONOpts{IncludePositions: true}),
		Text:          res.Text.String(),
		PagesIncluded: pageNames(res.Pages),
	})
}

// handleRender — полный прогон одним ответом: текст, токены, дерево,
// диагностики, включённые страницы.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}
	res := driver.Parse("request", in.Text, s.driverOptions(in))
	writeOK(w, diagfmt.BuildOutcome(
		res.Text, res.Tokens, res.Tree, res.Diags,
		pageNames(res.Pages),
		diagfmt.JSONOpts{IncludePositions: true},
	))
}
