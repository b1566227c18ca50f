package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"wikitext/internal/preproc"
	"wikitext/internal/project"
)

func newTestServer(t *testing.T, cfg project.Config, inc preproc.Includer) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(cfg, inc).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body any) (*http.Response, Envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	return resp, env
}

// data перекодирует env.Data (map после общего Unmarshal) в конкретный тип
func data[T any](t *testing.T, env Envelope) T {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatal(err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPreprocessRoute(t *testing.T) {
	inc := preproc.MapIncluder{"footer": "included text"}
	srv := newTestServer(t, project.Default(), inc)

	resp, env := post(t, srv.URL+"/preprocess", TextInput{Text: "a\r\n[[include footer]]"})
	if resp.StatusCode != http.StatusOK || env.Status != "ok" {
		t.Fatalf("status = %d %q", resp.StatusCode, env.Status)
	}
	out := data[PreprocessOutput](t, env)
	if out.Text != "a\nincluded text" {
		t.Fatalf("text = %q", out.Text)
	}
	if len(out.PagesIncluded) != 1 || out.PagesIncluded[0] != "footer" {
		t.Fatalf("pages = %v", out.PagesIncluded)
	}
}

func TestTokenizeRoute(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)

	_, env := post(t, srv.URL+"/tokenize", TextInput{Text: "**x"})
	out := data[TokenizeOutput](t, env)
	if len(out.Tokens) != 3 {
		t.Fatalf("tokens = %d, want bold, text, eof", len(out.Tokens))
	}
	if out.Tokens[0].Kind != "bold" {
		t.Fatalf("first kind = %q", out.Tokens[0].Kind)
	}
	if out.PagesIncluded == nil {
		t.Fatal("pages_included must be [], not null")
	}
}

func TestParseRoute(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)

	_, env := post(t, srv.URL+"/parse", TextInput{Text: "**unclosed"})
	out := data[ParseOutput](t, env)
	if out.Tree.Kind != "document" {
		t.Fatalf("tree kind = %q", out.Tree.Kind)
	}
	if out.Diagnostics.Total != 1 {
		t.Fatalf("diagnostics total = %d, want 1", out.Diagnostics.Total)
	}
	if got := out.Diagnostics.Diagnostics[0].Code; got != "unclosed-auto-closed" {
		t.Fatalf("code = %q", got)
	}
}

func TestRenderRoute(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)

	_, env := post(t, srv.URL+"/render", TextInput{Text: "= T"})
	if env.Status != "ok" {
		t.Fatalf("status = %q", env.Status)
	}
	raw, _ := json.Marshal(env.Data)
	for _, key := range []string{`"text"`, `"tokens"`, `"tree"`, `"diagnostics"`} {
		if !bytes.Contains(raw, []byte(key)) {
			t.Fatalf("render output missing %s: %s", key, raw)
		}
	}
}

func TestTypographyOverride(t *testing.T) {
	cfg := project.Default() // typography off by default
	srv := newTestServer(t, cfg, nil)

	on := true
	_, env := post(t, srv.URL+"/preprocess", TextInput{Text: "``q''", Typography: &on})
	if out := data[PreprocessOutput](t, env); out.Text != "“q”" {
		t.Fatalf("text = %q", out.Text)
	}
}

func TestBadBody(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)

	resp, err := http.Post(srv.URL+"/parse", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestInputSizeLimit(t *testing.T) {
	cfg := project.Default()
	cfg.Pipeline.MaxInputSize = 64
	srv := newTestServer(t, cfg, nil)

	big := TextInput{Text: strings.Repeat("a", 1024)}
	resp, env := post(t, srv.URL+"/parse", big)
	if resp.StatusCode == http.StatusOK || env.Status == "ok" {
		t.Fatalf("oversized body accepted: %d %q", resp.StatusCode, env.Status)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)

	resp, err := http.Get(srv.URL + "/parse")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestWebSocketPreview(t *testing.T) {
	srv := newTestServer(t, project.Default(), nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	defer func() { _ = conn.Close() }()

	for _, doc := range []string{"**live**", "= updated"} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(doc)); err != nil {
			t.Fatal(err)
		}
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatal(err)
		}
		if env.Status != "ok" {
			t.Fatalf("status = %q", env.Status)
		}
	}
}
