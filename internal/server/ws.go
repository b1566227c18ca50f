package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"wikitext/internal/diagfmt"
	"wikitext/internal/driver"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Предпросмотр обслуживает локальные инструменты; origin не проверяем.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWS — живой предпросмотр: каждое текстовое сообщение — документ,
// в ответ уходит конверт с полным результатом прогона. Соединение живёт,
// пока клиент шлёт сообщения.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("ws upgrade failed: %v", err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Printf("ws close: %v", err)
		}
	}()

	if limit := s.cfg.Pipeline.MaxInputSize; limit > 0 {
		conn.SetReadLimit(limit)
	}

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("ws read: %v", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		out := s.renderEnvelope(string(payload))
		if err := conn.WriteJSON(out); err != nil {
			s.logger.Printf("ws write: %v", err)
			return
		}
	}
}

func (s *Server) renderEnvelope(text string) Envelope {
	res := driver.Parse("ws", text, s.driverOptions(TextInput{Text: text}))
	out := diagfmt.BuildOutcome(
		res.Text, res.Tokens, res.Tree, res.Diags,
		pageNames(res.Pages),
		diagfmt.JSONOpts{IncludePositions: true},
	)
	return Envelope{Status: "ok", Data: out}
}
