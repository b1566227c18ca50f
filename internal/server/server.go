// Package server exposes the pipeline as a small JSON-over-HTTP service:
// one POST route per stage plus a live WebSocket preview. Handlers only
// compose the driver facades; no pipeline logic lives here.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"wikitext/internal/preproc"
	"wikitext/internal/project"
)

type Server struct {
	cfg      project.Config
	includer preproc.Includer
	logger   *log.Logger
}

func New(cfg project.Config, inc preproc.Includer) *Server {
	return &Server{
		cfg:      cfg,
		includer: inc,
		logger:   log.New(os.Stderr, "wikitext: ", log.LstdFlags),
	}
}

// Handler собирает маршрутизатор сервиса. Отдельно от ListenAndServe,
// чтобы httptest мог поднять сервер без сокета.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /preprocess", s.handlePreprocess)
	mux.HandleFunc("POST /tokenize", s.handleTokenize)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("POST /render", s.handleRender)
	mux.HandleFunc("/ws", s.handleWS)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// ListenAndServe поднимает сервис и гасит его по отмене контекста.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Printf("listening on %s", s.cfg.Server.Listen)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
