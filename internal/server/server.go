package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/songzhibin97/cosmoboard/internal/render"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("index.tmpl").Funcs(template.FuncMap{
	"slot": slotContent,
}).ParseFS(templatesFS, "templates/index.tmpl"))

// slotContent escapes plain-text slots and passes HTML fragment slots through.
func slotContent(v render.View, id string) template.HTML {
	var content string
	switch id {
	case render.SlotLastUpdate:
		content = v.LastUpdate
	case render.SlotError:
		content = v.Banner
	default:
		content = v.Slots[id]
	}

	if render.IsHTML(id) {
		return template.HTML(content)
	}
	return template.HTML(template.HTMLEscapeString(content))
}

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}

// Server serves the dashboard page and a JSON view of the board.
type Server struct {
	board        *render.Board
	refresh      time.Duration
	tokenAddress string
	logger       Logger
}

func NewServer(board *render.Board, refresh time.Duration, tokenAddress string, logger Logger) *Server {
	return &Server{
		board:        board,
		refresh:      refresh,
		tokenAddress: tokenAddress,
		logger:       logger,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/api/slots", s.handleSlots)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

type pageData struct {
	View           render.View
	RefreshSeconds int
	TokenAddress   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	seconds := int(s.refresh / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageData{
		View:           s.board.View(),
		RefreshSeconds: seconds,
		TokenAddress:   s.tokenAddress,
	})
	if err != nil {
		s.logger.Error("failed to render dashboard", "error", err)
	}
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.board.View()); err != nil {
		s.logger.Error("failed to encode slots", "error", err)
	}
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
