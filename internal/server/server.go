// Package server exposes a running world over HTTP: health, prometheus
// metrics and a JSON snapshot of the current generation.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"lifegrid/internal/observability"
	"lifegrid/pkg/sims/life"
)

// Snapshot is the JSON body served at /state.
type Snapshot struct {
	Generation uint64 `json:"generation"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Alive      int    `json:"alive"`
	Edge       string `json:"edge"`
	Board      string `json:"board"`
}

// Board publishes snapshots of a world that is being stepped elsewhere. The
// stepping goroutine calls Publish between generations; handlers only ever
// read the last published snapshot.
type Board struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Publish records the current generation of w.
func (b *Board) Publish(w *life.World, edge life.Edge) {
	snap := Snapshot{
		Generation: w.Generation(),
		Width:      w.Width(),
		Height:     w.Height(),
		Alive:      w.AliveCount(),
		Edge:       edge.String(),
		Board:      string(w.AppendText(nil)),
	}
	b.mu.Lock()
	b.snap = snap
	b.mu.Unlock()
}

// Snapshot returns the last published snapshot.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// Server is the HTTP front for a Board.
type Server struct {
	Addr    string
	board   *Board
	router  *gin.Engine
	started time.Time
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = append(out, "http://localhost")
	}
	return out
}

// New builds the router for board.
func New(addr string, board *Board, corsOrigins []string) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{Addr: addr, board: board, router: r, started: time.Now()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(s.started).String(),
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.board.Snapshot())
	})
	s.router.GET("/state.txt", func(c *gin.Context) {
		c.String(http.StatusOK, s.board.Snapshot().Board)
	})
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on s.Addr until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.router, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Str("addr", s.Addr).Msg("http listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
