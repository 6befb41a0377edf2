// Package server owns the HTTP inspector surface. It is a boundary
// collaborator of the codec: it feeds raw byte buffers to decode and
// hands encoded packets back out; no packet logic lives here.
package server

import (
	"strings"
	"time"

	"github.com/danmuck/vbanctl/internal/config"
	"github.com/danmuck/vbanctl/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	name     string
	addr     string
	appeared time.Time
	router   *gin.Engine
}

func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		name:     cfg.Name,
		addr:     cfg.Addr,
		appeared: time.Now(),
		router:   r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Run() error {
	log.Info().Str("addr", s.addr).Str("name", s.name).Msg("inspector listening")
	return s.router.Run(s.addr)
}

// Router exposes the gin engine for tests and embedding.
func (s *Server) Router() *gin.Engine { return s.router }

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
