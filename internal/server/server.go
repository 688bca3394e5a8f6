package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danmuck/fastahdr/internal/config"
	"github.com/danmuck/fastahdr/internal/observability"
)

const version = "0.1.0"

// Service is the header-parsing HTTP API.
type Service struct {
	cfg      config.ServerConfig
	logger   zerolog.Logger
	router   *gin.Engine
	appeared time.Time
}

func New(cfg config.ServerConfig, logger zerolog.Logger) *Service {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetrics())
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Service{
		cfg:      cfg,
		logger:   logger,
		router:   r,
		appeared: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Service) Handler() http.Handler { return s.router }

func (s *Service) Run() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("headerd listening")
	return s.router.Run(s.cfg.Addr)
}
