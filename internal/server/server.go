package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/estatehub/backoffice/internal/clock"
	"github.com/estatehub/backoffice/internal/config"
	"github.com/estatehub/backoffice/internal/logger"
	"github.com/estatehub/backoffice/internal/metrics"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config    config.Config
	Log       *zap.Logger
	Clock     clock.Clock
	Metrics   *metrics.Metrics
	ReportSvc reportdomain.Service
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	log       *zap.Logger
	clock     clock.Clock
	metrics   *metrics.Metrics
	reportSvc reportdomain.Service
}

func New(p Params) *Server {
	if p.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(p.Log))
	engine.Use(ErrorHandlingMiddleware())

	s := &Server{
		engine:    engine,
		cfg:       p.Config,
		log:       p.Log.Named("server"),
		clock:     p.Clock,
		metrics:   p.Metrics,
		reportSvc: p.ReportSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.Healthz)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	api := s.engine.Group("/api/v1")
	api.GET("/reports/:type", s.GetReport)
	api.GET("/reports/:type/export", s.ExportReport)
}

func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", s.cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(RunHTTP),
)
