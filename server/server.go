package server

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"reel_hook_generator/config"
	"reel_hook_generator/generator"
	"reel_hook_generator/logger"
)

//go:embed web
var embeddedWeb embed.FS

// maxBodyBytes caps the JSON request body.
const maxBodyBytes = 100 << 10

type Server struct {
	genAgent *generator.Agent
	cfg      config.Config
	log      *logger.Logger
	metrics  *metrics
	registry *prometheus.Registry
	assets   fs.FS
	landing  []byte
	now      func() time.Time
}

func New(genAgent *generator.Agent, cfg config.Config, log *logger.Logger) (*Server, error) {
	if genAgent == nil {
		return nil, errors.New("generator agent required")
	}
	if log == nil {
		log = logger.Discard()
	}

	assets, err := fs.Sub(embeddedWeb, "web/assets")
	if err != nil {
		return nil, err
	}
	landing, err := renderLanding(embeddedWeb)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &Server{
		genAgent: genAgent,
		cfg:      cfg,
		log:      log.WithComponent("server"),
		metrics:  newMetrics(reg),
		registry: reg,
		assets:   assets,
		landing:  landing,
		now:      time.Now,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestLoggingMiddleware(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", logger.RequestIDHeader},
	}).Handler)

	r.Post("/api/generate-hooks", s.handleGenerateHooks)
	r.Get("/api/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))
	r.Get("/*", s.handleLanding)
	return r
}
