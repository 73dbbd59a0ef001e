// Package server wires the analysis and recommendation cores to the
// HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/config"
	"github.com/agrovista/mandi/internal/analyze"
	"github.com/agrovista/mandi/internal/metrics"
	"github.com/agrovista/mandi/internal/recommend"
	"github.com/agrovista/mandi/models"
)

// Server holds the request handlers and their collaborators.
type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	kb       models.KnowledgeBase
	weather  models.WeatherProvider
	prices   models.PriceProvider
	advisory models.AdvisoryGenerator
	engine   *recommend.Engine
	analyzer *analyze.Analyzer
	now      func() time.Time
}

// Deps are the collaborators the server needs.
type Deps struct {
	KB       models.KnowledgeBase
	Weather  models.WeatherProvider
	Prices   models.PriceProvider
	Advisory models.AdvisoryGenerator
	Engine   *recommend.Engine
	Analyzer *analyze.Analyzer
}

// New builds a server over the given collaborators.
func New(cfg *config.Config, deps Deps, logger zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		log:      logger.With().Str("component", "server").Logger(),
		kb:       deps.KB,
		weather:  deps.Weather,
		prices:   deps.Prices,
		advisory: deps.Advisory,
		engine:   deps.Engine,
		analyzer: deps.Analyzer,
		now:      time.Now,
	}
}

// Handler builds the chi router with the full API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.Timeout(time.Duration(s.cfg.RequestTimeout) * time.Second))
	r.Use(metrics.Middleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommendations)
		r.Get("/commodity-prices", s.handleCommodityPrices)
		r.Get("/market-analysis", s.handleMarketAnalysis)
		r.Get("/weather/{state}/{district}", s.handleWeather)
		r.Get("/crop-info/{crop}", s.handleCropInfo)
		r.Get("/regional-info/{state}", s.handleRegionalInfo)
		r.Get("/price-trends/{commodity}", s.handlePriceTrends)
		r.Get("/seasons", s.handleSeasons)
		r.Get("/llm-status", s.handleLLMStatus)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := s.now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
