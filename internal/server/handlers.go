package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrovista/mandi/internal/agdata"
	"github.com/agrovista/mandi/internal/analyze"
	"github.com/agrovista/mandi/internal/metrics"
	"github.com/agrovista/mandi/internal/price"
	"github.com/agrovista/mandi/internal/recommend"
	"github.com/agrovista/mandi/models"
)

// handleRecommendations runs the full recommendation pipeline: weather,
// prices, scoring, risk profile, advice and the LLM advisory.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var query models.FarmerQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		metrics.RecommendationsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if query.Location.State == "" {
		metrics.RecommendationsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, "location.state is required", http.StatusBadRequest)
		return
	}
	if query.RiskTolerance == "" {
		query.RiskTolerance = models.LevelMedium
	}

	ctx := r.Context()
	weather := s.weather.GetSnapshot(ctx, query.Location)
	observations := s.prices.GetPrices(ctx, query.Location, query.PreferredCrops)

	recommendations := s.engine.Recommend(query, weather, observations)
	snapshot := price.Snapshot(observations)

	response := models.CropSuggestionResponse{
		Recommendations: recommendations,
		Advice:          recommend.Advise(weather, recommendations),
		MarketAnalysis:  snapshot,
		RiskAssessment:  recommend.AssessRisks(query, weather, snapshot),
		GeneratedAt:     s.now(),
		LocationSummary: s.engine.SummarizeLocation(query.Location),
	}
	if s.cfg.AdvisoryEnabled {
		response.AIAdvisory = s.advisory.Generate(ctx, query, weather, observations)
	}

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleCommodityPrices(w http.ResponseWriter, r *http.Request) {
	loc, ok := locationFromQuery(w, r)
	if !ok {
		return
	}
	crops := splitCrops(r.URL.Query().Get("crops"))

	observations := s.prices.GetPrices(r.Context(), loc, crops)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"commodity_prices": observations,
		"market_analysis":  price.Snapshot(observations),
	})
}

// handleMarketAnalysis runs the full statistical report over the
// requested commodities.
func (s *Server) handleMarketAnalysis(w http.ResponseWriter, r *http.Request) {
	loc, ok := locationFromQuery(w, r)
	if !ok {
		return
	}
	crops := splitCrops(r.URL.Query().Get("crops"))

	observations := s.prices.GetPrices(r.Context(), loc, crops)
	report := s.analyzer.AnalyzeMarket(observations, nil)
	metrics.AnalysisReportsTotal.Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report":     report,
		"top_movers": analyze.TopMovers(observations, 3),
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err1 != nil || err2 != nil {
		writeError(w, "lat and lon query parameters are required", http.StatusBadRequest)
		return
	}

	loc := models.Location{
		State:     chi.URLParam(r, "state"),
		District:  chi.URLParam(r, "district"),
		Latitude:  lat,
		Longitude: lon,
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weather_summary": s.weather.GetSnapshot(r.Context(), loc),
	})
}

func (s *Server) handleCropInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "crop")
	crop, ok := s.kb.Crop(name)
	if !ok {
		writeError(w, "Crop not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, crop)
}

func (s *Server) handleRegionalInfo(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	region, ok := s.kb.Region(state)
	if !ok {
		writeError(w, "State not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, region)
}

func (s *Server) handlePriceTrends(w http.ResponseWriter, r *http.Request) {
	commodity := chi.URLParam(r, "commodity")
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	series, err := price.Trends(commodity, days, s.now())
	if err != nil {
		writeError(w, "Commodity not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) handleLLMStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"llm_available": s.cfg.AdvisoryEnabled && s.advisory.Available(r.Context()),
		"current_model": s.cfg.AdvisoryModel,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"service":       "mandi",
		"llm_available": s.cfg.AdvisoryEnabled && s.advisory.Available(r.Context()),
		"features": map[string]bool{
			"commodity_prices":     true,
			"weather_forecast":     true,
			"crop_recommendations": true,
			"market_analysis":      true,
			"charts":               s.cfg.ChartsEnabled,
		},
	})
}

// handleSeasons returns the cropping-season calendar along with the
// crops eligible for the season in progress.
func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	current := agdata.SeasonForMonth(s.now().Month())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"current_season": current,
		"seasonal_crops": s.kb.SeasonalCrops(current),
		"calendar":       agdata.Seasons(),
	})
}

// locationFromQuery parses the common state/district/lat/lon query
// parameters. state is mandatory; coordinates default to zero.
func locationFromQuery(w http.ResponseWriter, r *http.Request) (models.Location, bool) {
	q := r.URL.Query()
	state := q.Get("state")
	if state == "" {
		writeError(w, "state query parameter is required", http.StatusBadRequest)
		return models.Location{}, false
	}
	lat, _ := strconv.ParseFloat(q.Get("lat"), 64)
	lon, _ := strconv.ParseFloat(q.Get("lon"), 64)
	return models.Location{
		State:     state,
		District:  q.Get("district"),
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func splitCrops(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
