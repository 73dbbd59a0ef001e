// Package charts renders the optional report visualizations as
// base64-encoded PNGs. Rendering is best-effort: individual chart
// failures degrade the section instead of failing the report.
package charts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/agrovista/mandi/models"
)

const histogramBins = 8

// Renderer draws the report charts. Implements analyze.ChartRenderer.
type Renderer struct {
	log zerolog.Logger
}

// New returns a chart renderer.
func New(logger zerolog.Logger) *Renderer {
	return &Renderer{log: logger.With().Str("component", "charts").Logger()}
}

// Render draws all report charts for a batch. Failed charts are
// omitted; their errors are joined into the result's Error field and
// the status drops to degraded. A batch of fewer than two observations
// renders nothing useful and reports the section unavailable.
func (r *Renderer) Render(observations []models.PriceObservation, historical []models.HistoricalPricePoint) models.VisualizationResult {
	if len(observations) < 2 {
		return models.VisualizationResult{
			Status:  models.VisualizationUnavailable,
			Message: "Not enough price data to draw charts",
		}
	}

	out := models.VisualizationResult{Charts: map[string]string{}}
	var failures []string

	renders := []struct {
		name string
		fn   func() ([]byte, error)
	}{
		{"price_distribution", func() ([]byte, error) { return priceHistogram(observations) }},
		{"price_ranking", func() ([]byte, error) { return priceRanking(observations) }},
		{"trend_distribution", func() ([]byte, error) { return trendPie(observations) }},
		{"price_history", func() ([]byte, error) { return priceHistory(observations, historical) }},
		{"volatility_by_commodity", func() ([]byte, error) { return volatilityBars(observations) }},
		{"cumulative_momentum", func() ([]byte, error) { return momentumBars(observations) }},
	}

	for _, render := range renders {
		png, err := render.fn()
		if err != nil {
			r.log.Warn().Err(err).Str("chart", render.name).Msg("chart render failed")
			failures = append(failures, fmt.Sprintf("%s: %v", render.name, err))
			continue
		}
		out.Charts[render.name] = base64.StdEncoding.EncodeToString(png)
	}

	switch {
	case len(out.Charts) == 0:
		out.Status = models.VisualizationUnavailable
		out.Charts = nil
		out.Message = "All chart renders failed"
		out.Error = strings.Join(failures, "; ")
	case len(failures) > 0:
		out.Status = models.VisualizationDegraded
		out.Error = strings.Join(failures, "; ")
	default:
		out.Status = models.VisualizationOK
	}
	return out
}

// priceHistogram bins the price levels into equal-width buckets.
func priceHistogram(observations []models.PriceObservation) ([]byte, error) {
	prices := priceLevels(observations)
	min, max := prices[0], prices[0]
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	bins := histogramBins
	if len(prices) < bins {
		bins = len(prices)
	}
	width := (max - min) / float64(bins)
	if width == 0 {
		width = 1
	}
	counts := make([]int, bins)
	for _, p := range prices {
		idx := int((p - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	values := make([]chart.Value, bins)
	for i, c := range counts {
		values[i] = chart.Value{
			Value: float64(c),
			Label: fmt.Sprintf("%.0f", min+width*float64(i)),
		}
	}

	graph := chart.BarChart{
		Title:    "Price Distribution",
		Height:   400,
		BarWidth: 40,
		Bars:     values,
	}
	return renderPNG(graph.Render)
}

// priceRanking draws commodities as bars ordered by price, highest first.
func priceRanking(observations []models.PriceObservation) ([]byte, error) {
	sorted := make([]models.PriceObservation, len(observations))
	copy(sorted, observations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CurrentPrice > sorted[j].CurrentPrice })

	values := make([]chart.Value, len(sorted))
	for i, obs := range sorted {
		values[i] = chart.Value{Value: obs.CurrentPrice, Label: obs.CommodityName}
	}

	graph := chart.BarChart{
		Title:    "Commodity Prices (₹/quintal)",
		Height:   400,
		BarWidth: 40,
		Bars:     values,
	}
	return renderPNG(graph.Render)
}

func trendPie(observations []models.PriceObservation) ([]byte, error) {
	counts := map[models.PriceTrend]int{}
	for _, obs := range observations {
		counts[obs.PriceTrend]++
	}

	var values []chart.Value
	for _, trend := range []models.PriceTrend{models.TrendIncreasing, models.TrendStable, models.TrendDecreasing} {
		if counts[trend] > 0 {
			values = append(values, chart.Value{
				Value: float64(counts[trend]),
				Label: string(trend),
			})
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no trend labels to plot")
	}

	graph := chart.PieChart{
		Title:  "Trend Distribution",
		Height: 400,
		Width:  400,
		Values: values,
	}
	return renderPNG(graph.Render)
}

// priceHistory plots the historical series when one is supplied,
// otherwise the batch's price levels in observation order.
func priceHistory(observations []models.PriceObservation, historical []models.HistoricalPricePoint) ([]byte, error) {
	var ys []float64
	if len(historical) >= 2 {
		for _, point := range historical {
			ys = append(ys, point.Price)
		}
	} else {
		ys = priceLevels(observations)
	}

	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  "Price History",
		Height: 400,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "price",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return renderPNG(graph.Render)
}

// volatilityBars shows each commodity's absolute deviation from the
// batch mean as a share of the mean.
func volatilityBars(observations []models.PriceObservation) ([]byte, error) {
	prices := priceLevels(observations)
	var mean float64
	for _, p := range prices {
		mean += p
	}
	mean /= float64(len(prices))
	if mean == 0 {
		return nil, fmt.Errorf("zero mean price")
	}

	values := make([]chart.Value, len(observations))
	for i, obs := range observations {
		dev := obs.CurrentPrice - mean
		if dev < 0 {
			dev = -dev
		}
		values[i] = chart.Value{
			Value: dev / mean * 100,
			Label: obs.CommodityName,
		}
	}

	graph := chart.BarChart{
		Title:    "Deviation From Mean (%)",
		Height:   400,
		BarWidth: 40,
		Bars:     values,
	}
	return renderPNG(graph.Render)
}

// momentumBars plots the cumulative first differences of the price
// levels, the same series the trend module's momentum figure is
// derived from.
func momentumBars(observations []models.PriceObservation) ([]byte, error) {
	prices := priceLevels(observations)
	if len(prices) < 2 {
		return nil, fmt.Errorf("need at least 2 prices")
	}

	values := make([]chart.Value, 0, len(prices)-1)
	cumulative := 0.0
	for i := 1; i < len(prices); i++ {
		cumulative += prices[i] - prices[i-1]
		values = append(values, chart.Value{
			Value: cumulative,
			Label: fmt.Sprintf("%d", i),
		})
	}

	graph := chart.BarChart{
		Title:    "Cumulative Price Momentum",
		Height:   400,
		BarWidth: 40,
		Bars:     values,
	}
	return renderPNG(graph.Render)
}

func priceLevels(observations []models.PriceObservation) []float64 {
	out := make([]float64, len(observations))
	for i, obs := range observations {
		out[i] = obs.CurrentPrice
	}
	return out
}

func renderPNG(render func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
