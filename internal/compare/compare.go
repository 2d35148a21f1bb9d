// Package compare scores two palettes side by side and explains how they differ.
package compare

import (
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/i18n"
)

// Side identifies one of the compared palettes, or neither.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
	Tie   Side = "tie"
)

// Thresholds for surfacing differences. Smaller deltas are shown as bars
// but not described in text.
const (
	BarThreshold              = 10
	totalInsightDelta         = 15
	contrastInsightDelta      = 20
	harmonyInsightDelta       = 20
	accessibilityInsightDelta = 15
	diversityInsightDelta     = 20
	warmthInsightDelta        = 40.0
	saturationInsightDelta    = 20.0
	lightnessInsightDelta     = 20.0
)

// Options configures a comparison.
type Options struct {
	Lang   language.Tag
	Scorer *analysis.Scorer
}

// DefaultOptions returns English output with the default scorer.
func DefaultOptions() Options {
	return Options{Lang: language.English}
}

// Summary holds the scores and aggregates of one palette.
type Summary struct {
	Palette        []string          `json:"palette"`
	Scores         analysis.ScoreSet `json:"scores"`
	Temperature    Temperature       `json:"temperature"`
	MeanSaturation float64           `json:"mean_saturation"`
	MeanLightness  float64           `json:"mean_lightness"`
}

// MetricDelta compares one sub-score. Delta is B minus A.
type MetricDelta struct {
	Metric      string `json:"metric"`
	A           int    `json:"a"`
	B           int    `json:"b"`
	Delta       int    `json:"delta"`
	Winner      Side   `json:"winner"`
	Significant bool   `json:"significant"`
}

// Insight is one localised observation about the comparison.
type Insight struct {
	ID      string `json:"id"`
	Palette Side   `json:"palette,omitempty"`
	Text    string `json:"text"`
}

// Report is the result of comparing two palettes.
type Report struct {
	A              Summary       `json:"a"`
	B              Summary       `json:"b"`
	TotalDelta     int           `json:"total_delta"`
	Winner         Side          `json:"winner"`
	Metrics        []MetricDelta `json:"metrics"`
	Insights       []Insight     `json:"insights"`
	Recommendation Insight       `json:"recommendation"`
}

// Compare scores a and b and derives deltas, insights and a recommendation.
// TotalDelta is B's total minus A's; equal totals are a tie.
func Compare(a, b *colour.Palette, opts Options) *Report {
	scorer := opts.Scorer
	if scorer == nil {
		s, _ := analysis.NewScorer(analysis.DefaultConfig())
		scorer = s
	}
	lang := i18n.Match(opts.Lang)

	r := &Report{
		A: summarise(scorer, a),
		B: summarise(scorer, b),
	}
	r.TotalDelta = r.B.Scores.Total - r.A.Scores.Total
	r.Winner = winner(r.A.Scores.Total, r.B.Scores.Total)

	r.Metrics = []MetricDelta{
		metric("contrast", r.A.Scores.Contrast, r.B.Scores.Contrast),
		metric("harmony", r.A.Scores.Harmony, r.B.Scores.Harmony),
		metric("accessibility", r.A.Scores.Accessibility, r.B.Scores.Accessibility),
		metric("diversity", r.A.Scores.Diversity, r.B.Scores.Diversity),
	}

	r.Insights = insights(r, lang)
	r.Recommendation = recommend(r, lang)
	return r
}

func summarise(s *analysis.Scorer, p *colour.Palette) Summary {
	hsl := p.HSL()
	var sat, light float64
	for _, h := range hsl {
		sat += h.S
		light += h.L
	}
	sum := Summary{
		Palette:     p.ToHex(),
		Scores:      s.Score(p),
		Temperature: temperatureOf(hsl),
	}
	if n := float64(len(hsl)); n > 0 {
		sum.MeanSaturation = sat / n
		sum.MeanLightness = light / n
	}
	return sum
}

func winner(a, b int) Side {
	switch {
	case a > b:
		return SideA
	case b > a:
		return SideB
	default:
		return Tie
	}
}

func metric(name string, a, b int) MetricDelta {
	delta := b - a
	return MetricDelta{
		Metric:      name,
		A:           a,
		B:           b,
		Delta:       delta,
		Winner:      winner(a, b),
		Significant: abs(delta) >= BarThreshold,
	}
}

func abs[T int | float64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
