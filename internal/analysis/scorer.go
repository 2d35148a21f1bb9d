package analysis

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/vision"
)

// ScoreSet holds the six sub-scores, the weighted total and the grade.
// Sub-scores are integers in [0, 100].
type ScoreSet struct {
	Contrast          int   `json:"contrast"`
	Harmony           int   `json:"harmony"`
	Balance           int   `json:"balance"`
	Diversity         int   `json:"diversity"`
	Accessibility     int   `json:"accessibility"`
	ColourBlindSafety int   `json:"colour_blind_safety"`
	Total             int   `json:"total"`
	Grade             Grade `json:"grade"`
}

// Analysis is a ScoreSet together with the intermediate values behind it.
type Analysis struct {
	Palette     []string                      `json:"palette"`
	Scores      ScoreSet                      `json:"scores"`
	Balance     BalanceDetail                 `json:"balance"`
	Diversity   DiversityDetail               `json:"diversity"`
	ColourBlind map[vision.Deficiency]float64 `json:"colour_blind"`
}

// Scorer computes palette scores with a fixed configuration.
// A Scorer holds no per-call state and is safe for concurrent use.
type Scorer struct {
	config Config
}

// NewScorer creates a Scorer after validating cfg.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return &Scorer{config: cfg}, nil
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.config
}

var defaultScorer = &Scorer{config: DefaultConfig()}

// Score analyses p with the default configuration and returns its ScoreSet.
func Score(p *colour.Palette) ScoreSet {
	return defaultScorer.Analyze(p).Scores
}

// Analyze analyses p with the default configuration.
func Analyze(p *colour.Palette) *Analysis {
	return defaultScorer.Analyze(p)
}

// Score returns only the ScoreSet for p.
func (s *Scorer) Score(p *colour.Palette) ScoreSet {
	return s.Analyze(p).Scores
}

// Analyze computes every sub-score for p.
func (s *Scorer) Analyze(p *colour.Palette) *Analysis {
	v := newView(p)

	balance := balanceScore(v)
	diversity := diversityScore(v)
	perType, cbScore := colourBlindScore(v, s.config.ColourBlindDeltaE)

	scores := ScoreSet{
		Contrast:          contrastScore(v),
		Harmony:           harmonyScore(v),
		Balance:           balance.Score,
		Diversity:         diversity.Score,
		Accessibility:     accessibilityScore(v),
		ColourBlindSafety: cbScore,
	}
	scores.Total = s.total(scores)
	scores.Grade = GradeFor(scores.Total)

	return &Analysis{
		Palette:     p.ToHex(),
		Scores:      scores,
		Balance:     balance,
		Diversity:   diversity,
		ColourBlind: perType,
	}
}

func (s *Scorer) total(sc ScoreSet) int {
	w := s.config.Weights
	sum := w.Contrast*float64(sc.Contrast) +
		w.Harmony*float64(sc.Harmony) +
		w.Balance*float64(sc.Balance) +
		w.Diversity*float64(sc.Diversity) +
		w.Accessibility*float64(sc.Accessibility) +
		w.ColourBlindSafety*float64(sc.ColourBlindSafety)
	if s.config.NormaliseWeights {
		sum /= w.Sum()
	}
	return colour.Round(sum)
}

// view caches per-colour conversions for the duration of one Analyze call.
type view struct {
	palette   *colour.Palette
	hsl       []colour.HSL
	luminance []float64
}

func newView(p *colour.Palette) *view {
	v := &view{
		palette:   p,
		hsl:       p.HSL(),
		luminance: make([]float64, p.Len()),
	}
	for i, c := range p.Colours {
		v.luminance[i] = colour.Luminance(c)
	}
	return v
}

// column extracts one HSL component for every colour.
func (v *view) column(pick func(colour.HSL) float64) []float64 {
	out := make([]float64, len(v.hsl))
	for i, h := range v.hsl {
		out[i] = pick(h)
	}
	return out
}

// average rounds the mean of points over n, or returns 0 when n is zero.
func average(points, n int) int {
	if n == 0 {
		return 0
	}
	return colour.Round(float64(points) / float64(n))
}
