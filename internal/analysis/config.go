// Package analysis scores palettes on contrast, harmony, balance, diversity,
// accessibility and colour-blind safety, and combines the results into a
// weighted total with a letter grade.
package analysis

import "fmt"

// Weights controls how much each sub-score contributes to the total.
type Weights struct {
	Contrast          float64 `json:"contrast"`
	Harmony           float64 `json:"harmony"`
	Balance           float64 `json:"balance"`
	Diversity         float64 `json:"diversity"`
	Accessibility     float64 `json:"accessibility"`
	ColourBlindSafety float64 `json:"colour_blind_safety"`
}

// DefaultWeights returns the standard weighting. The weights sum to 1.15,
// so totals can exceed 100 unless Config.NormaliseWeights is set.
func DefaultWeights() Weights {
	return Weights{
		Contrast:          0.25,
		Harmony:           0.25,
		Balance:           0.20,
		Diversity:         0.15,
		Accessibility:     0.15,
		ColourBlindSafety: 0.15,
	}
}

// Sum returns the sum of all weights.
func (w Weights) Sum() float64 {
	return w.Contrast + w.Harmony + w.Balance + w.Diversity + w.Accessibility + w.ColourBlindSafety
}

// Config holds configuration for palette scoring.
type Config struct {
	Weights Weights

	// NormaliseWeights divides the weighted total by the weight sum.
	NormaliseWeights bool

	// ColourBlindDeltaE is the ΔE a pair must exceed to count as
	// distinguishable in the colour-blind safety score.
	ColourBlindDeltaE float64
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights:           DefaultWeights(),
		NormaliseWeights:  false,
		ColourBlindDeltaE: 15,
	}
}

// Validate validates the scoring configuration.
func (c Config) Validate() error {
	w := c.Weights
	named := []struct {
		name  string
		value float64
	}{
		{"contrast", w.Contrast},
		{"harmony", w.Harmony},
		{"balance", w.Balance},
		{"diversity", w.Diversity},
		{"accessibility", w.Accessibility},
		{"colour blind safety", w.ColourBlindSafety},
	}
	for _, n := range named {
		if n.value < 0 {
			return fmt.Errorf("%s weight must not be negative, got %v", n.name, n.value)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("weights must sum to more than zero")
	}
	if c.ColourBlindDeltaE <= 0 {
		return fmt.Errorf("colour blind ΔE threshold must be positive, got %v", c.ColourBlindDeltaE)
	}
	return nil
}
