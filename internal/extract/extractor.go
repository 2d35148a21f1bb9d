// Package extract pulls a palette out of an image.
package extract

import (
	"cmp"
	"fmt"
	"image"
	"slices"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

// Extractor extracts weighted colours from an image.
type Extractor interface {
	Extract(img image.Image, count int) ([]Swatch, error)
}

// Swatch is an extracted colour and the share of sampled pixels it covers.
type Swatch struct {
	Colour colour.RGB `json:"colour"`
	Weight float64    `json:"weight"`
}

// Algorithm names an extraction algorithm.
type Algorithm string

const (
	// AlgorithmKMeans clusters sampled pixels with k-means++.
	AlgorithmKMeans Algorithm = "kmeans"
	// AlgorithmDominant buckets pixels by quantised colour and keeps the most frequent.
	AlgorithmDominant Algorithm = "dominant"
)

// Limits on the extracted colour count.
const (
	DefaultCount = 5
	MaxCount     = 64
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans, AlgorithmDominant}
}

// ParseAlgorithm converts a string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(s)
	if slices.Contains(ValidAlgorithms(), alg) {
		return alg, nil
	}
	return "", fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", s, ValidAlgorithms())
}

// Config holds configuration for colour extraction.
type Config struct {
	Algorithm Algorithm
	Count     int
	Seed      seed.Config
}

// DefaultConfig returns k-means with a content-derived seed.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgorithmKMeans,
		Count:     DefaultCount,
		Seed:      seed.Config{Mode: seed.ModeContent},
	}
}

// Validate validates the extractor configuration.
func (c Config) Validate() error {
	if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Count)
	}
	if c.Count > MaxCount {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", c.Count, MaxCount)
	}
	return nil
}

// New creates the extractor for config. The seed is resolved against img so
// content-seeded runs are reproducible.
func New(img image.Image, config Config) (Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Algorithm {
	case AlgorithmDominant:
		return NewDominantExtractor(), nil
	default:
		s, err := seed.Calculate(img, config.Seed)
		if err != nil {
			return nil, err
		}
		return NewKMeansExtractor(s), nil
	}
}

// Palette extracts config.Count colours from img, heaviest first.
func Palette(img image.Image, config Config) (*colour.Palette, []Swatch, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("image cannot be nil")
	}
	e, err := New(img, config)
	if err != nil {
		return nil, nil, err
	}
	swatches, err := e.Extract(img, config.Count)
	if err != nil {
		return nil, nil, err
	}
	p, err := ToPalette(swatches)
	if err != nil {
		return nil, nil, err
	}
	return p, swatches, nil
}

// ToPalette drops the weights.
func ToPalette(swatches []Swatch) (*colour.Palette, error) {
	colours := make([]colour.RGB, len(swatches))
	for i, s := range swatches {
		colours[i] = s.Colour
	}
	return colour.NewPalette(colours)
}

// sortByWeight orders swatches heaviest first, breaking ties by hex for
// stable output.
func sortByWeight(swatches []Swatch) {
	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Colour.Hex(), b.Colour.Hex())
	})
}
