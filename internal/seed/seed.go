// Package seed derives deterministic seeds for palette generation and
// k-means extraction.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand/v2"
	"slices"
	"time"
)

// Mode determines how a seed is produced.
type Mode string

const (
	// ModeContent hashes image content (default for extraction).
	ModeContent Mode = "content"
	// ModeText hashes a caller-provided phrase.
	ModeText Mode = "text"
	// ModeManual uses a caller-provided number.
	ModeManual Mode = "manual"
	// ModeRandom varies on every run.
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode
	Value *int64 // only used by ModeManual
	Text  string // only used by ModeText
}

// Calculate determines the seed value for config. img is only required
// for ModeContent.
func Calculate(img image.Image, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		if img == nil {
			return 0, fmt.Errorf("image is required for content-based seed mode")
		}
		return FromImage(img), nil
	case ModeText:
		if config.Text == "" {
			return 0, fmt.Errorf("text is required for text-based seed mode")
		}
		return FromText(config.Text), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return Random(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// FromImage hashes a grid sample of the image so the same pixels always
// produce the same seed regardless of file name.
func FromImage(img image.Image) int64 {
	bounds := img.Bounds()
	hasher := sha256.New()

	dimBytes := make([]byte, 8)
	binary.LittleEndian.PutUint32(dimBytes[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are non-negative
	binary.LittleEndian.PutUint32(dimBytes[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are non-negative
	hasher.Write(dimBytes)

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixelBytes := make([]byte, 4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixelBytes[0] = byte(r >> 8)
			pixelBytes[1] = byte(g >> 8)
			pixelBytes[2] = byte(b >> 8)
			pixelBytes[3] = byte(a >> 8)
			hasher.Write(pixelBytes)
		}
	}

	return sum64(hasher.Sum(nil))
}

// FromText hashes an arbitrary phrase into a seed.
func FromText(text string) int64 {
	hash := sha256.Sum256([]byte(text))
	return sum64(hash[:])
}

// Random returns a non-deterministic seed.
func Random() int64 {
	// #nosec G404 -- the seed is intentionally non-deterministic
	return time.Now().UnixNano() ^ rand.Int64()
}

// NewRand returns a PCG generator for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) // #nosec G115 G404 -- reproducibility, not security
}

func sum64(hash []byte) int64 {
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeText, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: %v)", s, ValidModes())
}
