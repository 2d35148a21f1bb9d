package extract

import (
	"fmt"
	"image"

	"github.com/jmylchreest/swatch/internal/colour"
)

// quantShift drops the low bits of each channel, giving 32 levels.
const quantShift = 3

// DominantExtractor returns the most frequent quantised colours. Each bucket
// reports the mean of its members rather than the bucket corner.
type DominantExtractor struct{}

// NewDominantExtractor creates a DominantExtractor.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{}
}

type bucket struct {
	r, g, b, n int
}

// Extract implements Extractor.
func (d *DominantExtractor) Extract(img image.Image, count int) ([]Swatch, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	buckets := make(map[colour.RGB]*bucket)
	for _, p := range pixels {
		key := colour.RGB{R: p.R >> quantShift, G: p.G >> quantShift, B: p.B >> quantShift}
		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.r += int(p.R)
		bk.g += int(p.G)
		bk.b += int(p.B)
		bk.n++
	}

	out := make([]Swatch, 0, len(buckets))
	for _, bk := range buckets {
		mean := point3D{
			R: float64(bk.r) / float64(bk.n),
			G: float64(bk.g) / float64(bk.n),
			B: float64(bk.b) / float64(bk.n),
		}
		out = append(out, Swatch{Colour: mean.rgb(), Weight: float64(bk.n) / float64(len(pixels))})
	}
	sortByWeight(out)
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}
