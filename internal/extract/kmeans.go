package extract

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

// maxSamples bounds the pixels fed to clustering.
const maxSamples = 2000

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	seed          int64
}

// NewKMeansExtractor creates a KMeansExtractor whose centroid choices are
// driven by seed.
func NewKMeansExtractor(seed int64) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		seed:          seed,
	}
}

// Extract clusters the sampled pixels into count colours.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Swatch, error) {
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

	// Fewer distinct colours than requested: return them all, weighted by frequency.
	freq := make(map[colour.RGB]int)
	for _, p := range pixels {
		freq[p]++
	}
	if count >= len(freq) {
		out := make([]Swatch, 0, len(freq))
		for c, n := range freq {
			out = append(out, Swatch{Colour: c, Weight: float64(n) / float64(len(pixels))})
		}
		sortByWeight(out)
		return out, nil
	}

	rng := seed.NewRand(e.seed)
	centroids, weights := e.kmeans(rng, pixels, count)

	out := make([]Swatch, len(centroids))
	for i, c := range centroids {
		out[i] = Swatch{Colour: c.rgb(), Weight: weights[i]}
	}
	sortByWeight(out)
	return out, nil
}

// point3D represents a point in RGB space.
type point3D struct {
	R, G, B float64
}

func pointOf(c colour.RGB) point3D {
	return point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) rgb() colour.RGB {
	ch := func(v float64) uint8 { return uint8(math.Max(0, math.Min(255, math.Round(v)))) }
	return colour.RGB{R: ch(p.R), G: ch(p.G), B: ch(p.B)}
}

// samplePixels grid-samples the image down to roughly maxSamples opaque pixels.
func samplePixels(img image.Image) []colour.RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	pixels := make([]colour.RGB, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			pixels = append(pixels, colour.ToRGB(c))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// kmeans returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(rng *rand.Rand, pixels []colour.RGB, k int) ([]point3D, []float64) {
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = pointOf(c)
	}

	centroids := initCentroids(rng, points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculate(rng, points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initCentroids seeds centroids with k-means++.
func initCentroids(rng *rand.Rand, points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, point := range points {
			d := point.distance(centroids[nearestCentroid(point, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := point.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalculate(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] == 0 {
			// Empty cluster: reseed from a random sample.
			centroids[i] = points[rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
