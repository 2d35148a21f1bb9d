package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/vision"
)

// harmonyAngles are the hue separations considered harmonious.
var harmonyAngles = [...]float64{0, 30, 60, 90, 120, 150, 180}

// contrastPoints rates a pairwise WCAG contrast ratio. Mid-range contrast
// is preferred over both extremes.
func contrastPoints(ratio float64) int {
	switch {
	case ratio >= 3 && ratio <= 7:
		return 100
	case ratio >= 2 && ratio <= 10:
		return 70
	case ratio >= 1.5 && ratio <= 15:
		return 40
	default:
		return 20
	}
}

func contrastScore(v *view) int {
	total := 0
	for i, j := range v.palette.Pairs() {
		li, lj := v.luminance[i], v.luminance[j]
		ratio := (math.Max(li, lj) + 0.05) / (math.Min(li, lj) + 0.05)
		total += contrastPoints(ratio)
	}
	return average(total, v.palette.PairCount())
}

// harmonyDeviation returns how far a hue separation is from the nearest
// harmonious angle.
func harmonyDeviation(separation float64) float64 {
	best := math.Inf(1)
	for _, a := range harmonyAngles {
		best = math.Min(best, math.Abs(separation-a))
	}
	return best
}

func harmonyPoints(deviation float64) int {
	switch {
	case deviation <= 5:
		return 100
	case deviation <= 10:
		return 80
	case deviation <= 20:
		return 60
	default:
		return 30
	}
}

func harmonyScore(v *view) int {
	total := 0
	for i, j := range v.palette.Pairs() {
		sep := colour.HueDistance(v.hsl[i].H, v.hsl[j].H)
		total += harmonyPoints(harmonyDeviation(sep))
	}
	return average(total, v.palette.PairCount())
}

// BalanceDetail explains the balance score.
type BalanceDetail struct {
	LightnessStdDev float64 `json:"lightness_stddev"`
	MeanSaturation  float64 `json:"mean_saturation"`
	LightnessScore  int     `json:"lightness_score"`
	SaturationScore int     `json:"saturation_score"`
	Score           int     `json:"score"`
}

func balanceScore(v *view) BalanceDetail {
	lightness := v.column(func(h colour.HSL) float64 { return h.L })
	saturation := v.column(func(h colour.HSL) float64 { return h.S })

	var stdDev, meanSat float64
	if len(lightness) > 0 {
		_, stdDev = stat.PopMeanStdDev(lightness, nil)
		meanSat = stat.Mean(saturation, nil)
	}

	d := BalanceDetail{
		LightnessStdDev: stdDev,
		MeanSaturation:  meanSat,
		LightnessScore:  bandPoints(stdDev, 15, 35, 10, 40),
		SaturationScore: bandPoints(meanSat, 30, 70, 20, 80),
	}
	d.Score = colour.Round(float64(d.LightnessScore+d.SaturationScore) / 2)
	return d
}

// bandPoints awards 100 inside the open interval (lo, hi), 70 inside the
// wider open interval (wideLo, wideHi) and 40 otherwise.
func bandPoints(x, lo, hi, wideLo, wideHi float64) int {
	switch {
	case x > lo && x < hi:
		return 100
	case x > wideLo && x < wideHi:
		return 70
	default:
		return 40
	}
}

// DiversityDetail explains the diversity score.
type DiversityDetail struct {
	HueRange        float64 `json:"hue_range"`
	SaturationRange float64 `json:"saturation_range"`
	LightnessRange  float64 `json:"lightness_range"`
	HueScore        int     `json:"hue_score"`
	SaturationScore int     `json:"saturation_score"`
	LightnessScore  int     `json:"lightness_score"`
	Score           int     `json:"score"`
}

func spread(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values) - floats.Min(values)
}

func rangePoints(r, high, mid float64) int {
	switch {
	case r > high:
		return 100
	case r > mid:
		return 70
	default:
		return 40
	}
}

func diversityScore(v *view) DiversityDetail {
	d := DiversityDetail{
		HueRange:        spread(v.column(func(h colour.HSL) float64 { return h.H })),
		SaturationRange: spread(v.column(func(h colour.HSL) float64 { return h.S })),
		LightnessRange:  spread(v.column(func(h colour.HSL) float64 { return h.L })),
	}
	d.HueScore = rangePoints(d.HueRange, 60, 12)
	d.SaturationScore = rangePoints(d.SaturationRange, 30, 15)
	d.LightnessScore = rangePoints(d.LightnessRange, 30, 15)
	d.Score = colour.Round(0.5*float64(d.HueScore) + 0.25*float64(d.SaturationScore) + 0.25*float64(d.LightnessScore))
	return d
}

// accessibilityPoints rates contrast against a text background:
// 2 for WCAG AA normal text, 1 for AA large text.
func accessibilityPoints(ratio float64) int {
	switch {
	case ratio >= 4.5:
		return 2
	case ratio >= 3:
		return 1
	default:
		return 0
	}
}

func accessibilityScore(v *view) int {
	earned := 0
	for _, c := range v.palette.Colours {
		earned += accessibilityPoints(colour.ContrastRatio(c, colour.White))
		earned += accessibilityPoints(colour.ContrastRatio(c, colour.Black))
	}
	// Two backgrounds, two points each.
	possible := 4 * v.palette.Len()
	if possible == 0 {
		return 0
	}
	return colour.Round(100 * float64(earned) / float64(possible))
}

// colourBlindScore returns the percentage of distinguishable pairs under
// each dichromacy and their rounded mean.
func colourBlindScore(v *view, threshold float64) (map[vision.Deficiency]float64, int) {
	pairs := v.palette.PairCount()
	perType := make(map[vision.Deficiency]float64, 3)
	if pairs == 0 {
		for _, d := range vision.Dichromacies() {
			perType[d] = 0
		}
		return perType, 0
	}

	var sum float64
	for _, d := range vision.Dichromacies() {
		labs := make([]colour.LAB, v.palette.Len())
		for i, c := range v.palette.Colours {
			labs[i] = colour.RGBToLab(vision.Simulate(c, d))
		}

		distinct := 0
		for i, j := range v.palette.Pairs() {
			if colour.LabDistance(labs[i], labs[j]) > threshold {
				distinct++
			}
		}
		pct := 100 * float64(distinct) / float64(pairs)
		perType[d] = pct
		sum += pct
	}
	return perType, colour.Round(sum / float64(len(vision.Dichromacies())))
}
