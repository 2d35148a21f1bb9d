package vision

import "github.com/jmylchreest/swatch/internal/colour"

// ΔE boundaries used by Inspect.
const (
	// DistinguishableDeltaE is the ΔE above which a pair is clearly distinct.
	DistinguishableDeltaE = 2.3
	// PartialDeltaE is the lowest ΔE at which a pair is still partly distinct.
	PartialDeltaE = 1.0
)

// Distinction classifies how well two colours can be told apart.
type Distinction int

const (
	// Indistinguishable pairs look the same.
	Indistinguishable Distinction = iota
	// Partial pairs are hard but possible to tell apart.
	Partial
	// Distinguishable pairs are clearly different.
	Distinguishable
)

// String implements fmt.Stringer.
func (d Distinction) String() string {
	switch d {
	case Distinguishable:
		return "distinguishable"
	case Partial:
		return "partial"
	default:
		return "indistinguishable"
	}
}

// Weight is the contribution of a pair to the inspection percentage.
func (d Distinction) Weight() float64 {
	switch d {
	case Distinguishable:
		return 1
	case Partial:
		return 0.5
	default:
		return 0
	}
}

// Classify maps a ΔE value to a Distinction.
func Classify(deltaE float64) Distinction {
	switch {
	case deltaE > DistinguishableDeltaE:
		return Distinguishable
	case deltaE >= PartialDeltaE:
		return Partial
	default:
		return Indistinguishable
	}
}

// PairResult describes one unordered pair of palette colours.
type PairResult struct {
	I          int         `json:"i"`
	J          int         `json:"j"`
	Original   [2]string   `json:"original"`
	Simulated  [2]string   `json:"simulated"`
	DeltaE     float64     `json:"delta_e"`
	Class      Distinction `json:"-"`
	ClassLabel string      `json:"class"`
}

// Inspection is the result of checking a palette under one deficiency.
type Inspection struct {
	Deficiency        Deficiency   `json:"deficiency"`
	Simulated         []string     `json:"simulated"`
	Pairs             []PairResult `json:"pairs,omitempty"`
	Problematic       []PairResult `json:"problematic"`
	Distinguishable   int          `json:"distinguishable"`
	Partial           int          `json:"partial"`
	Indistinguishable int          `json:"indistinguishable"`
	Percentage        float64      `json:"percentage"`
}

// Inspect classifies every pair of p by raw ΔE under d.
// Under normal vision every pair counts as distinguishable without any
// LAB computation. A palette with no pairs scores 100%.
func Inspect(p *colour.Palette, d Deficiency) *Inspection {
	simulated := SimulatePalette(p, d)
	ins := &Inspection{
		Deficiency:  d,
		Simulated:   simulated.ToHex(),
		Problematic: []PairResult{},
		Percentage:  100,
	}

	total := p.PairCount()
	if d == Normal || total == 0 {
		ins.Distinguishable = total
		return ins
	}

	labs := make([]colour.LAB, simulated.Len())
	for i, c := range simulated.Colours {
		labs[i] = colour.RGBToLab(c)
	}

	var weight float64
	for i, j := range p.Pairs() {
		deltaE := colour.LabDistance(labs[i], labs[j])
		class := Classify(deltaE)
		pr := PairResult{
			I:          i,
			J:          j,
			Original:   [2]string{p.Colours[i].Hex(), p.Colours[j].Hex()},
			Simulated:  [2]string{simulated.Colours[i].Hex(), simulated.Colours[j].Hex()},
			DeltaE:     deltaE,
			Class:      class,
			ClassLabel: class.String(),
		}
		ins.Pairs = append(ins.Pairs, pr)
		weight += class.Weight()

		switch class {
		case Distinguishable:
			ins.Distinguishable++
		case Partial:
			ins.Partial++
		default:
			ins.Indistinguishable++
			ins.Problematic = append(ins.Problematic, pr)
		}
	}

	ins.Percentage = 100 * weight / float64(total)
	return ins
}
