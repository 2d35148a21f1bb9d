package compare

import (
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/i18n"
)

// Total scores above which the recommendation rule changes.
const (
	bothStrongTotal = 80
	usableTotal     = 70
)

// insightCheck is one independent threshold test. It returns the side that
// stands out, or Tie when the check does not apply.
type insightCheck struct {
	key   i18n.Key
	check func(r *Report) Side
	args  func(r *Report, s Side) []any
}

func labelOnly(_ *Report, s Side) []any {
	return []any{string(s)}
}

func intLeader(a, b, threshold int) Side {
	if abs(b-a) < threshold {
		return Tie
	}
	return winner(a, b)
}

func floatLeader(a, b, threshold float64) Side {
	if abs(b-a) < threshold {
		return Tie
	}
	switch {
	case a > b:
		return SideA
	case b > a:
		return SideB
	default:
		return Tie
	}
}

// insightChecks run in order; checks are not mutually exclusive.
var insightChecks = []insightCheck{
	{
		key: i18n.CompareTotal,
		check: func(r *Report) Side {
			return intLeader(r.A.Scores.Total, r.B.Scores.Total, totalInsightDelta)
		},
		args: func(r *Report, s Side) []any {
			return []any{string(s), abs(r.TotalDelta)}
		},
	},
	{
		key: i18n.CompareContrast,
		check: func(r *Report) Side {
			return intLeader(r.A.Scores.Contrast, r.B.Scores.Contrast, contrastInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareHarmony,
		check: func(r *Report) Side {
			return intLeader(r.A.Scores.Harmony, r.B.Scores.Harmony, harmonyInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareAccessibility,
		check: func(r *Report) Side {
			return intLeader(r.A.Scores.Accessibility, r.B.Scores.Accessibility, accessibilityInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareDiversity,
		check: func(r *Report) Side {
			return intLeader(r.A.Scores.Diversity, r.B.Scores.Diversity, diversityInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareWarmer,
		check: func(r *Report) Side {
			return floatLeader(r.A.Temperature.Warm, r.B.Temperature.Warm, warmthInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareSaturation,
		check: func(r *Report) Side {
			return floatLeader(r.A.MeanSaturation, r.B.MeanSaturation, saturationInsightDelta)
		},
		args: labelOnly,
	},
	{
		key: i18n.CompareLightness,
		check: func(r *Report) Side {
			return floatLeader(r.A.MeanLightness, r.B.MeanLightness, lightnessInsightDelta)
		},
		args: labelOnly,
	},
}

func insights(r *Report, lang language.Tag) []Insight {
	var out []Insight
	for _, c := range insightChecks {
		side := c.check(r)
		if side == Tie {
			continue
		}
		out = append(out, Insight{
			ID:      string(c.key),
			Palette: side,
			Text:    i18n.Sprintf(lang, c.key, c.args(r, side)...),
		})
	}
	if len(out) == 0 {
		out = append(out, Insight{
			ID:   string(i18n.CompareSimilar),
			Text: i18n.Sprintf(lang, i18n.CompareSimilar),
		})
	}
	return out
}

// recommend picks exactly one closing recommendation from the two totals.
func recommend(r *Report, lang language.Tag) Insight {
	a, b := r.A.Scores.Total, r.B.Scores.Total
	switch {
	case a > bothStrongTotal && b > bothStrongTotal:
		return Insight{ID: string(i18n.RecommendEither), Text: i18n.Sprintf(lang, i18n.RecommendEither)}
	case a > usableTotal || b > usableTotal:
		if r.Winner == Tie {
			return Insight{ID: string(i18n.RecommendEither), Text: i18n.Sprintf(lang, i18n.RecommendEither)}
		}
		return Insight{
			ID:      string(i18n.RecommendPrefer),
			Palette: r.Winner,
			Text:    i18n.Sprintf(lang, i18n.RecommendPrefer, string(r.Winner)),
		}
	default:
		return Insight{ID: string(i18n.RecommendImprove), Text: i18n.Sprintf(lang, i18n.RecommendImprove)}
	}
}
