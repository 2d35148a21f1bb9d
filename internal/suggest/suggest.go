// Package suggest turns palette scores and colour-blindness inspections into
// human-readable, localised improvement suggestions.
package suggest

import (
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/i18n"
	"github.com/jmylchreest/swatch/internal/vision"
)

// Suggestion is a single localised recommendation.
type Suggestion struct {
	ID   string       `json:"id"`
	Lang language.Tag `json:"lang"`
	Text string       `json:"text"`
}

// Options configures suggestion generation.
type Options struct {
	// Lang selects the output language. Unsupported languages fall back to English.
	Lang language.Tag

	// Threshold is the sub-score below which a rule fires.
	Threshold int
}

// DefaultOptions returns English suggestions with the standard threshold of 60.
func DefaultOptions() Options {
	return Options{
		Lang:      language.English,
		Threshold: 60,
	}
}

type scoreRule struct {
	key   i18n.Key
	score func(analysis.ScoreSet) int
}

// scoreRules are evaluated in order; every rule whose score is below the
// threshold contributes one suggestion.
var scoreRules = []scoreRule{
	{i18n.SuggestContrast, func(s analysis.ScoreSet) int { return s.Contrast }},
	{i18n.SuggestHarmony, func(s analysis.ScoreSet) int { return s.Harmony }},
	{i18n.SuggestBalance, func(s analysis.ScoreSet) int { return s.Balance }},
	{i18n.SuggestDiversity, func(s analysis.ScoreSet) int { return s.Diversity }},
	{i18n.SuggestAccessibility, func(s analysis.ScoreSet) int { return s.Accessibility }},
	{i18n.SuggestColourBlind, func(s analysis.ScoreSet) int { return s.ColourBlindSafety }},
}

// ForScores returns the suggestions for a ScoreSet. When no rule fires a
// single positive suggestion is returned.
func ForScores(scores analysis.ScoreSet, opts Options) []Suggestion {
	lang := i18n.Match(opts.Lang)

	var out []Suggestion
	for _, r := range scoreRules {
		if r.score(scores) < opts.Threshold {
			out = append(out, newSuggestion(lang, r.key))
		}
	}
	if len(out) == 0 {
		out = append(out, newSuggestion(lang, i18n.SuggestGood))
	}
	return out
}

// ForInspection returns suggestions for a colour-blindness inspection:
// advice for the deficiency type, then a note on problematic pairs.
func ForInspection(ins *vision.Inspection, opts Options) []Suggestion {
	lang := i18n.Match(opts.Lang)

	var out []Suggestion
	switch ins.Deficiency {
	case vision.Protanopia, vision.Deuteranopia:
		out = append(out, newSuggestion(lang, i18n.InspectRedGreen))
	case vision.Tritanopia:
		out = append(out, newSuggestion(lang, i18n.InspectBlueYellow))
	case vision.Achromatopsia:
		out = append(out, newSuggestion(lang, i18n.InspectLightness))
	}

	if n := len(ins.Problematic); n > 0 {
		out = append(out, newSuggestion(lang, i18n.InspectProblematic, n))
	}

	if len(out) == 0 {
		out = append(out, newSuggestion(lang, i18n.InspectGood))
	}
	return out
}

func newSuggestion(lang language.Tag, key i18n.Key, args ...any) Suggestion {
	return Suggestion{
		ID:   string(key),
		Lang: lang,
		Text: i18n.Sprintf(lang, key, args...),
	}
}
