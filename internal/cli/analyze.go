package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/suggest"
	"github.com/jmylchreest/swatch/internal/vision"
)

type analyzeOutput struct {
	Analysis    *analysis.Analysis   `json:"analysis"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	threshold := suggest.DefaultOptions().Threshold

	cmd := &cobra.Command{
		Use:     "analyze <colour>...",
		Aliases: []string{"analyse", "score"},
		Short:   "Score a palette and suggest improvements",
		Long: `Score a palette on six metrics and combine them into a weighted total
and letter grade.

Colours are hex codes (#RRGGBB), given as separate arguments or comma
separated.

Examples:
  swatch analyze "#264653" "#2a9d8f" "#e9c46a" "#f4a261" "#e76f51"
  swatch analyze 264653,2a9d8f,e9c46a --format json
  swatch analyze --lang ja "#000000" "#ffffff"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := parsePalette(args)
			if err != nil {
				return err
			}
			scorer, err := a.scorer()
			if err != nil {
				return err
			}

			result := scorer.Analyze(pal)
			a.logger.Debug("palette analysed", "colours", pal.Len(), "total", result.Scores.Total)
			suggestions := suggest.ForScores(result.Scores, suggest.Options{Lang: a.cfg.Lang, Threshold: threshold})

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(analyzeOutput{Analysis: result, Suggestions: suggestions})
			}

			p.Palette("Palette:", pal)
			p.Printf("\n")
			p.Table(scoreTable(result.Scores))
			p.Printf("\nTotal: %d  Grade: %s\n\n", result.Scores.Total, p.Grade(result.Scores.Grade))

			p.Heading("Colour-blind safety")
			cb := NewTable([]string{"Vision", "Distinguishable"})
			cb.SetAlign(1, AlignRight)
			for _, d := range vision.Dichromacies() {
				cb.AddRow(d.String(), fmt.Sprintf("%.0f%%", result.ColourBlind[d]))
			}
			p.Table(cb)

			p.Printf("\n")
			p.Heading("Suggestions")
			p.List(texts(suggestions))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", threshold, "sub-score below which a suggestion is made")
	return cmd
}

func scoreTable(s analysis.ScoreSet) *Table {
	t := NewTable([]string{"Metric", "Score"})
	t.SetAlign(1, AlignRight)
	for _, row := range []struct {
		name  string
		score int
	}{
		{"Contrast", s.Contrast},
		{"Harmony", s.Harmony},
		{"Balance", s.Balance},
		{"Diversity", s.Diversity},
		{"Accessibility", s.Accessibility},
		{"Colour-blind safety", s.ColourBlindSafety},
	} {
		t.AddRow(row.name, strconv.Itoa(row.score))
	}
	return t
}

func texts(ss []suggest.Suggestion) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Text
	}
	return out
}
