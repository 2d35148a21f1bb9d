package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	var paletteA, paletteB []string

	cmd := &cobra.Command{
		Use:   "compare --a <colours> --b <colours>",
		Short: "Compare two palettes side by side",
		Long: `Score two palettes and explain where they differ.

Deltas are reported as B minus A. Differences of 10 points or more are
drawn as bars; larger differences are also described in words.

Examples:
  swatch compare --a "#264653,#2a9d8f,#e9c46a" --b "#000000,#ffffff"
  swatch compare --a 7c7c7c,808080 --b 000000,ffffff --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pa, err := parsePalette(paletteA)
			if err != nil {
				return fmt.Errorf("palette A: %w", err)
			}
			pb, err := parsePalette(paletteB)
			if err != nil {
				return fmt.Errorf("palette B: %w", err)
			}
			scorer, err := a.scorer()
			if err != nil {
				return err
			}

			report := compare.Compare(pa, pb, compare.Options{Lang: a.cfg.Lang, Scorer: scorer})
			a.logger.Debug("palettes compared", "total_a", report.A.Scores.Total, "total_b", report.B.Scores.Total)

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(report)
			}
			printReport(p, pa, pb, report)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&paletteA, "a", nil, "first palette (comma separated hex colours)")
	cmd.Flags().StringSliceVar(&paletteB, "b", nil, "second palette (comma separated hex colours)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func printReport(p *printer, pa, pb *colour.Palette, r *compare.Report) {
	p.Palette("A:", pa)
	p.Palette("B:", pb)
	p.Printf("\n")

	t := NewTable([]string{"Metric", "A", "B", "Δ", ""})
	for i := 1; i <= 3; i++ {
		t.SetAlign(i, AlignRight)
	}
	t.AddRow("Total", strconv.Itoa(r.A.Scores.Total), strconv.Itoa(r.B.Scores.Total), signed(r.TotalDelta), "")
	for _, m := range r.Metrics {
		shown := ""
		if m.Significant {
			shown = bar(m.Delta) + " " + string(m.Winner)
		}
		t.AddRow(m.Metric, strconv.Itoa(m.A), strconv.Itoa(m.B), signed(m.Delta), shown)
	}
	p.Table(t)

	p.Printf("\nGrade: A %s  B %s\n", p.Grade(r.A.Scores.Grade), p.Grade(r.B.Scores.Grade))
	p.Printf("Temperature: A %s  B %s\n\n", temperature(r.A.Temperature), temperature(r.B.Temperature))

	p.Heading("Insights")
	items := make([]string, len(r.Insights))
	for i, in := range r.Insights {
		items[i] = in.Text
	}
	p.List(items)
	p.Printf("\n")
	p.Heading("Recommendation")
	p.List([]string{r.Recommendation.Text})
}

func signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func temperature(t compare.Temperature) string {
	return fmt.Sprintf("%.0f%% warm / %.0f%% cool / %.0f%% neutral", t.Warm, t.Cool, t.Neutral)
}
