package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/suggest"
	"github.com/jmylchreest/swatch/internal/vision"
)

type simulation struct {
	Deficiency vision.Deficiency `json:"deficiency"`
	Palette    []string          `json:"palette"`
}

func newSimulateCmd(a *app) *cobra.Command {
	var deficiency vision.Deficiency

	cmd := &cobra.Command{
		Use:   "simulate <colour>...",
		Short: "Show how a palette looks with colour vision deficiencies",
		Long: `Simulate protanopia, deuteranopia, tritanopia and achromatopsia.

Without --vision every type is shown.

Examples:
  swatch simulate "#ff0000" "#00ff00" "#0000ff"
  swatch simulate --vision deuteranopia e63946,2a9d8f`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := parsePalette(args)
			if err != nil {
				return err
			}

			types := vision.All()
			if deficiency != "" {
				types = []vision.Deficiency{deficiency}
			}

			sims := make([]*colour.Palette, len(types))
			out := make([]simulation, len(types))
			for i, d := range types {
				sims[i] = vision.SimulatePalette(pal, d)
				out[i] = simulation{Deficiency: d, Palette: sims[i].ToHex()}
			}

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(out)
			}

			headers := make([]string, len(types))
			for i, d := range types {
				headers[i] = d.String()
			}
			t := NewTable(headers)
			for j := range pal.Colours {
				row := make([]string, len(types))
				for i := range types {
					row[i] = p.Swatch(sims[i].Colours[j])
				}
				t.AddRow(row...)
			}
			p.Table(t)
			return nil
		},
	}

	cmd.Flags().Var(newChoice(&deficiency, "", "vision", vision.ParseDeficiency), "vision", "deficiency to simulate (normal, protanopia, deuteranopia, tritanopia, achromatopsia)")
	return cmd
}

type inspectOutput struct {
	*vision.Inspection
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

func newInspectCmd(a *app) *cobra.Command {
	var deficiency vision.Deficiency

	cmd := &cobra.Command{
		Use:   "inspect <colour>...",
		Short: "Check which colour pairs become hard to tell apart",
		Long: `Inspect every pair of colours under a simulated colour vision deficiency.

Pairs with ΔE above 2.3 are distinguishable, 1.0 to 2.3 partially
distinguishable, and below 1.0 problematic. Without --vision the three
dichromacies and achromatopsia are inspected.

Examples:
  swatch inspect --vision deuteranopia "#ff0000" "#00ff00"
  swatch inspect e63946,2a9d8f,e9c46a --lang ja`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := parsePalette(args)
			if err != nil {
				return err
			}

			types := append(vision.Dichromacies(), vision.Achromatopsia)
			if deficiency != "" {
				types = []vision.Deficiency{deficiency}
			}

			opts := suggest.Options{Lang: a.cfg.Lang, Threshold: suggest.DefaultOptions().Threshold}
			results := make([]inspectOutput, len(types))
			for i, d := range types {
				ins := vision.Inspect(pal, d)
				results[i] = inspectOutput{Inspection: ins, Suggestions: suggest.ForInspection(ins, opts)}
				a.logger.Debug("inspected", "vision", d, "percentage", ins.Percentage, "problematic", len(ins.Problematic))
			}

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(results)
			}

			for i, r := range results {
				if i > 0 {
					p.Printf("\n")
				}
				p.Heading(fmt.Sprintf("%s: %.0f%% distinguishable", r.Deficiency, r.Percentage))
				if len(r.Problematic) > 0 {
					t := NewTable([]string{"Pair", "Original", "Simulated", "ΔE"})
					t.SetAlign(3, AlignRight)
					for _, pr := range r.Problematic {
						t.AddRow(
							fmt.Sprintf("%d-%d", pr.I+1, pr.J+1),
							pr.Original[0]+" "+pr.Original[1],
							pr.Simulated[0]+" "+pr.Simulated[1],
							fmt.Sprintf("%.2f", pr.DeltaE),
						)
					}
					p.Table(t)
				}
				p.List(texts(r.Suggestions))
			}
			return nil
		},
	}

	cmd.Flags().Var(newChoice(&deficiency, "", "vision", vision.ParseDeficiency), "vision", "deficiency to inspect")
	return cmd
}
