package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/generate"
	"github.com/jmylchreest/swatch/internal/naming"
	"github.com/jmylchreest/swatch/internal/seed"
)

type generateOutput struct {
	Mode     generate.Mode      `json:"mode"`
	Seed     int64              `json:"seed"`
	Palette  []string           `json:"palette"`
	Names    []naming.Match     `json:"names"`
	Analysis *analysis.Analysis `json:"analysis,omitempty"`
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := generate.DefaultOptions()
	var (
		mode     generate.Mode
		seedVal  int64
		seedText string
		baseHue  float64
		analyze  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette from a colour harmony rule",
		Long: `Generate a palette from a harmony rule.

The seed used is always reported so any palette can be reproduced.

Examples:
  swatch generate --mode triadic --count 6
  swatch generate --mode analogous --base-hue 200 --seed 42
  swatch generate --seed-text "autumn evening" --analyze`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Mode = mode

			var s int64
			switch {
			case seedText != "":
				s = seed.FromText(seedText)
			case cmd.Flags().Changed("seed"):
				s = seedVal
			default:
				s = seed.Random()
			}
			opts.Seed = &s
			if cmd.Flags().Changed("base-hue") {
				opts.BaseHue = &baseHue
			}

			pal, err := generate.Palette(opts)
			if err != nil {
				return err
			}
			a.logger.Debug("palette generated", "mode", opts.Mode, "seed", s, "count", pal.Len())

			out := generateOutput{
				Mode:    opts.Mode,
				Seed:    s,
				Palette: pal.ToHex(),
				Names:   naming.Palette(pal, a.cfg.Lang),
			}
			if analyze {
				scorer, err := a.scorer()
				if err != nil {
					return err
				}
				out.Analysis = scorer.Analyze(pal)
			}

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(out)
			}

			p.Printf("Mode: %s  Seed: %d\n\n", out.Mode, out.Seed)
			p.Table(namesTable(p, pal, out.Names))
			if out.Analysis != nil {
				p.Printf("\n")
				p.Table(scoreTable(out.Analysis.Scores))
				p.Printf("\nTotal: %d  Grade: %s\n", out.Analysis.Scores.Total, p.Grade(out.Analysis.Scores.Grade))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(newChoice(&mode, generate.ModeRandom, "mode", generate.ParseMode), "mode", "harmony rule (random, monochromatic, analogous, complementary, split-complementary, triadic, tetradic)")
	flags.IntVarP(&opts.Count, "count", "c", generate.DefaultCount, "number of colours")
	flags.Int64Var(&seedVal, "seed", 0, "seed for reproducible output (default random)")
	flags.StringVar(&seedText, "seed-text", "", "derive the seed from a phrase")
	flags.Float64Var(&baseHue, "base-hue", 0, "anchor hue in degrees (default from seed)")
	flags.BoolVar(&analyze, "analyze", false, "score the generated palette")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-text")
	return cmd
}

func namesTable(p *printer, pal *colour.Palette, names []naming.Match) *Table {
	t := NewTable([]string{"#", "Colour", "Name"})
	t.SetAlign(0, AlignRight)
	for i, c := range pal.Colours {
		t.AddRow(strconv.Itoa(i+1), p.Chip(c, c.Hex()), names[i].Name)
	}
	return t
}
