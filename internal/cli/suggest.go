package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/suggest"
	"github.com/jmylchreest/swatch/internal/vision"
)

func newSuggestCmd(a *app) *cobra.Command {
	var deficiency vision.Deficiency
	threshold := suggest.DefaultOptions().Threshold

	cmd := &cobra.Command{
		Use:   "suggest <colour>...",
		Short: "List suggestions for improving a palette",
		Long: `List improvement suggestions for a palette without the score breakdown.

With --vision, advice for that colour vision deficiency is added.

Examples:
  swatch suggest "#7c7c7c" "#808080" "#848484"
  swatch suggest --vision protanopia --lang ja e63946,2a9d8f`,
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

			opts := suggest.Options{Lang: a.cfg.Lang, Threshold: threshold}
			out := suggest.ForScores(scorer.Score(pal), opts)
			if deficiency != "" {
				out = append(out, suggest.ForInspection(vision.Inspect(pal, deficiency), opts)...)
			}

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(out)
			}
			p.List(texts(out))
			return nil
		},
	}

	cmd.Flags().Var(newChoice(&deficiency, "", "vision", vision.ParseDeficiency), "vision", "also advise for this colour vision deficiency")
	cmd.Flags().IntVar(&threshold, "threshold", threshold, "sub-score below which a suggestion is made")
	return cmd
}
