package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/naming"
)

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <colour>...",
		Short: "Find the closest human-readable colour names",
		Long: `Match each colour to the nearest entry of a reference table using the
CIEDE2000 colour difference.

Examples:
  swatch name "#e63946"
  swatch name --lang ja 264653,2a9d8f`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := parsePalette(args)
			if err != nil {
				return err
			}
			matches := naming.Palette(pal, a.cfg.Lang)

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(matches)
			}

			t := NewTable([]string{"Colour", "Name", "Reference", "ΔE00"})
			t.SetAlign(3, AlignRight)
			for i, m := range matches {
				t.AddRow(p.Swatch(pal.Colours[i]), m.Name, m.Reference, fmt.Sprintf("%.2f", m.Distance))
			}
			p.Table(t)
			return nil
		},
	}
}
