package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		to     export.Format
		name   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <colour>...",
		Short: "Write a palette in a format other tools understand",
		Long: `Render a palette as JSON, CSS custom properties, SCSS variables, a Tailwind
config snippet, a GIMP palette or plain text.

Examples:
  swatch export --to css --name brand "#264653" "#2a9d8f" "#e9c46a"
  swatch export --to gpl -o brand.gpl 264653,2a9d8f,e9c46a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := parsePalette(args)
			if err != nil {
				return err
			}
			data, err := export.Render(pal, to, name, a.cfg.Lang)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			a.logger.Info("palette exported", "path", output, "format", to)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.VarP(newChoice(&to, export.FormatCSS, "export-format", export.ParseFormat), "to", "t", "export format (json, css, scss, tailwind, gpl, text)")
	flags.StringVar(&name, "name", export.DefaultName, "palette name used for titles and variable prefixes")
	flags.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
