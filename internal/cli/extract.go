package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/extract"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/naming"
	"github.com/jmylchreest/swatch/internal/seed"
)

type extractOutput struct {
	Image    string           `json:"image"`
	Palette  []string         `json:"palette"`
	Swatches []extract.Swatch `json:"swatches"`
}

func newExtractCmd(a *app) *cobra.Command {
	config := extract.DefaultConfig()
	var seedVal int64

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a palette from an image, heaviest colours first.

The default seed is derived from the image content, so the same image
always yields the same palette. Use "-" to read the image from stdin.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  swatch extract wallpaper.jpg
  swatch extract -c 8 --algorithm dominant wallpaper.png
  cat photo.webp | swatch extract - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if cmd.Flags().Changed("seed") {
				config.Seed.Mode = seed.ModeManual
				config.Seed.Value = &seedVal
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			loader := image.NewFileLoader()
			loader.Stdin = cmd.InOrStdin()
			img, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			bounds := img.Bounds()
			a.logger.Debug("image loaded", "path", path, "width", bounds.Dx(), "height", bounds.Dy())

			pal, swatches, err := extract.Palette(img, config)
			if err != nil {
				return fmt.Errorf("failed to extract palette: %w", err)
			}
			a.logger.Debug("palette extracted", "algorithm", config.Algorithm, "colours", pal.Len())

			p := a.printer(cmd)
			if p.json() {
				return p.JSON(extractOutput{Image: path, Palette: pal.ToHex(), Swatches: swatches})
			}

			names := naming.Palette(pal, a.cfg.Lang)
			t := NewTable([]string{"#", "Colour", "Weight", "Name"})
			t.SetAlign(0, AlignRight)
			t.SetAlign(2, AlignRight)
			for i, s := range swatches {
				t.AddRow(strconv.Itoa(i+1), p.Swatch(s.Colour), fmt.Sprintf("%.1f%%", s.Weight*100), names[i].Name)
			}
			p.Table(t)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&config.Count, "colours", "c", extract.DefaultCount, fmt.Sprintf("number of colours to extract (1-%d)", extract.MaxCount))
	flags.VarP(newChoice(&config.Algorithm, extract.AlgorithmKMeans, "algorithm", extract.ParseAlgorithm), "algorithm", "a", "extraction algorithm (kmeans, dominant)")
	flags.Var(newChoice(&config.Seed.Mode, seed.ModeContent, "seed-mode", seed.ParseMode), "seed-mode", "how the k-means seed is chosen (content, random)")
	flags.Int64Var(&seedVal, "seed", 0, "fixed k-means seed (implies --seed-mode manual)")
	return cmd
}
