package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			p := a.printer(cmd)
			if p.json() {
				return p.JSON(info)
			}
			p.Printf("%s\n", info)
			return nil
		},
	}
}
