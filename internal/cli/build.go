package cli

import (
	"github.com/spf13/cobra"

	"impractical.co/landing/internal/assets"
	"impractical.co/landing/internal/export"
	"impractical.co/landing/internal/site"
)

func (a *app) buildCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the landing page as static files",
		Long: `The build command renders index.html and 404.html into the output
directory and copies the stylesheet and images next to them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return export.Build(cmd.Context(), site.New(a.site, nil), assets.Static(), out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "public", "directory to write the site to")
	return cmd
}
