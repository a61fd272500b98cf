package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"impractical.co/landing/internal/assets"
	"impractical.co/landing/internal/server"
	"impractical.co/landing/internal/site"
	"impractical.co/landing/internal/telemetry"
)

func (a *app) serveCommand() *cobra.Command {
	var (
		addr      string
		templates string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Long: `The serve command serves the landing page, its not-found page, and the
static assets until it's interrupted. With --templates, templates are read
from disk instead of the binary and reloaded whenever they change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = a.runtime.Addr
			}

			shutdown, err := telemetry.Setup(ctx, a.runtime, a.version)
			if err != nil {
				return fmt.Errorf("error setting up tracing: %w", err)
			}
			defer func() {
				if err := shutdown(ctx); err != nil {
					a.logger.ErrorContext(ctx, "error flushing traces", "error", err)
				}
			}()

			var templateDir fs.FS
			if templates != "" {
				templateDir = os.DirFS(templates)
			}
			s := site.New(a.site, templateDir)
			if templates != "" {
				watcher, err := server.NewWatcher(templates, s, a.logger)
				if err != nil {
					return err
				}
				go watcher.Run(ctx)
				a.logger.InfoContext(ctx, "watching templates", "dir", templates)
			}

			return server.New(s, assets.Static(), a.logger).Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":3000", "address to listen on (or LANDING_ADDR)")
	cmd.Flags().StringVar(&templates, "templates", "", "directory to read templates from, reloading them on change")
	return cmd
}
