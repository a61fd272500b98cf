// Package cli implements the landing command line: serving the site,
// exporting it as static files, and printing its configuration.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"impractical.co/landing"
	"impractical.co/landing/internal/config"
)

type app struct {
	cfgFile string
	version string

	site    *config.Site
	runtime config.Runtime
	logger  *slog.Logger
}

// NewRootCommand returns the landing command with its subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}
	root := &cobra.Command{
		Use:   "landing",
		Short: "Serve or export the Flet landing page",
		Long: `landing renders the Flet product landing page: a hero, the main
features, and a newsletter signup form. It can serve the page over HTTP or
write it out as static files for any web server to host.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./landing.yaml)")

	root.AddCommand(
		a.serveCommand(),
		a.buildCommand(),
		a.configCommand(),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}
	a.runtime = rt

	logger, err := newLogger(cmd.ErrOrStderr(), rt)
	if err != nil {
		return err
	}
	a.logger = logger

	site, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.site = site

	cmd.SetContext(landing.LoggingContext(cmd.Context(), logger))
	return nil
}

func newLogger(w io.Writer, rt config.Runtime) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: rt.LogLevel}
	switch strings.ToLower(rt.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q, expected text or json", rt.LogFormat)
	}
}
