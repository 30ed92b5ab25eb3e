package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depdot/pkg/cache"
	"github.com/matzehuels/depdot/pkg/render"
)

// defaultArtifactTTL bounds how long rendered artifacts stay cached.
const defaultArtifactTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	buildOpts

	format  string // output format: dot, svg, png
	noCache bool   // bypass the artifact cache
	redis   string // redis URL for the artifact cache
}

// renderCommand creates the render command that produces a rendered image.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dependency listing to SVG or PNG",
		Long: `Render a flat dependency listing through the Graphviz layout engine.

The listing is first converted to DOT (see "depdot build"), then laid out
and rasterized. Rendered artifacts are cached keyed by the DOT text and
format, so repeated renders of an unchanged listing are instant.

Examples:
  depdot render -i deps.txt -o deps.svg
  depdot render -i deps.txt -f png -o deps.png
  depdot render -i deps.txt --redis redis://localhost:6379/0 -o deps.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "listing file (default stdin, \"-\" for stdin)")
	cmd.Flags().StringVar(&opts.exec, "exec", "", "command to run for the listing instead of a file")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "graph label (default from profile)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "layout direction: LR, TB, RL, BT")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "profile file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: dot, svg, png")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis URL for the artifact cache")

	return cmd
}

// runRender executes the listing-to-image pipeline with artifact caching.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	dot, stats, err := buildDOT(ctx, &opts.buildOpts)
	if err != nil {
		return err
	}

	artifact := dot
	cached := false
	if format != render.FormatDOT {
		artifact, cached, err = c.renderArtifact(ctx, dot, format, opts)
		if err != nil {
			return err
		}
	}

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := out.Write(artifact); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.output != "" {
		printSuccess("Rendered %d packages as %s", stats.nodes, format)
		printCacheStatus(cached)
		printFile(opts.output)
	}
	return nil
}

// renderArtifact returns the rendered artifact for dot, consulting the
// cache first. The second return reports whether the artifact was cached.
func (c *CLI) renderArtifact(ctx context.Context, dot []byte, format render.Format, opts *renderOpts) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	store, err := newCache(opts.redis, opts.noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	key := cache.ArtifactKey(dot, string(format))
	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warnf("Cache lookup failed: %v", err)
	} else if ok {
		logger.Debugf("Artifact cache hit for %s", key)
		return data, true, nil
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	artifact, err := render.Render(ctx, dot, format)
	spinner.Stop()
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, artifact, defaultArtifactTTL); err != nil {
		logger.Warnf("Cache store failed: %v", err)
	}
	return artifact, false, nil
}
