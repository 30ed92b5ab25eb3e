package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depdot/pkg/config"
	"github.com/matzehuels/depdot/pkg/listing"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	input   string // listing file path, "-" for stdin
	exec    string // command line to run for the listing
	label   string // graph label override
	rankdir string // rankdir override
	config  string // profile file path
	output  string // output file path (stdout if empty)
}

// source selects the listing source from the input flags.
// --exec wins over --input; an empty or "-" input means stdin.
func (o *buildOpts) source() (listing.Source, error) {
	if o.exec != "" {
		src, err := listing.ParseCommand(o.exec)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	if o.input == "" || o.input == "-" {
		return listing.ReaderSource{Reader: os.Stdin}, nil
	}
	return listing.FileSource{Path: o.input}, nil
}

// buildOptions loads the profile (or the default one) and applies flag overrides.
func (o *buildOpts) buildOptions() (listing.BuildOptions, error) {
	profile := config.Default()
	if o.config != "" {
		loaded, err := config.Load(o.config)
		if err != nil {
			return listing.BuildOptions{}, err
		}
		profile = loaded
	}
	if o.label != "" {
		profile.Label = o.label
	}
	if o.rankdir != "" {
		profile.RankDir = o.rankdir
	}
	return profile.BuildOptions(), nil
}

// buildCommand creates the build command that converts a listing into DOT.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert a dependency listing into a Graphviz DOT document",
		Long: `Convert a flat dependency listing into a Graphviz DOT document.

The listing has one line per package, "name: dep1 dep2 ...". Dependencies
that never appear on the left-hand side of a line are dropped, and edges
point from the dependency to the package that uses it.

Examples:
  depdot build -i deps.txt
  cat deps.txt | depdot build -o deps.dot
  depdot build --exec "make list-deps" --label "my project"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runBuild(ctx, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "listing file (default stdin, \"-\" for stdin)")
	cmd.Flags().StringVar(&opts.exec, "exec", "", "command to run for the listing instead of a file")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "graph label (default from profile)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "layout direction: LR, TB, RL, BT")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "profile file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runBuild executes the listing-to-DOT conversion.
func (c *CLI) runBuild(ctx context.Context, opts *buildOpts) error {
	dot, stats, err := buildDOT(ctx, opts)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := out.Write(dot); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.output != "" {
		printSuccess("Wrote DOT for %d packages (%d edges)", stats.nodes, stats.edges)
		printFile(opts.output)
	}
	return nil
}

// buildStats summarizes a built graph for status output.
type buildStats struct {
	nodes int
	edges int
}

// buildDOT runs source, parse, and graph construction and returns the DOT text.
// It is shared by the build and render commands.
func buildDOT(ctx context.Context, opts *buildOpts) ([]byte, buildStats, error) {
	logger := loggerFromContext(ctx)

	src, err := opts.source()
	if err != nil {
		return nil, buildStats{}, err
	}
	bopts, err := opts.buildOptions()
	if err != nil {
		return nil, buildStats{}, err
	}

	prog := newProgress(logger)
	logger.Debugf("Reading listing from %s", src.Describe())

	text, err := src.Listing(ctx)
	if err != nil {
		return nil, buildStats{}, err
	}
	entries, err := listing.Parse(strings.NewReader(text))
	if err != nil {
		return nil, buildStats{}, err
	}

	graph := listing.Build(entries, bopts)
	stats := buildStats{nodes: len(graph.Nodes()), edges: len(graph.Edges())}
	prog.done(fmt.Sprintf("Built graph with %d nodes and %d edges", stats.nodes, stats.edges))

	dot, err := graph.Marshal()
	if err != nil {
		return nil, buildStats{}, err
	}
	return dot, stats, nil
}

// openOutput opens path for writing, or returns stdout when path is empty.
// The returned close function is a no-op for stdout.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
