// Package render turns DOT documents into images using the Graphviz
// layout engine (via github.com/goccy/go-graphviz). The DOT text itself
// is produced by pkg/dot; this package only handles layout and
// rasterization.
package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depdot/pkg/errors"
)

// Format is a supported output format.
type Format string

const (
	// FormatDOT passes the DOT text through unchanged.
	FormatDOT Format = "dot"
	// FormatSVG renders a scalable vector image.
	FormatSVG Format = "svg"
	// FormatPNG renders a raster image.
	FormatPNG Format = "png"
)

// Formats lists all supported output formats.
var Formats = []Format{FormatDOT, FormatSVG, FormatPNG}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (supported: dot, svg, png)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Render lays out dotSrc with Graphviz and returns the result in the
// requested format. FormatDOT short-circuits and returns dotSrc
// unchanged. Graphviz errors are wrapped with RENDER_FAILED.
func Render(ctx context.Context, dotSrc []byte, format Format) ([]byte, error) {
	if format == FormatDOT {
		return dotSrc, nil
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dotSrc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var out graphviz.Format
	switch format {
	case FormatSVG:
		out = graphviz.SVG
	case FormatPNG:
		out = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, out, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
