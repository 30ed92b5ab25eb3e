package listing

import "github.com/matzehuels/depdot/pkg/dot"

// BuildOptions controls how a parsed listing becomes a DOT graph.
type BuildOptions struct {
	// Label is the graph label. Defaults to "dependencies".
	Label string
	// RankDir sets the layout direction (e.g. "LR"). Empty leaves the
	// engine default.
	RankDir string
	// GraphAttrs, NodeDefaults, and EdgeDefaults are applied to the
	// graph verbatim. Any of them may be nil.
	GraphAttrs   *dot.Attrs
	NodeDefaults *dot.Attrs
	EdgeDefaults *dot.Attrs
}

// Build converts parsed entries into a DOT graph.
//
// Filtering: an entity that neither has dependencies nor is depended
// upon by anything is excluded entirely. Two passes implement this —
// first collect the used set (every name appearing on either side of
// any relation), then emit nodes only for left-hand names in that set.
// Names that appear only as dependencies still get nodes, since the
// edge mentions them.
//
// Edge direction: for `name: dep1 dep2`, edges run dep1 -> name and
// dep2 -> name. The arrow flows from prerequisite to consumer, which
// the default left-to-right layout renders as dependency columns
// feeding their dependents.
func Build(entries []Entry, opts BuildOptions) *dot.Graph {
	label := opts.Label
	if label == "" {
		label = "dependencies"
	}

	g := dot.NewGraph(label)
	if opts.RankDir != "" {
		g.Attrs.Set("rankdir", opts.RankDir)
	}
	opts.GraphAttrs.Each(func(k, v string) { g.Attrs.Set(k, v) })
	if opts.NodeDefaults.Len() > 0 {
		g.SetNodeDefaults(opts.NodeDefaults)
	}
	if opts.EdgeDefaults.Len() > 0 {
		g.SetEdgeDefaults(opts.EdgeDefaults)
	}

	used := make(map[string]bool)
	for _, e := range entries {
		for _, dep := range e.Deps {
			used[e.Name] = true
			used[dep] = true
		}
	}

	for _, e := range entries {
		if !used[e.Name] {
			continue
		}
		g.AddNode(e.Name, e.Name, nil)
	}
	for _, e := range entries {
		if !used[e.Name] {
			continue
		}
		for _, dep := range e.Deps {
			g.Link(dep, e.Name, nil)
		}
	}

	return g
}
