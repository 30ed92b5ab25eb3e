// Package dot provides an in-memory object model for directed graphs and
// one-way serialization of that model into the Graphviz DOT language.
//
// # Overview
//
// The model is built around three composable capabilities:
//
//   - [NodeScope]: owns nodes, node defaults, and a node style stack
//   - [EdgeScope]: owns edges, edge defaults, and an edge style stack
//   - [ClusterScope]: owns nested subgraph clusters
//
// [Graph] composes all three and is the root of ownership. [Cluster]
// composes NodeScope and ClusterScope only: clusters can contain nodes and
// further nested clusters, but all edges live on the root graph regardless
// of which cluster their endpoints belong to.
//
// # Serialization
//
// Serialization is a pure read of the model. A graph can be written any
// number of times and produces byte-identical output each time:
//
//	g := dot.NewGraph("deps")
//	g.AddNode("app", "Application", nil)
//	g.AddNode("lib", "Library", nil)
//	g.Link("lib", "app", nil)
//	if err := g.Write(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Statement order is fixed: nodes, then clusters (depth-first), then
// edges. The target layout engine resolves identifiers on first mention,
// so explicit node statements must precede the subgraph memberships
// derived from them.
//
// # Styles
//
// Each scope carries a stack of default attribute sets. Attributes pushed
// with [NodeScope.WithNodeStyle] or [EdgeScope.WithEdgeStyle] apply to
// every node or edge created inside the callback, with explicitly passed
// attributes taking precedence. The stack is restored on every exit path,
// including panics.
//
// This package intentionally implements no graph algorithms: no cycle
// detection, no ordering, no validation that the input is acyclic. It is
// a builder and serializer only.
package dot
