package dot

import (
	"bytes"
	"io"
)

// Graph is the root container of a DOT document. It composes all three
// capabilities: it owns nodes, edges, and top-level clusters, and it
// serializes itself and everything it transitively contains.
type Graph struct {
	NodeScope
	EdgeScope
	ClusterScope

	Label string
	Attrs *Attrs
}

// NewGraph creates an empty directed graph with the given label.
func NewGraph(label string) *Graph {
	return &Graph{Label: label, Attrs: NewAttrs()}
}

// Write serializes the graph as a DOT digraph to w. Statement order is
// fixed: graph attributes, nodes, clusters, then edges. The internal
// emitter is closed on all exit paths. Serialization is a pure read of
// the model: writing the same graph twice yields identical bytes.
//
// There is no buffering beyond what w provides, so a mid-serialization
// failure can leave a truncated document on w. Callers that need
// all-or-nothing output should use [Graph.Marshal].
func (g *Graph) Write(w io.Writer) error {
	e := NewEmitter(w)
	defer e.Close()

	if err := e.Writeln("digraph " + Quote(g.Label) + " {"); err != nil {
		return err
	}
	err := e.Scoped(func() error {
		if err := e.Writeln("label=" + Quote(g.Label) + ";"); err != nil {
			return err
		}
		var werr error
		g.Attrs.Each(func(k, v string) {
			if werr == nil {
				werr = e.Writeln(k + "=" + Quote(v) + ";")
			}
		})
		if werr != nil {
			return werr
		}
		if err := g.writeNodes(e); err != nil {
			return err
		}
		for _, c := range g.Clusters() {
			if err := e.Writeln(""); err != nil {
				return err
			}
			if err := c.write(e); err != nil {
				return err
			}
		}
		if g.edgeDefaults.Len() > 0 || len(g.Edges()) > 0 {
			if err := e.Writeln(""); err != nil {
				return err
			}
		}
		return g.writeEdges(e)
	})
	if err != nil {
		return err
	}
	return e.Writeln("}")
}

// Marshal returns the serialized DOT document as bytes, buffering the
// whole document so a failure never yields partial output.
func (g *Graph) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the serialized DOT document, or an empty string if
// serialization fails (it cannot fail when writing to memory unless the
// model misuses the emitter).
func (g *Graph) String() string {
	out, err := g.Marshal()
	if err != nil {
		return ""
	}
	return string(out)
}
