package dot

import "fmt"

// Node is a labeled graph vertex. Nodes are created through a
// [NodeScope] and are immutable afterward; the scope that created a
// node owns it.
//
// Identifier uniqueness is not enforced: the caller is responsible for
// using unique identifiers within a scope.
type Node struct {
	ID    string
	Label string
	Attrs *Attrs
}

// Render produces the node statement body: the quoted identifier
// left-padded to idWidth for column alignment, a space, and the
// formatted attribute block with the label injected. The injected label
// overrides any user-supplied "label" attribute. The node itself is not
// mutated, so rendering is repeatable.
func (n *Node) Render(idWidth int) string {
	attrs := n.Attrs.Clone().Set("label", n.Label)
	return fmt.Sprintf("%-*s %s", idWidth, Quote(n.ID), attrs.Format())
}

// Edge is a directed connection between two vertex identifiers,
// pointing from From to To. Edges are created through an [EdgeScope].
type Edge struct {
	From  string
	To    string
	Attrs *Attrs
}

// Render produces the edge statement body: quoted endpoints joined by
// an arrow, followed by the formatted attribute block when any
// attributes are set. Unlike nodes, edges are not column-aligned.
func (e *Edge) Render() string {
	s := Quote(e.From) + " -> " + Quote(e.To)
	if a := e.Attrs.Format(); a != "" {
		s += " " + a
	}
	return s
}
