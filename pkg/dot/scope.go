package dot

// NodeScope owns a sequence of nodes, a node-defaults attribute set,
// and a stack of current node styles. New nodes inherit the style on
// top of the stack, with explicitly passed attributes taking
// precedence. The zero value is ready to use.
type NodeScope struct {
	nodes        []*Node
	nodeDefaults *Attrs
	nodeStyles   []*Attrs
}

// AddNode creates a node, merging the active node style (if any) with
// the explicit attrs (explicit keys win), appends it to the scope, and
// returns it. attrs may be nil.
func (s *NodeScope) AddNode(id, label string, attrs *Attrs) *Node {
	merged := s.styleTop().MergedWith(attrs)
	n := &Node{ID: id, Label: label, Attrs: merged}
	s.nodes = append(s.nodes, n)
	return n
}

// Nodes returns the nodes owned by this scope in insertion order.
func (s *NodeScope) Nodes() []*Node { return s.nodes }

// SetNodeDefaults sets the attribute set emitted once for this scope as
// a `node [...]` directive before any node statements.
func (s *NodeScope) SetNodeDefaults(a *Attrs) { s.nodeDefaults = a }

// PushNodeStyle pushes a default attribute set for subsequently created
// nodes. Prefer [NodeScope.WithNodeStyle], which guarantees the
// matching pop.
func (s *NodeScope) PushNodeStyle(a *Attrs) {
	s.nodeStyles = append(s.nodeStyles, a)
}

// PopNodeStyle removes the top of the style stack. Popping an empty
// stack is a no-op.
func (s *NodeScope) PopNodeStyle() {
	if n := len(s.nodeStyles); n > 0 {
		s.nodeStyles = s.nodeStyles[:n-1]
	}
}

// WithNodeStyle runs fn with a pushed on the node style stack and pops
// it on every exit path, including panics.
func (s *NodeScope) WithNodeStyle(a *Attrs, fn func()) {
	s.PushNodeStyle(a)
	defer s.PopNodeStyle()
	fn()
}

func (s *NodeScope) styleTop() *Attrs {
	if n := len(s.nodeStyles); n > 0 {
		return s.nodeStyles[n-1]
	}
	return nil
}

// writeNodes emits the node-defaults directive (when non-empty) and one
// statement per node, column-aligned to the widest quoted identifier in
// this scope. Nothing is emitted for an empty scope without defaults.
func (s *NodeScope) writeNodes(e *Emitter) error {
	if s.nodeDefaults.Len() > 0 {
		if err := e.Writeln("node " + s.nodeDefaults.Format() + ";"); err != nil {
			return err
		}
	}
	if len(s.nodes) == 0 {
		return nil
	}
	width := 0
	for _, n := range s.nodes {
		if w := len(Quote(n.ID)); w > width {
			width = w
		}
	}
	for _, n := range s.nodes {
		if err := e.Writeln(n.Render(width) + ";"); err != nil {
			return err
		}
	}
	return nil
}

// EdgeScope owns a sequence of edges, an edge-defaults attribute set,
// and a stack of current edge styles, mirroring [NodeScope]. The zero
// value is ready to use.
type EdgeScope struct {
	edges        []*Edge
	edgeDefaults *Attrs
	edgeStyles   []*Attrs
}

// Link creates a directed edge from one identifier to another, merging
// the active edge style with the explicit attrs (explicit keys win),
// appends it to the scope, and returns it. attrs may be nil.
func (s *EdgeScope) Link(from, to string, attrs *Attrs) *Edge {
	merged := s.styleTop().MergedWith(attrs)
	ed := &Edge{From: from, To: to, Attrs: merged}
	s.edges = append(s.edges, ed)
	return ed
}

// Edges returns the edges owned by this scope in insertion order.
func (s *EdgeScope) Edges() []*Edge { return s.edges }

// SetEdgeDefaults sets the attribute set emitted once for this scope as
// an `edge [...]` directive before any edge statements.
func (s *EdgeScope) SetEdgeDefaults(a *Attrs) { s.edgeDefaults = a }

// PushEdgeStyle pushes a default attribute set for subsequently created
// edges. Prefer [EdgeScope.WithEdgeStyle].
func (s *EdgeScope) PushEdgeStyle(a *Attrs) {
	s.edgeStyles = append(s.edgeStyles, a)
}

// PopEdgeStyle removes the top of the style stack. Popping an empty
// stack is a no-op.
func (s *EdgeScope) PopEdgeStyle() {
	if n := len(s.edgeStyles); n > 0 {
		s.edgeStyles = s.edgeStyles[:n-1]
	}
}

// WithEdgeStyle runs fn with a pushed on the edge style stack and pops
// it on every exit path, including panics.
func (s *EdgeScope) WithEdgeStyle(a *Attrs, fn func()) {
	s.PushEdgeStyle(a)
	defer s.PopEdgeStyle()
	fn()
}

func (s *EdgeScope) styleTop() *Attrs {
	if n := len(s.edgeStyles); n > 0 {
		return s.edgeStyles[n-1]
	}
	return nil
}

// writeEdges emits the edge-defaults directive (when non-empty) and one
// statement per edge in insertion order. Edges are deliberately not
// width-aligned; only node statements form columns.
func (s *EdgeScope) writeEdges(e *Emitter) error {
	if s.edgeDefaults.Len() > 0 {
		if err := e.Writeln("edge " + s.edgeDefaults.Format() + ";"); err != nil {
			return err
		}
	}
	for _, ed := range s.edges {
		if err := e.Writeln(ed.Render() + ";"); err != nil {
			return err
		}
	}
	return nil
}

// ClusterScope owns a sequence of nested subgraph clusters. The zero
// value is ready to use.
type ClusterScope struct {
	clusters []*Cluster
}

// AddCluster creates a cluster owned by this scope, appends it, and
// returns it so nodes and further clusters can be added to it. attrs
// may be nil.
func (s *ClusterScope) AddCluster(id, label string, attrs *Attrs) *Cluster {
	c := &Cluster{ID: id, Label: label, Attrs: attrs.Clone()}
	s.clusters = append(s.clusters, c)
	return c
}

// Clusters returns the clusters owned by this scope in insertion order.
func (s *ClusterScope) Clusters() []*Cluster { return s.clusters }
