package dot

// Cluster is a named, labeled subgraph that can contain nodes and
// further nested clusters. Clusters never own edges: all edges live on
// the root [Graph] regardless of which cluster their endpoints belong
// to. Ownership is strictly tree-shaped.
type Cluster struct {
	NodeScope
	ClusterScope

	ID    string
	Label string
	Attrs *Attrs
}

// Identifier returns the quoted subgraph identifier with the cluster_
// namespace prefix the layout engine requires for visual grouping. It
// is independent of nesting depth.
func (c *Cluster) Identifier() string {
	return Quote("cluster_" + c.ID)
}

// write serializes the cluster: a subgraph header keyed by
// [Cluster.Identifier], then one indent level containing the label
// line, the remaining attribute lines, each nested cluster (depth-first
// in insertion order), and finally this cluster's own nodes.
func (c *Cluster) write(e *Emitter) error {
	if err := e.Writeln("subgraph " + c.Identifier() + " {"); err != nil {
		return err
	}
	err := e.Scoped(func() error {
		if err := e.Writeln("label=" + Quote(c.Label) + ";"); err != nil {
			return err
		}
		var werr error
		c.Attrs.Each(func(k, v string) {
			if werr == nil {
				werr = e.Writeln(k + "=" + Quote(v) + ";")
			}
		})
		if werr != nil {
			return werr
		}
		for _, sub := range c.Clusters() {
			if err := sub.write(e); err != nil {
				return err
			}
		}
		return c.writeNodes(e)
	})
	if err != nil {
		return err
	}
	return e.Writeln("}")
}
