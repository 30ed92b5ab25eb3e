package dot_test

import (
	"os"

	"github.com/matzehuels/depdot/pkg/dot"
)

// Build a small graph with a cluster and scoped styling, then serialize
// it as DOT.
func Example() {
	g := dot.NewGraph("services")
	g.Attrs.Set("rankdir", "LR")
	g.SetNodeDefaults(dot.NewAttrs().Set("shape", "box"))

	g.AddNode("gateway", "gateway", nil)

	core := g.AddCluster("core", "Core Services", nil)
	core.WithNodeStyle(dot.NewAttrs().Set("style", "filled"), func() {
		core.AddNode("auth", "auth", nil)
		core.AddNode("billing", "billing", nil)
	})

	g.Link("auth", "gateway", nil)
	g.Link("billing", "gateway", nil)

	if err := g.Write(os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// digraph "services" {
	//   label="services";
	//   rankdir="LR";
	//   node [shape="box"];
	//   "gateway" [label="gateway"];
	//
	//   subgraph "cluster_core" {
	//     label="Core Services";
	//     "auth"    [style="filled",label="auth"];
	//     "billing" [style="filled",label="billing"];
	//   }
	//
	//   "auth" -> "gateway";
	//   "billing" -> "gateway";
	// }
}
