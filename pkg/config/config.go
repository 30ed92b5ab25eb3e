// Package config loads styling profiles for generated graphs from TOML
// files.
//
// A profile sets the graph label, layout direction, and default
// attributes for the graph, nodes, and edges. Attributes are declared
// as ordered arrays of key/value tables so the serialized DOT preserves
// the file's order:
//
//	label = "dependencies"
//	rankdir = "LR"
//
//	[[node.attr]]
//	key = "shape"
//	value = "box"
//
//	[[node.attr]]
//	key = "fontname"
//	value = "Helvetica"
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depdot/pkg/dot"
	"github.com/matzehuels/depdot/pkg/errors"
	"github.com/matzehuels/depdot/pkg/listing"
)

// Profile is a graph styling profile.
type Profile struct {
	Label   string   `toml:"label"`
	RankDir string   `toml:"rankdir"`
	Graph   AttrList `toml:"graph"`
	Node    AttrList `toml:"node"`
	Edge    AttrList `toml:"edge"`
}

// AttrList holds an ordered list of attribute pairs.
type AttrList struct {
	Attr []AttrPair `toml:"attr"`
}

// AttrPair is one attribute entry.
type AttrPair struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Attrs converts the list into a dot attribute mapping, preserving
// declaration order. Returns nil for an empty list.
func (l AttrList) Attrs() *dot.Attrs {
	if len(l.Attr) == 0 {
		return nil
	}
	a := dot.NewAttrs()
	for _, p := range l.Attr {
		a.Set(p.Key, p.Value)
	}
	return a
}

// Default returns the profile used when no config file is given:
// left-to-right layout so dependency columns feed their dependents.
func Default() Profile {
	return Profile{RankDir: "LR"}
}

// Load reads a profile from a TOML file. Unknown keys are rejected so
// typos in profiles surface instead of silently styling nothing.
func Load(path string) (Profile, error) {
	p := Default()
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Profile{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, undecoded[0].String())
	}
	return p, nil
}

// BuildOptions converts the profile into listing build options.
func (p Profile) BuildOptions() listing.BuildOptions {
	return listing.BuildOptions{
		Label:        p.Label,
		RankDir:      p.RankDir,
		GraphAttrs:   p.Graph.Attrs(),
		NodeDefaults: p.Node.Attrs(),
		EdgeDefaults: p.Edge.Attrs(),
	}
}
