package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/depdot/pkg/errors"
	"github.com/matzehuels/depdot/pkg/listing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
label = "services"
rankdir = "TB"

[[graph.attr]]
key = "bgcolor"
value = "transparent"

[[node.attr]]
key = "shape"
value = "box"

[[node.attr]]
key = "fontname"
value = "Helvetica"

[[edge.attr]]
key = "arrowhead"
value = "vee"
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Label != "services" {
		t.Errorf("Label = %q, want services", p.Label)
	}
	if p.RankDir != "TB" {
		t.Errorf("RankDir = %q, want TB", p.RankDir)
	}

	// Node attrs preserve declaration order.
	want := `[shape="box",fontname="Helvetica"]`
	if got := p.Node.Attrs().Format(); got != want {
		t.Errorf("node attrs = %s, want %s", got, want)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeProfile(t, `
label = "x"
colour = "typo"
`)

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.RankDir != "LR" {
		t.Errorf("Default RankDir = %q, want LR", p.RankDir)
	}
	if p.Node.Attrs() != nil {
		t.Error("Default node attrs should be nil")
	}
}

func TestBuildOptionsEndToEnd(t *testing.T) {
	path := writeProfile(t, `
label = "deps"

[[node.attr]]
key = "shape"
value = "box"
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	entries := []listing.Entry{{Name: "a", Deps: []string{"b"}}}
	out := listing.Build(entries, p.BuildOptions()).String()

	for _, want := range []string{
		`digraph "deps" {`,
		`rankdir="LR";`,
		`node [shape="box"];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
