package listing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/depdot/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "single dependency",
			input: "app:lib\n",
			want:  []Entry{{Name: "app", Deps: []string{"lib"}}},
		},
		{
			name:  "multiple dependencies",
			input: "app:lib1 lib2\n",
			want:  []Entry{{Name: "app", Deps: []string{"lib1", "lib2"}}},
		},
		{
			name:  "no dependencies",
			input: "lib:\n",
			want:  []Entry{{Name: "lib"}},
		},
		{
			name:  "trailing whitespace on deps segment",
			input: "app: lib1 lib2 \n",
			want:  []Entry{{Name: "app", Deps: []string{"lib1", "lib2"}}},
		},
		{
			name:  "blank lines skipped",
			input: "a:b\n\nb:\n",
			want:  []Entry{{Name: "a", Deps: []string{"b"}}, {Name: "b"}},
		},
		{
			name:  "no trailing newline",
			input: "a:b",
			want:  []Entry{{Name: "a", Deps: []string{"b"}}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("a:b\nnot a listing line\n"))
	if !errors.Is(err, errors.ErrCodeMalformedLine) {
		t.Fatalf("Parse() error = %v, want MALFORMED_LINE", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse() error = %v, want line number", err)
	}
}

func TestBuildFiltersIsolatedEntries(t *testing.T) {
	entries := []Entry{
		{Name: "a", Deps: []string{"b"}},
		{Name: "c"},
	}

	out := Build(entries, BuildOptions{}).String()

	if !strings.Contains(out, `"a"`) {
		t.Errorf("output missing used node a:\n%s", out)
	}
	if !strings.Contains(out, `"b"`) {
		t.Errorf("output missing used node b:\n%s", out)
	}
	if strings.Contains(out, `"c"`) {
		t.Errorf("output contains isolated node c:\n%s", out)
	}
}

func TestBuildEdgeDirection(t *testing.T) {
	entries, err := Parse(strings.NewReader("app:lib1 lib2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g := Build(entries, BuildOptions{})

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("edge count = %d, want 2", len(edges))
	}
	for i, want := range []struct{ from, to string }{{"lib1", "app"}, {"lib2", "app"}} {
		if edges[i].From != want.from || edges[i].To != want.to {
			t.Errorf("edge %d = %s -> %s, want %s -> %s", i, edges[i].From, edges[i].To, want.from, want.to)
		}
	}

	out := g.String()
	if strings.Contains(out, `"app" -> "lib1"`) {
		t.Errorf("edge direction inverted:\n%s", out)
	}
}

func TestBuildEndToEnd(t *testing.T) {
	entries, err := Parse(strings.NewReader("x:y\ny:\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := Build(entries, BuildOptions{Label: "deps"}).String()

	for _, want := range []string{
		`"x" [label="x"];`,
		`"y" [label="y"];`,
		`"y" -> "x";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"y" -> "x" [`) {
		t.Errorf("empty edge attributes should render nothing:\n%s", out)
	}
}

func TestBuildOptions(t *testing.T) {
	entries := []Entry{{Name: "a", Deps: []string{"b"}}}

	g := Build(entries, BuildOptions{Label: "mygraph", RankDir: "LR"})
	out := g.String()

	for _, want := range []string{
		`digraph "mygraph" {`,
		`rankdir="LR";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
