package dot

import "strings"

// Quote wraps s in double quotes for use as a DOT identifier or attribute
// value. Embedded backslashes and double quotes are escaped so the output
// always lexes as a single quoted token.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Attrs is an ordered mapping from attribute name to value. Insertion
// order is preserved so serialization is deterministic. Setting an
// existing key updates the value in place without changing its position.
//
// A nil *Attrs behaves as an empty mapping for all read operations.
type Attrs struct {
	keys   []string
	values map[string]string
}

// NewAttrs creates an empty attribute mapping. Pairs can be chained:
//
//	dot.NewAttrs().Set("shape", "box").Set("color", "gray")
func NewAttrs() *Attrs {
	return &Attrs{values: make(map[string]string)}
}

// Set stores value under key, preserving the position of an existing key.
// It returns the receiver for chaining.
func (a *Attrs) Set(key, value string) *Attrs {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// Get returns the value for key and whether it is present.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of attribute entries.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Each calls fn for every entry in insertion order.
func (a *Attrs) Each(fn func(key, value string)) {
	if a == nil {
		return
	}
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

// Clone returns an independent copy. Cloning nil yields a new empty Attrs.
func (a *Attrs) Clone() *Attrs {
	c := NewAttrs()
	a.Each(func(k, v string) { c.Set(k, v) })
	return c
}

// MergedWith returns a copy of a with every entry of other applied on
// top. Keys from other override same-named keys in a but keep a's
// position; new keys append in other's order.
func (a *Attrs) MergedWith(other *Attrs) *Attrs {
	m := a.Clone()
	other.Each(func(k, v string) { m.Set(k, v) })
	return m
}

// Format returns the bracketed attribute block used by node, edge, and
// defaults statements: `[k1="v1",k2="v2"]` in insertion order, or the
// empty string when no attributes are set.
func (a *Attrs) Format() string {
	if a.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('[')
	first := true
	a.Each(func(k, v string) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Quote(v))
	})
	b.WriteByte(']')
	return b.String()
}
