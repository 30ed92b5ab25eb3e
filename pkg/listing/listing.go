// Package listing parses flat dependency listings and builds DOT graphs
// from them.
//
// A listing is line-oriented text where each line names an entity and
// its direct dependencies:
//
//	app:lib1 lib2
//	lib1:lib2
//	lib2:
//
// The left-hand side is the entity name, the right-hand side a
// space-separated (possibly empty) list of dependency names. Listings
// come from files, stdin, or the stdout of an external producer
// process; see [Source].
package listing

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/depdot/pkg/errors"
)

// Entry is one parsed listing line: an entity and its direct
// dependencies in input order.
type Entry struct {
	Name string
	Deps []string
}

// Parse reads a dependency listing line by line. A line without the
// `:` separator fails the whole parse with a MALFORMED_LINE error
// carrying the line number; there is no partial recovery. Blank lines
// are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedLine, "line %d: missing ':' separator: %q", lineno, line)
		}

		entry := Entry{Name: strings.TrimSpace(name)}
		if rest = strings.TrimSpace(rest); rest != "" {
			entry.Deps = strings.Split(rest, " ")
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceFailed, err, "read listing")
	}

	return entries, nil
}
