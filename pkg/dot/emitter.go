package dot

import (
	"io"
	"strings"

	"github.com/matzehuels/depdot/pkg/errors"
)

// indentUnit is emitted once per nesting level.
const indentUnit = "  "

// Emitter is an indentation-aware text sink wrapping an io.Writer. It
// tracks the current indent depth and prefixes every line with the
// corresponding number of indent units.
//
// The emitter carries a sticky error: after the first failed write or
// contract violation, all further operations are no-ops returning the
// same error. This keeps serialization code free of per-line checks
// while still surfacing the first failure.
type Emitter struct {
	w     io.Writer
	depth int
	err   error
}

// NewEmitter creates an emitter writing to w at depth zero.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Write emits the current indentation followed by s, without a newline.
func (e *Emitter) Write(s string) error {
	return e.write(s, false)
}

// Writeln emits the current indentation followed by s and a newline.
// An empty s produces a bare newline with no indentation, so blank
// separator lines never carry trailing whitespace.
func (e *Emitter) Writeln(s string) error {
	return e.write(s, true)
}

func (e *Emitter) write(s string, newline bool) error {
	if e.err != nil {
		return e.err
	}
	if e.w == nil {
		e.err = errors.New(errors.ErrCodeEmitterClosed, "write after close")
		return e.err
	}
	var b strings.Builder
	if s != "" {
		b.WriteString(strings.Repeat(indentUnit, e.depth))
		b.WriteString(s)
	}
	if newline {
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(e.w, b.String()); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Indent increases the indent depth by one level.
func (e *Emitter) Indent() { e.depth++ }

// Dedent decreases the indent depth by one level. Dedenting below zero
// is a usage-contract violation: it poisons the emitter and returns an
// INVALID_INDENT error.
func (e *Emitter) Dedent() error {
	if e.depth == 0 {
		if e.err == nil {
			e.err = errors.New(errors.ErrCodeInvalidIndent, "dedent below zero")
		}
		return e.err
	}
	e.depth--
	return e.err
}

// Scoped runs fn one indent level deeper and restores the previous depth
// on every exit path, including panics.
func (e *Emitter) Scoped(fn func() error) error {
	e.Indent()
	defer e.Dedent() //nolint:errcheck // depth>0 is guaranteed by the Indent above
	return fn()
}

// Depth returns the current indent depth.
func (e *Emitter) Depth() int { return e.depth }

// Err returns the sticky error, if any.
func (e *Emitter) Err() error { return e.err }

// Close releases the writer. Further writes fail with EMITTER_CLOSED.
// Close does not close the underlying writer; its lifetime belongs to
// the caller.
func (e *Emitter) Close() {
	e.w = nil
}
