package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/depdot/pkg/errors"
)

func TestEmitterIndentation(t *testing.T) {
	var buf strings.Builder
	e := NewEmitter(&buf)

	if err := e.Writeln("a {"); err != nil {
		t.Fatalf("Writeln: %v", err)
	}
	e.Indent()
	if err := e.Writeln("b;"); err != nil {
		t.Fatalf("Writeln: %v", err)
	}
	if err := e.Dedent(); err != nil {
		t.Fatalf("Dedent: %v", err)
	}
	if err := e.Writeln("}"); err != nil {
		t.Fatalf("Writeln: %v", err)
	}

	want := "a {\n  b;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEmitterBlankLineHasNoIndent(t *testing.T) {
	var buf strings.Builder
	e := NewEmitter(&buf)
	e.Indent()
	if err := e.Writeln(""); err != nil {
		t.Fatalf("Writeln: %v", err)
	}
	if got := buf.String(); got != "\n" {
		t.Errorf("blank line = %q, want %q", got, "\n")
	}
}

func TestEmitterDedentBelowZero(t *testing.T) {
	e := NewEmitter(&strings.Builder{})

	err := e.Dedent()
	if !errors.Is(err, errors.ErrCodeInvalidIndent) {
		t.Errorf("Dedent() error = %v, want INVALID_INDENT", err)
	}

	// The emitter is poisoned: further writes fail with the same error.
	if err := e.Writeln("x"); !errors.Is(err, errors.ErrCodeInvalidIndent) {
		t.Errorf("Writeln after bad dedent = %v, want INVALID_INDENT", err)
	}
}

func TestEmitterScopedRestoresDepth(t *testing.T) {
	e := NewEmitter(&strings.Builder{})

	err := e.Scoped(func() error {
		return e.Scoped(func() error {
			if e.Depth() != 2 {
				t.Errorf("inner depth = %d, want 2", e.Depth())
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Scoped: %v", err)
	}
	if e.Depth() != 0 {
		t.Errorf("depth after scopes = %d, want 0", e.Depth())
	}
}

func TestEmitterScopedRestoresDepthOnPanic(t *testing.T) {
	e := NewEmitter(&strings.Builder{})

	func() {
		defer func() { _ = recover() }()
		_ = e.Scoped(func() error {
			panic("boom")
		})
	}()

	if e.Depth() != 0 {
		t.Errorf("depth after panic = %d, want 0", e.Depth())
	}
}

func TestEmitterWriteAfterClose(t *testing.T) {
	e := NewEmitter(&strings.Builder{})
	e.Close()

	if err := e.Writeln("x"); !errors.Is(err, errors.ErrCodeEmitterClosed) {
		t.Errorf("Writeln after Close = %v, want EMITTER_CLOSED", err)
	}
}

// failWriter fails after n successful writes.
type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errTestSink
	}
	w.n--
	return len(p), nil
}

var errTestSink = errors.New(errors.ErrCodeInternal, "sink failed")

func TestEmitterStickyError(t *testing.T) {
	e := NewEmitter(&failWriter{n: 1})

	if err := e.Writeln("ok"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := e.Writeln("fails"); err == nil {
		t.Fatal("second write should fail")
	}
	if err := e.Writeln("still fails"); err == nil {
		t.Fatal("writes after failure should keep failing")
	}
	if e.Err() == nil {
		t.Error("Err() = nil after failed write")
	}
}
