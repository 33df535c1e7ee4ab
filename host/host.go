/*
File   : squared/host/host.go

Package host implements the runtime host contract spec.md §6 describes:
an output sink, an optional input prompt, and a module registry for
`import`. It is the Go analogue of the teacher interpreter's
eval.Evaluator.Writer/Reader plumbing (eval/evaluator.go), pulled out into
its own package so the evaluator depends on an interface rather than
owning I/O directly.
*/
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/squared-lang/squared/objects"
)

// Host bundles the two callbacks and the registry spec.md §6 requires.
// The zero value is not ready for use; call New.
type Host struct {
	Writer   io.Writer
	Reader   *bufio.Reader
	Registry *Registry
}

// New creates a Host wired to stdout/stdin with an empty, then
// standard-library-populated, module registry (see RegisterStandardModules).
func New() *Host {
	registry := NewRegistry()
	registry.RegisterStandardModules()
	return &Host{
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		Registry: registry,
	}
}

// SetWriter redirects the output sink, mirroring the teacher interpreter's
// Evaluator.SetWriter — used by tests to capture `print` output into a
// buffer.
func (h *Host) SetWriter(w io.Writer) {
	h.Writer = w
}

// SetReader redirects the input source, mirroring the teacher interpreter's
// Evaluator.SetReader.
func (h *Host) SetReader(r io.Reader) {
	h.Reader = bufio.NewReader(r)
}

// Output implements spec.md §6 "output(text, isError?)": a single line is
// written to the sink. Callers pass the already-formatted line; Output
// itself only appends the trailing newline. The isError flag is accepted
// but not used: error lines and ordinary lines are written the same way,
// without color.
func (h *Host) Output(text string, isError bool) {
	fmt.Fprintln(h.Writer, text)
}

// Input implements spec.md §6's optional input callback. The core
// evaluator never calls it; it exists for an alternate REPL-style backend.
func (h *Host) Input(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(h.Writer, prompt)
	}
	line, err := h.Reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print implements the `print` builtin (spec.md §4.6): format each
// argument per spec.md §6 and emit one line joined by spaces.
func (h *Host) Print(args []objects.Value) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Format()
	}
	h.Output(strings.Join(parts, " "), false)
}
