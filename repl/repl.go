/*
Package repl implements the interactive Read-Eval-Print Loop for Squared.

Grounded on the teacher's repl/repl.go: the same Repl{Banner, Version,
Author, Line, License, Prompt} shape, the same blue/green/yellow/red/cyan
color roles, github.com/chzyer/readline for history/line-editing, and the
same executeWithRecovery panic-recovery pattern. It diverges from the
teacher in one place the domain forces: Squared statements span multiple
physical lines via indentation (spec.md §4.1), so a single Readline() call
cannot be handed straight to the parser — the loop keeps reading lines,
tracking indentation depth, until a complete logical unit is buffered,
then parses and evaluates the whole thing at once.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/squared-lang/squared/eval"
	"github.com/squared-lang/squared/host"
	"github.com/squared-lang/squared/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner and metadata.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Squared (^2)!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter; indented blocks are read until dedent.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop against reader/writer: readline reads input
// lines from reader (wrapped in a cancelable stdin) and writes its prompt,
// program output, and diagnostics to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		Stdin:           readline.NewCancelableStdin(reader),
		Stdout:          writer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	h := host.New()
	h.SetWriter(writer)
	ev := eval.New(h)

	acc := newAccumulator()

	for {
		prompt := r.Prompt
		if acc.pending() {
			prompt = strings.Repeat(" ", len(r.Prompt))
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		if !acc.pending() {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				return
			}
		}

		rl.SaveHistory(line)
		acc.addLine(line)

		if acc.pending() {
			continue
		}

		src := acc.drain()
		if strings.TrimSpace(src) == "" {
			continue
		}
		r.executeWithRecovery(writer, src, ev)
	}
}

// executeWithRecovery parses and evaluates one accumulated logical unit,
// recovering from panics so a single bad statement never kills the session
// (mirrors the teacher's executeWithRecovery).
func (r *Repl) executeWithRecovery(writer io.Writer, src string, ev *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, err := parser.ParseSource(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	// ev.Run already reports runtime errors through the host sink
	// (evaluator.go's "Runtime Error: ..." line); no need to print err again.
	result, err := ev.Run(prog)
	if err != nil {
		return
	}
	if result != nil && result.Type() != "undefined" {
		yellowColor.Fprintf(writer, "%s\n", result.Format())
	}
}
