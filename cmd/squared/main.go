/*
Command squared is the entry point for the ^2 interpreter.

Grounded on the teacher's main/main.go: the same os.Args[1] dispatch shape
(--help/-h, --version/-v, a bare filename, otherwise REPL), the same
fatih/color diagnostic roles (cyan for info, yellow for help text, red for
errors), and the same executeFileWithRecovery panic-recovery wrapper around
parse-then-evaluate. It drops the teacher's "server" subcommand — spec.md
names no network-service mode for Squared, and the module's Non-goals rule
out a server runtime; everything else about the dispatch shape carries over.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/squared-lang/squared/eval"
	"github.com/squared-lang/squared/host"
	"github.com/squared-lang/squared/parser"
	"github.com/squared-lang/squared/repl"
)

const (
	version = "v0.1.0"
	author  = "squared-lang"
	license = "MIT"
	prompt  = "^2 >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
   ____              __
  / __/__ ___ _____ _/ /______ ____
 _\ \/ _ `+"`"+`/ // / _ `+"`"+`/ __/ -_) _ `+"`"+`/
/___/\_, /\_,_/\_, /\__/\__/\_,_/
       ^2 =/_/       /_/
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Squared (^2) - a bracket-delimited, indentation-structured scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  squared                    Start interactive REPL mode")
	yellowColor.Println("  squared <path-to-file>     Execute a Squared file")
	yellowColor.Println("  squared --help             Display this help message")
	yellowColor.Println("  squared --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Squared (^2) interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}

// runFile reads source from path, parses and evaluates it with panic
// recovery, and exits non-zero on any parse, runtime, or read failure.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(source))
}

func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	prog, err := parser.ParseSource(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	h := host.New()
	ev := eval.New(h)

	// ev.Run already reports the failure through the host sink (stdout);
	// only the exit code needs setting here.
	result, err := ev.Run(prog)
	if err != nil {
		os.Exit(1)
	}
	if result != nil && result.Type() != "undefined" {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Format())
	}
}
