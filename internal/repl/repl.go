/*
File    : exath/internal/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop for the
exath CLI. It keeps a single *exath.Session alive across lines, supports
a handful of session commands (:vars, :funcs, :mode, :clear, :quit), and
reports engine errors in red without exiting, matching the teacher's
repl.go shape and color scheme generalized from its single global
evaluator to a session-aware one.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/exath-lang/exath"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the static display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given display configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to exath!")
	cyanColor.Fprintf(w, "%s\n", "Type an expression, assignment, or function definition and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Commands: :vars  :funcs  :mode  :clear  :quit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user quits or input
// is exhausted. mode sets the initial angle mode of the session.
func (r *Repl) Start(w io.Writer, mode exath.AngleMode) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := exath.NewSession(mode)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if strings.HasPrefix(line, ":") {
			if r.runCommand(w, sess, line) {
				w.Write([]byte("Good bye!\n"))
				return
			}
			continue
		}

		r.evalLine(w, sess, line)
	}
}

func (r *Repl) evalLine(w io.Writer, sess *exath.Session, line string) {
	v, err := sess.Eval(line)
	if err != nil {
		redColor.Fprintf(w, "[%s] %s\n", err.Kind, err.Message)
		return
	}
	yellowColor.Fprintf(w, "%s\n", formatComplex(v))
}

// runCommand handles a leading-colon session command. It returns true
// when the REPL should exit.
func (r *Repl) runCommand(w io.Writer, sess *exath.Session, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true
	case ":vars":
		names := sess.VarNames()
		if len(names) == 0 {
			cyanColor.Fprintln(w, "(no variables)")
			return false
		}
		for _, name := range names {
			cyanColor.Fprintf(w, "%s\n", name)
		}
	case ":funcs":
		names := sess.FnNames()
		if len(names) == 0 {
			cyanColor.Fprintln(w, "(no functions)")
			return false
		}
		for _, name := range names {
			cyanColor.Fprintf(w, "%s\n", name)
		}
	case ":clear":
		sess.ClearVars()
		cyanColor.Fprintln(w, "variables cleared")
	case ":mode":
		if len(fields) < 2 {
			cyanColor.Fprintf(w, "current mode: %v\n", sess.Mode())
			return false
		}
		redColor.Fprintln(w, "angle mode is fixed for the lifetime of a session; start a new one to change it")
	default:
		redColor.Fprintf(w, "unknown command %q\n", fields[0])
	}
	return false
}

// realTol mirrors the engine's real-value predicate (spec.md §3) for
// display purposes only; it does not affect evaluation.
const realTol = 1e-12

func formatComplex(v complex128) string {
	re, im := real(v), imag(v)
	if im < realTol && im > -realTol {
		return fmt.Sprintf("%g", re)
	}
	if re == 0 {
		return fmt.Sprintf("%gi", im)
	}
	if im < 0 {
		return fmt.Sprintf("%g - %gi", re, -im)
	}
	return fmt.Sprintf("%g + %gi", re, im)
}
