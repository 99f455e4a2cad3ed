/*
File    : exath/cmd/exath/main.go

Package main is the CLI entry point: one-shot expression evaluation via
-expr, file-mode execution of a line-per-statement session script, or an
interactive REPL when given neither. Modeled on the teacher's
main/main.go mode dispatch, generalized from Go-Mix's file/server modes
to this engine's one-shot/file/REPL modes.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/exath-lang/exath"
	"github.com/exath-lang/exath/ast"
	"github.com/exath-lang/exath/internal/repl"
)

const version = "v0.1.0"
const author = "the exath project"
const license = "MIT"
const prompt = "exath >>> "

const banner = `
  ______          __  __
 /\  _  \        /\ \/\ \
 \ \ \L\ \   __  \ \ \_\ \
  \ \  __ \/\'__\_\_\ \ \ \
   \ \ \/\ \ \ \/\.\  \ \ \ \
    \ \_\ \_\ \_\\ \_\ \ \_\ \
     \/_/\/_/\/_/ \/_/  \/_/\/_/
`

const line = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	modeFlag := flag.String("mode", "rad", "angle mode: rad, deg, or grad")
	exprFlag := flag.String("expr", "", "evaluate a single expression and exit")
	dumpFlag := flag.Bool("dump", false, "with -expr, print the parsed AST instead of evaluating")
	flag.Parse()

	mode, ok := exath.ParseAngleMode(*modeFlag)
	if !ok {
		redColor.Fprintf(os.Stderr, "unknown angle mode %q (want rad, deg, or grad)\n", *modeFlag)
		os.Exit(1)
	}

	if *exprFlag != "" {
		if *dumpFlag {
			runDump(*exprFlag)
			return
		}
		runOneShot(*exprFlag, mode)
		return
	}

	args := flag.Args()
	if len(args) > 0 {
		path := args[0]
		if path == "run" && len(args) > 1 {
			path = args[1]
		}
		runFile(path, mode)
		return
	}

	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdout, mode)
}

func runOneShot(expr string, mode exath.AngleMode) {
	v, err := exath.Evaluate(expr, mode)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[%s] %s\n", err.Kind, err.Message)
		os.Exit(1)
	}
	yellowColor.Printf("%v\n", v)
}

// runDump parses expr and prints its AST instead of evaluating it, for
// inspecting how the parser resolved precedence and implicit
// multiplication on a given input.
func runDump(expr string) {
	node, err := exath.Parse(expr)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[%s] %s\n", err.Kind, err.Message)
		os.Exit(1)
	}
	fmt.Print(ast.Dump(node))
}

func runFile(path string, mode exath.AngleMode) {
	f, err := os.Open(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	sess := exath.NewSession(mode)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		src := strings.TrimSpace(scanner.Text())
		if src == "" || strings.HasPrefix(src, "#") {
			continue
		}
		v, err := sess.Eval(src)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s:%d: [%s] %s\n", path, lineNo, err.Kind, err.Message)
			os.Exit(1)
		}
		fmt.Println(v)
	}
	if err := scanner.Err(); err != nil {
		redColor.Fprintf(os.Stderr, "error reading %q: %v\n", path, err)
		os.Exit(1)
	}
}
