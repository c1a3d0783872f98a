// Package main implements the Quill front-end driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/quill-lang/quill/internal/syntax"
)

// Driver flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output expression tree")
	astFormat  = flag.String("ast-format", "text", "Tree output format (text or json)")
	trace      = flag.Bool("trace", false, "Output timing trace")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quill %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: quillc [options] <file.quill>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("quillc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: quillc [options] <file.quill>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	os.Exit(runCheck(filename))
}

// phase prints the time spent since start when -trace is set.
func phase(name string, start time.Time) {
	if *trace {
		fmt.Fprintf(os.Stderr, "trace: %-6s %v\n", name, time.Since(start))
	}
}

// readSource loads filename, reporting failures on stderr.
func readSource(filename string) ([]byte, bool) {
	start := time.Now()
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, false
	}
	phase("read", start)
	return src, true
}

// runEmitTokens scans the input file and prints one line per token.
// It stops at the first error token.
func runEmitTokens(filename string) int {
	src, ok := readSource(filename)
	if !ok {
		return 1
	}

	start := time.Now()
	toks, err := syntax.ScanAll(syntax.NewScanner(filename, src, nil))
	defer toks.Free()
	phase("scan", start)

	for _, tok := range toks.Slice() {
		if tok.Kind.IsError() {
			break
		}
		fmt.Println(tok.String())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// parseFile parses the first expression of filename and prints its
// diagnostics. It returns a nil tree if the file cannot be read.
func parseFile(filename string) (syntax.Expr, *syntax.Parser) {
	src, ok := readSource(filename)
	if !ok {
		return nil, nil
	}

	start := time.Now()
	p := syntax.NewParser(filename, src, nil)
	x, err := p.Parse()
	phase("parse", start)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if n := p.Errors() - 1; n > 0 {
			fmt.Fprintf(os.Stderr, "%s: %s, %d more error(s)\n", filename, p.Status(), n)
		}
	}
	return x, p
}

// runEmitAST parses the input file and outputs the expression tree.
func runEmitAST(filename string) int {
	if *astFormat != "text" && *astFormat != "json" {
		fmt.Fprintf(os.Stderr, "error: unknown -ast-format %q (want text or json)\n", *astFormat)
		return 2
	}

	x, p := parseFile(filename)
	if p == nil {
		return 1
	}

	// Output tree
	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, x); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, x)
	}

	if p.Status() != syntax.StatusOK {
		return 1
	}
	return 0
}

// runCheck parses the input file and prints the compact form of the tree.
func runCheck(filename string) int {
	x, p := parseFile(filename)
	if p == nil {
		return 1
	}
	fmt.Println(syntax.ExprString(x))
	if p.Status() != syntax.StatusOK {
		return 1
	}
	return 0
}
