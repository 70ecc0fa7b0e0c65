package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

var (
	demo    = flag.Bool("demo", false, "run the bundled demo inputs")
	tree    = flag.Bool("tree", false, "print the parse tree before evaluating")
	verbose = flag.Bool("v", false, "trace evaluation to stderr")
)

type runner struct {
	ev   gocalc.Evaluator
	out  io.Writer
	tree bool
}

// run evaluates a whole program and prints one result per statement.
func (r *runner) run(in io.Reader) error {
	prog, err := gocalc.NewParser(in).Parse()
	if err != nil {
		return err
	}
	if r.tree {
		fmt.Fprintln(r.out, repr.String(prog, repr.Indent("  ")))
	}
	results, err := r.ev.EvaluateAll(prog)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, gocalc.FormatResults(results))
	return err
}

// runDemo evaluates each input independently. A failed input is reported
// and does not stop the others.
func (r *runner) runDemo(inputs []string) int {
	failed := 0
	for _, s := range inputs {
		fmt.Fprintf(r.out, "Testing %s\n", s)
		prog, err := gocalc.ParseString(s)
		if err == nil && r.tree {
			fmt.Fprintf(r.out, "  Tree: %v\n", prog)
		}
		var v int
		if err == nil {
			v, err = r.ev.Evaluate(prog)
		}
		if err != nil {
			fmt.Fprintf(r.out, "  Error: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(r.out, "  Result: %d\n", v)
	}
	return failed
}

func (r *runner) repl(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, ";") {
			line += ";"
		}
		if err := r.run(strings.NewReader(line)); err != nil {
			fmt.Fprintln(r.out, err)
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	r := &runner{out: os.Stdout, tree: *tree}
	if *verbose {
		r.ev.Logger = log.New(os.Stderr, "gocalc: ", 0)
	}

	if *demo {
		inputs, err := gocalc.DemoInputs()
		if err != nil {
			log.Fatal(err)
		}
		if r.runDemo(inputs) > 0 {
			os.Exit(1)
		}
		return
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			r.repl(os.Stdin)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if err := r.run(f); err != nil {
		log.Fatal(err)
	}
}
