package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	r := &runner{out: &buf}
	if err := r.run(strings.NewReader("2 * 10;\nval;\n(2 + 3) * 4;\n")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("20\n1009\n20\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunError(t *testing.T) {
	var buf bytes.Buffer
	r := &runner{out: &buf}
	err := r.run(strings.NewReader("1;\n4 / 0;\n"))
	if err == nil {
		t.Fatal("want error")
	}
	if buf.Len() != 0 {
		t.Errorf("want no output but got %q", buf.String())
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	r := &runner{out: &buf}
	failed := r.runDemo([]string{"2 * 10;", "4 / 0;", "2 ^ 3;"})
	if failed != 1 {
		t.Errorf("want 1 failure but got %d", failed)
	}
	want := "Testing 2 * 10;\n" +
		"  Result: 20\n" +
		"Testing 4 / 0;\n" +
		"  Error: arithmetic error: /: division by zero\n" +
		"Testing 2 ^ 3;\n" +
		"  Result: 8\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestREPL(t *testing.T) {
	var buf bytes.Buffer
	r := &runner{out: &buf}
	r.repl(strings.NewReader("1 + 2\n\n1 +;\n--3;\n"))
	want := "> 3\n" +
		"> " +
		`> syntax error at 3: unexpected SEMI(";"), expected expression` + "\n" +
		"> 3\n" +
		"> "
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
