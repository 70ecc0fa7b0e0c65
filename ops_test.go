package gocalc

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestOps runs every testdir/*.calc program. Its results must match the .out
// file next to it, or its error must match the .err file.
func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.calc")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test programs")
	}

	for _, fn := range fns {
		t.Log(fn)
		base := strings.TrimSuffix(fn, ".calc")
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}

		results, err := runProgram(string(b))
		if err != nil {
			want, err2 := ioutil.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(want)) {
				t.Errorf("%s: %v", fn, err)
			}
			continue
		}
		got := FormatResults(results)
		b, err = ioutil.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", fn, diff)
		}
	}
}

func runProgram(src string) ([]int, error) {
	prog, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return EvaluateAll(prog)
}
