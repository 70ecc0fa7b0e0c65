package gocalc

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestDemoInputs(t *testing.T) {
	inputs, err := DemoInputs()
	require.NoError(t, err)
	require.Equal(t, []string{"2 * 10;", "8 - 10;", "24 / 3;", "2 ^ 3;"}, inputs)

	var got []int
	for _, s := range inputs {
		v, err := Calc(s)
		require.NoError(t, err, s)
		got = append(got, v)
	}
	require.Equal(t, []int{20, -2, 8, 8}, got)
}

func TestLoadInputs(t *testing.T) {
	hfs := http.FS(fstest.MapFS{
		"b.calc":       {Data: []byte("2;\n\n# skipped\n3;\n")},
		"a.calc":       {Data: []byte("  1;  \n")},
		"notes.txt":    {Data: []byte("4;\n")},
		"sub/c.calc":   {Data: []byte("5;\n")},
		"sub/d/e.calc": {Data: []byte("6;")},
	})
	inputs, err := LoadInputs(hfs)
	require.NoError(t, err)
	require.Equal(t, []string{"1;", "2;", "3;", "5;", "6;"}, inputs)
}
