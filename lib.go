package gocalc

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	statikfs "github.com/rakyll/statik/fs"
)

//go:embed demo
var demoFiles embed.FS

// DemoFS returns the bundled demo programs as an http.FileSystem.
func DemoFS() (http.FileSystem, error) {
	sub, err := fs.Sub(demoFiles, "demo")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}

// DemoInputs returns every bundled demo program. Each non-empty line of a
// .calc file is one program; lines starting with '#' are skipped.
func DemoInputs() ([]string, error) {
	hfs, err := DemoFS()
	if err != nil {
		return nil, err
	}
	return LoadInputs(hfs)
}

// LoadInputs collects programs from every .calc file in hfs, in path order.
func LoadInputs(hfs http.FileSystem) ([]string, error) {
	var names []string
	err := statikfs.Walk(hfs, "/", func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && filepath.Ext(path) == ".calc" {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var inputs []string
	for _, name := range names {
		b, err := statikfs.ReadFile(hfs, name)
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(bytes.NewReader(b))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return inputs, nil
}
