// testingx contains testing helpers meant to simplify unit testing. Most of
// the helpers are simple wrappers for other libraries functions with a few
// tweaks meant to simplify the unit tests:
// - they don't return an error and instead fail the test,
// - relative filepath are prefixed by testdata/,
// - resources like file handles are closed during test cleanup;
package testingx

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// updateGolden indicates tests to update their golden files with the
// expected output. This flag is controled by the -updategolden flag and will
// apply to every call to GoldenXXX, one is expected to use the -run flag to
// limit to specific tests.
var updateGolden bool

func init() {
	flag.BoolVar(&updateGolden, "updategolden", false, "update the golden files")
}

// Open the file at path and return the handle.
func Open(t *testing.T, path string) *os.File {
	t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(`testdata`, path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf(`opening file %q: %s`, path, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// ReadFile returns the content of the file at path. See ioutil.ReadFile.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(`testdata`, path)
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf(`reading file %q: %s`, path, err)
	}
	return raw
}

// WriteFile set the content of the file at path. See ioutil.WriteFile.
func WriteFile(t *testing.T, path string, raw []byte) {
	t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(`testdata`, path)
	}
	err := ioutil.WriteFile(path, raw, os.ModePerm)
	if err != nil {
		t.Fatalf(`writing file %q: %s`, path, err)
	}
}

// GoldenJSON keeps a JSON representation of out in the file at path
// (eventually updating it beforehand if the -updategolden flag was set on the
// command line), and parse it back into dest for comparison.
func GoldenJSON(t *testing.T, path string, out, dest interface{}) {
	t.Helper()
	if updateGolden {
		raw, err := json.MarshalIndent(out, "", "\t")
		if err != nil {
			t.Fatalf(`marshaling: %s`, err)
		}
		WriteFile(t, path, raw)
	}
	err := json.Unmarshal(ReadFile(t, path), dest)
	if err != nil {
		t.Fatalf(`unmarshaling: %s`, err)
	}
}
