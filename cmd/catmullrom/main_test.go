package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"honnef.co/go/catmullrom"
)

const linePath = `
samples: 2
points:
  - [0, 0, 0]
  - [1, 0, 0]
  - [2, 0, 0]
  - [3, 0, 0]
  - [4, 0, 0]
`

func writePath(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "path.yaml")
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func decodeJSON(t *testing.T, s string) [][3]float64 {
	t.Helper()
	var doc output
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("decoding output %q: %s", s, err)
	}
	return doc.Points
}

func TestGenerateFromFile(t *testing.T) {
	out, err := execute(t, "", "generate", writePath(t, linePath))
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]float64{{1, 0, 0}, {1.5, 0, 0}, {2, 0, 0}, {2.5, 0, 0}, {3, 0, 0}}
	if d := cmp.Diff(want, decodeJSON(t, out)); d != "" {
		t.Error(d)
	}
}

func TestGenerateSamplesFlag(t *testing.T) {
	out, err := execute(t, "", "generate", "-n", "4", writePath(t, linePath))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(decodeJSON(t, out)), 4*2+1; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}

	out, err = execute(t, "", "generate", "-n", "0", writePath(t, linePath))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([][3]float64{{3, 0, 0}}, decodeJSON(t, out)); d != "" {
		t.Error(d)
	}
}

func TestGenerateDefaultSamples(t *testing.T) {
	const path = `{"points": [[0, 0, 0], [1, 1, 1], [2, 2, 2], [3, 3, 3]]}`
	out, err := execute(t, path, "generate", "-")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(decodeJSON(t, out)), defaultSamples+1; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
}

func TestGenerateZeroSamplesInFile(t *testing.T) {
	const path = "samples: 0\npoints: [[0, 0, 0], [1, 0, 0], [2, 0, 0], [3, 0, 0]]"
	out, err := execute(t, path, "generate", "-")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([][3]float64{{2, 0, 0}}, decodeJSON(t, out)); d != "" {
		t.Error(d)
	}

	// The flag still wins over the file.
	out, err = execute(t, path, "generate", "-n", "2", "-")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(decodeJSON(t, out)), 3; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
}

func TestGenerateYAML(t *testing.T) {
	out, err := execute(t, linePath, "generate", "-f", "yaml", "-")
	if err != nil {
		t.Fatal(err)
	}
	var doc output
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decoding output %q: %s", out, err)
	}
	if len(doc.Points) != 5 {
		t.Errorf("got %d points, want 5", len(doc.Points))
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "points: [[0, 0, 0], [1, 0, 0], [2, 0, 0]]", "generate", "-")
	if !errors.Is(err, catmullrom.ErrInvalidInput) {
		t.Errorf("got error %v, want %v", err, catmullrom.ErrInvalidInput)
	}

	_, err = execute(t, "", "generate", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, os.ErrNotExist)
	}

	for _, in := range []string{
		"points: [[0, 0], [1, 0], [2, 0], [3, 0]]",
		"points: {x: 1}",
		"samples: -3\npoints: [[0, 0, 0], [1, 0, 0], [2, 0, 0], [3, 0, 0]]",
	} {
		if _, err := execute(t, in, "generate", "-"); err == nil {
			t.Errorf("expected error for path file %q", in)
		}
	}

	if _, err := execute(t, linePath, "generate", "-f", "xml", "-"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := execute(t, linePath, "generate", "-n=-1", "-"); !errors.Is(err, catmullrom.ErrInvalidInput) {
		t.Errorf("got error %v, want %v", err, catmullrom.ErrInvalidInput)
	}
}

func TestEval(t *testing.T) {
	out, err := execute(t, linePath, "eval", "-t", "0.5", "-")
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]float64{{1.5, 0, 0}, {2.5, 0, 0}}
	if d := cmp.Diff(want, decodeJSON(t, out)); d != "" {
		t.Error(d)
	}

	out, err = execute(t, linePath, "eval", "--tangent", "-")
	if err != nil {
		t.Fatal(err)
	}
	want = [][3]float64{{1, 0, 0}, {1, 0, 0}}
	if d := cmp.Diff(want, decodeJSON(t, out)); d != "" {
		t.Error(d)
	}

	if _, err := execute(t, "points: [[0, 0, 0]]", "eval", "-"); !errors.Is(err, catmullrom.ErrInvalidInput) {
		t.Errorf("got error %v, want %v", err, catmullrom.ErrInvalidInput)
	}
}
