package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/catmullrom"
)

// pathFile is the on-disk description of a path. Samples is nil when the file
// doesn't set it.
type pathFile struct {
	Samples *int        `yaml:"samples"`
	Points  [][]float64 `yaml:"points"`
}

// loadPath reads a path file. A name of "-" reads from stdin.
func loadPath(name string, stdin io.Reader) (*pathFile, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading path file: %w", err)
	}
	return parsePath(data)
}

func parsePath(data []byte) (*pathFile, error) {
	var pf pathFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing path file: %w", err)
	}
	for i, p := range pf.Points {
		if len(p) != 3 {
			return nil, fmt.Errorf("parsing path file: point %d has %d coordinates, want 3", i, len(p))
		}
	}
	if pf.Samples != nil && *pf.Samples < 0 {
		return nil, fmt.Errorf("parsing path file: negative samples: %d", *pf.Samples)
	}
	return &pf, nil
}

func (pf *pathFile) spline() catmullrom.Spline {
	s := make(catmullrom.Spline, len(pf.Points))
	for i, p := range pf.Points {
		s[i] = catmullrom.Pt(p[0], p[1], p[2])
	}
	return s
}
