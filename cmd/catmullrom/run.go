package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/catmullrom"
)

// defaultSamples is used when neither the flag nor the path file sets a
// sample density.
const defaultSamples = 10

type outputOptions struct {
	samples    int
	samplesSet bool
	format     string
}

// output is the document written by both subcommands.
type output struct {
	Points [][3]float64 `json:"points" yaml:"points"`
}

func runGenerate(cmd *cobra.Command, name string, opts outputOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	pf, err := loadPath(name, cmd.InOrStdin())
	if err != nil {
		return err
	}

	samples := defaultSamples
	switch {
	case opts.samplesSet:
		samples = opts.samples
	case pf.Samples != nil:
		samples = *pf.Samples
	}

	pts, err := catmullrom.Generate(pf.spline(), samples)
	if err != nil {
		return fmt.Errorf("generating spline: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), opts.format, pts)
}

func runEval(cmd *cobra.Command, name string, t float64, tangent bool, opts outputOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	pf, err := loadPath(name, cmd.InOrStdin())
	if err != nil {
		return err
	}
	s := pf.spline()
	if len(s) < catmullrom.MinPoints {
		return fmt.Errorf("evaluating spline: %w: need at least %d control points, got %d",
			catmullrom.ErrInvalidInput, catmullrom.MinPoints, len(s))
	}

	var pts []catmullrom.Point
	for seg := range s.Segments() {
		if tangent {
			pts = append(pts, catmullrom.Point(seg.Deriv(t)))
		} else {
			pts = append(pts, seg.Eval(t))
		}
	}
	return writeOutput(cmd.OutOrStdout(), opts.format, pts)
}

func checkFormat(format string) error {
	if !slices.Contains([]string{"json", "yaml"}, format) {
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	return nil
}

func writeOutput(w io.Writer, format string, pts []catmullrom.Point) error {
	doc := output{Points: make([][3]float64, len(pts))}
	for i, pt := range pts {
		doc.Points[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("writing YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}
