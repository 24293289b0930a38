// Command catmullrom samples Catmull-Rom splines through control points read
// from a path file.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "catmullrom",
		Short:        "Sample smooth Catmull-Rom curves through 3D control points",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(evalCmd())
	return rootCmd
}

func generateCmd() *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "generate [path-file]",
		Short: "Sample every segment of the path and print the resulting points",
		Long: `Sample every segment of the path and print the resulting points.

The path file is YAML (or JSON) with a list of [x, y, z] control points and an
optional number of samples per segment. Use "-" to read it from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.samplesSet = cmd.Flags().Changed("samples")
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.samples, "samples", "n", defaultSamples, "points per segment, overrides the path file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format (json or yaml)")
	return cmd
}

func evalCmd() *cobra.Command {
	var (
		opts    outputOptions
		t       float64
		tangent bool
	)

	cmd := &cobra.Command{
		Use:   "eval [path-file]",
		Short: "Evaluate every segment of the path at a single parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], t, tangent, opts)
		},
	}

	cmd.Flags().Float64VarP(&t, "param", "t", 0.5, "parameter within each segment, 0 is the segment's start")
	cmd.Flags().BoolVar(&tangent, "tangent", false, "print tangents instead of points")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format (json or yaml)")
	return cmd
}
