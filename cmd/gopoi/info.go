package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/pkg/analysis"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/raster"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display general information about a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mesh.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}
			s := analysis.Summarize(m)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Model Information")
			fmt.Fprintln(w, "=================")
			if s.Name != "" {
				fmt.Fprintf(w, "Name: %s\n", s.Name)
			}
			fmt.Fprintf(w, "File: %s\n\n", args[0])

			fmt.Fprintf(w, "Triangles: %d\n", s.TriangleCount)
			fmt.Fprintf(w, "Surface Area: %.6f square units\n", s.SurfaceArea)
			if m.IsEmpty() {
				return nil
			}

			fmt.Fprintf(w, "\nBounding Box:\n")
			fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(s.Bounds.Min))
			fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(s.Bounds.Max))
			fmt.Fprintf(w, "  Size: %s\n", analysis.FormatVector(s.Dimensions))

			vol := raster.NewVolume(s.Bounds)
			fmt.Fprintf(w, "\nReference Volume:\n")
			fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(vol.Bounds.Min))
			fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(vol.Bounds.Max))

			fmt.Fprintf(w, "\nEdge Lengths:\n")
			fmt.Fprintf(w, "  Minimum: %.6f units\n", s.MinEdgeLength)
			fmt.Fprintf(w, "  Maximum: %.6f units\n", s.MaxEdgeLength)
			fmt.Fprintf(w, "  Average: %.6f units\n", s.AvgEdgeLength)
			return nil
		},
	}
}
