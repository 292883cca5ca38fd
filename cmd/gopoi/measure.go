package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/analysis"
	"github.com/philipparndt/gopoi/pkg/overlay"
)

func newMeasureCmd() *cobra.Command {
	var (
		opts viewOptions
		out  string
	)

	cmd := &cobra.Command{
		Use:   "measure [file] [x,y] [x,y]...",
		Short: "Measure the surface distance along a scripted drag",
		Long: `Press at the first coordinate, drag through the remaining ones and release.
The surface distance is integrated along the screen line between the press
position and the last position that hit the surface.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]image.Point, 0, len(args)-1)
			for _, arg := range args[1:] {
				p, err := tool.ParsePoint(arg)
				if err != nil {
					return err
				}
				points = append(points, p)
			}

			s, err := opts.session(cmd, args[0])
			if err != nil {
				return err
			}

			ok, err := s.Drag(points)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("gesture did not start on the surface at %d,%d", points[0].X, points[0].Y)
			}

			m, _ := s.Measurement()
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Surface Measurement")
			fmt.Fprintln(w, "===================")
			fmt.Fprintf(w, "Start (buffer): %s\n", m.Start)
			fmt.Fprintf(w, "End (buffer): %s\n", m.End)
			fmt.Fprintf(w, "Distance: %s\n", s.DistanceText())
			fmt.Fprintf(w, "  Along X: %.6f\n", m.DistX)
			fmt.Fprintf(w, "  Along Y: %.6f\n", m.DistY)
			fmt.Fprintf(w, "  Axis: %s\n", m.Axis)
			fmt.Fprintf(w, "Path samples: %d\n", len(m.Path()))
			if path := m.Path(); len(path) > 1 {
				fmt.Fprintf(w, "Chord: %.6f\n", path[0].Distance(path[len(path)-1]))
				fmt.Fprintf(w, "Path polyline: %.6f\n", analysis.PathLength(path))
			}

			if out != "" {
				img, _, err := s.Render()
				if err != nil {
					return err
				}
				if err := overlay.SavePNG(img, out); err != nil {
					return err
				}
				fmt.Fprintf(w, "Image: %s\n", out)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "annotated image output")
	return cmd
}
