package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/pkg/overlay"
)

func newRenderCmd() *cobra.Command {
	var (
		opts viewOptions
		out  string
		fhp  string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a model and its first-hit-point buffer to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd, args[0])
			if err != nil {
				return err
			}
			frame := s.Frame()

			if err := overlay.SavePNG(frame.Image, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Image: %s\n", out)

			if fhp != "" {
				if err := overlay.SavePNG(frame.HitPoints.Image(), fhp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Hit points: %s\n", fhp)
			}

			w, h := frame.HitPoints.Size()
			fmt.Fprintf(cmd.OutOrStdout(), "Coverage: %d of %d pixels\n", frame.HitPoints.Coverage(), w*h)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "view.png", "shaded image output")
	cmd.Flags().StringVar(&fhp, "fhp", "", "hit-point buffer output (false colour)")
	return cmd
}
