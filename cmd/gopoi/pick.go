package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/analysis"
	"github.com/philipparndt/gopoi/pkg/overlay"
)

func newPickCmd() *cobra.Command {
	var (
		opts viewOptions
		out  string
	)

	cmd := &cobra.Command{
		Use:   "pick [file] [x,y | undo]...",
		Short: "Fit points of interest from scripted clicks",
		Long: `Replay clicks (x,y in pixels, origin top-left) and undo tokens against the
point fitting tool, then print the picked points with their labels.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := tool.ParseEvents(args[1:])
			if err != nil {
				return err
			}
			s, err := opts.session(cmd, args[0])
			if err != nil {
				return err
			}

			s.Replay(events)
			img, result, err := s.Render()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Picked Points")
			fmt.Fprintln(w, "=============")
			segments := analysis.Segments(result.Points)
			for i, p := range result.Points {
				name := "-"
				if i < len(result.Labels) {
					name = result.Labels[i]
				}
				fmt.Fprintf(w, "%3d %-16s %s", i+1, name, analysis.FormatVector(p))
				if i > 0 {
					fmt.Fprintf(w, "  +%.6f", segments[i])
				}
				fmt.Fprintln(w)
			}
			if result.HasLabel {
				fmt.Fprintf(w, "\nNext: %s\n", result.NextLabel)
			}

			if out != "" {
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
