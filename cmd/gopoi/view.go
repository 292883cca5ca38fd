package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/internal/app"
)

func newViewCmd() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open the interactive viewer",
		Long: `Open a window showing the model. In fitting mode a tap picks a point; in
measure mode a drag measures the surface distance. A secondary tap undoes.
The label list is reloaded whenever it changes on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), args[0], cfg)
		},
	}

	opts.register(cmd)
	return cmd
}
