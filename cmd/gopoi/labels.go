package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/pkg/labels"
)

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels [file]",
		Short: "Print a label list as the point fitting tool reads it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := labels.Load(args[0])
			if err != nil {
				return err
			}
			for i, label := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", i+1, label)
			}
			return nil
		},
	}
}
