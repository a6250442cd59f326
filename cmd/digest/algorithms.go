package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bamsammich/digest/internal/digest"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, a := range digest.Algorithms() {
				if _, err := fmt.Fprintf(out, "%-12s %d bits\n", a, a.Size()*8); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
