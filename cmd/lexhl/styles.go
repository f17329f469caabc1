package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStylesCmd(start startFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List available styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active := s.engine.Style()
			for _, name := range s.engine.Styles() {
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
