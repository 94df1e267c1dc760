package cmd

import (
	"fmt"
	"io"

	"layoutsyn/internal/layout"

	"github.com/spf13/cobra"
)

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the built-in keyboard layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printLayouts(cmd.OutOrStdout())
		},
	}
}

func printLayouts(w io.Writer) error {
	for _, l := range layout.All() {
		if _, err := fmt.Fprintln(w, l.Name()); err != nil {
			return err
		}
		for _, row := range l.Rows() {
			if _, err := fmt.Fprintf(w, "  %s\n", string(row)); err != nil {
				return err
			}
		}
	}
	return nil
}
