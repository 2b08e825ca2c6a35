package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewCoinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coins",
		Short: "List known coins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSHORTCUT\tSLIP44\tTREZOR1\tTREZOR2")
			for _, c := range r.All() {
				t1, t2 := "-", "-"
				if c.Support != nil {
					if c.Support.Trezor1 != "" {
						t1 = c.Support.Trezor1
					}
					if c.Support.Trezor2 != "" {
						t2 = c.Support.Trezor2
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", c.Name, c.Shortcut, c.Slip44, t1, t2)
			}
			return w.Flush()
		},
	}
}
