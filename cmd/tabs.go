package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTabsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the tabs of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active := a.host.ActiveTabID()
			for _, tab := range a.host.Tabs().Tabs() {
				marker := " "
				if tab.ID == active {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %s\t%s\t%s\n", marker, tab.ID, a.titles.Tab(tab), tab.InitialRoute); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
