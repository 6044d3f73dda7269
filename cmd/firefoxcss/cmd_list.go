package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		names, err := m.List()
		if err != nil {
			return err
		}
		cur, err := m.Current()
		if err != nil {
			return err
		}

		if len(names) == 0 && cur == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No themes installed.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Installed themes:")
		if cur != nil {
			fmt.Fprintln(cmd.OutOrStdout(), activeStyle.Render("* "+cur.Name+" (active)"))
		}
		for _, n := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", n)
		}
		return nil
	},
}
