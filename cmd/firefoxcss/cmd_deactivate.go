package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		name, ok, err := m.Deactivate()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No active theme to deactivate"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Deactivated theme: "+name))
		return nil
	},
}
