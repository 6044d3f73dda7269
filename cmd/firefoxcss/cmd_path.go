package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [theme]",
	Short: "Print the directory of a theme, or of the active one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		p, ok := m.Path(name)
		if !ok {
			if name == "" {
				return fmt.Errorf("no active theme")
			}
			return fmt.Errorf("theme is not installed: %s", name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}
