package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate [theme]",
	Short: "Activate a theme, deactivating the current one",
	Long: `Move an installed theme into the profile's chrome folder.

The currently active theme, if any, is deactivated first. Without a theme
argument an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			names, err := m.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No inactive themes installed."))
				return nil
			}
			name, err = pickTheme("Activate which theme?", names)
			if err != nil {
				return fmt.Errorf("requires a theme name: %w", err)
			}
		}

		a, err := m.Activate(name)
		if err != nil {
			return err
		}
		if a == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Theme is not installed: "+name))
			return nil
		}

		if a.Previous != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Deactivated theme: %s\n", a.Previous)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No theme to deactivate beforehand"))
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("New theme applied: "+a.Theme))
		fmt.Fprintln(cmd.OutOrStdout(), "Restart Firefox for changes to take effect")
		return nil
	},
}
