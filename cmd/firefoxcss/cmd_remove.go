package main

import (
	"fmt"

	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/spf13/cobra"
)

var removeYesFlag bool

var removeCmd = &cobra.Command{
	Use:   "remove <theme>",
	Short: "Uninstall an inactive theme",
	Long: `Delete an inactive theme's directory from the profile.

The active theme cannot be removed; deactivate it first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		m, err := openManager()
		if err != nil {
			return err
		}
		if m.State(name) != themes.Inactive {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No theme to remove: "+name))
			return nil
		}

		if !removeYesFlag {
			ok, err := confirm("Remove "+name+"?", m.ThemePath(name)+" will be deleted.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		path, ok, err := m.Remove(name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No theme to remove: "+name))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Removed theme from path: "+path))
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYesFlag, "yes", "y", false, "Do not ask for confirmation")
}
