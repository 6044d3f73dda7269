package main

import (
	"fmt"

	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/spf13/cobra"
)

var updateYesFlag bool

var updateCmd = &cobra.Command{
	Use:   "update <theme>",
	Short: "Update a theme by reinstalling it",
	Long: `Reinstall an inactive theme from the repository recorded in its theme.ini.

Any local modifications to the theme's files are lost.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		m, err := openManager()
		if err != nil {
			return err
		}

		if m.State(name) != themes.Inactive {
			return fmt.Errorf("%w: %s", themes.ErrThemeNotInstalled, name)
		}

		if !updateYesFlag {
			ok, err := confirm("Update "+name+"?", "Local modifications to the theme will be lost.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		ctx, cancel, err := fetchContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		installed, err := m.Update(ctx, name)
		if installed != "" {
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Updated theme: "+installed))
		}
		return err
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateYesFlag, "yes", "y", false, "Do not ask for confirmation")
}
