package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableForceFlag bool

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable custom userstyles for the profile",
	Long: `Write a user.js that lets Firefox load userChrome.css and userContent.css.

An existing user.js is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		written, err := m.Enable(enableForceFlag)
		if err != nil {
			return err
		}
		if !written {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("user.js file already exists, overwrite it with --force"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Custom userstyles enabled, a browser restart may be required"))
		return nil
	},
}

func init() {
	enableCmd.Flags().BoolVarP(&enableForceFlag, "force", "f", false, "Overwrite an existing user.js")
}
