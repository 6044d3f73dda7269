package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name> [repo]",
	Short: "Create a new, empty theme",
	Long: `Scaffold an inactive theme with empty userChrome.css and userContent.css,
a theme.ini and a git repository. When repo is given it becomes the origin
remote, so the theme can later be updated from it.

Examples:
  firefoxcss new MyTheme
  firefoxcss new MyTheme https://github.com/me/MyTheme`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		repo := ""
		if len(args) == 2 {
			repo = args[1]
		}
		dir, err := m.Create(args[0], repo)
		if dir != "" {
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Created theme "+args[0]+" at "+dir))
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Activate it with `firefoxcss activate %s`\n", args[0])
		return nil
	},
}
