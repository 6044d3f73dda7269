package main

import (
	"errors"
	"fmt"

	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <url>",
	Short: "Install a theme from a git URL or local repository",
	Long: `Clone a theme repository into the profile as an inactive theme.

If the repository keeps its styles in a chrome/ subfolder, only that folder
is installed (together with a top-level user.js, if any).

Examples:
  firefoxcss install https://github.com/muckSponge/MaterialFox
  firefoxcss install ~/src/my-theme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		ctx, cancel, err := fetchContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		fmt.Fprintf(cmd.OutOrStdout(), "Cloning %s...\n", args[0])
		name, err := m.Install(ctx, args[0])
		if name == "" {
			if errors.Is(err, themes.ErrFetchFailed) {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("Make sure Git is installed and the repository is reachable"))
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Installed theme: "+name))
		if err != nil {
			// Installed, but something after the move failed.
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Activate it with `firefoxcss activate %s`\n", name)
		return nil
	},
}
