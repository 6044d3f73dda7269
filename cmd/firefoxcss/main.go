package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	profileFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "firefoxcss",
	Short: "Install and manage Firefox userstyles",
	Long: `firefoxcss installs userChrome.css themes from git repositories into a
Firefox profile and switches between them.

The active theme lives in <profile>/chrome. Installed but inactive themes
are kept next to it as <profile>/chrome_<name>. Restart Firefox after
activating or deactivating a theme.

Examples:
  firefoxcss enable
  firefoxcss install https://github.com/muckSponge/MaterialFox
  firefoxcss activate MaterialFox`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Unknown command: "+args[0]))
		fmt.Fprintln(cmd.ErrOrStderr(), "Available commands:", strings.Join(availableCommands(cmd), ", "))
		fmt.Fprintln(cmd.ErrOrStderr(), "Show the help page with --help")
		return fmt.Errorf("unknown command %q", args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "firefoxcss %s\n", version)
	},
}

// availableCommands lists the user-facing subcommands of root.
func availableCommands(root *cobra.Command) []string {
	var names []string
	for _, c := range root.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Firefox profile directory (default: the default profile from profiles.ini)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(newCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
