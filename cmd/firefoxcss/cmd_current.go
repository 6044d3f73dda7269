package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active theme's metadata as JSON, or null",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		cur, err := m.Current()
		if err != nil {
			return err
		}
		data, err := json.Marshal(cur)
		if err != nil {
			return fmt.Errorf("encoding current theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current theme: %s\n", data)
		return nil
	},
}
