package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List registered instrument scorers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range scoring.Instruments() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}
