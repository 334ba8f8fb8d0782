package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X wealthflow/cmd.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wealthflow",
	Short: "WealthFlow landing page with simulated market pulse and AI concierge",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
