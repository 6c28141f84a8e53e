package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "brandkit",
	Short:         "brandkit — brand registry for the venture portfolio",
	Long:          "Query venture and style records, check table integrity, and export the joined registry for the site generator.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(venturesCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(checkCmd)
}
