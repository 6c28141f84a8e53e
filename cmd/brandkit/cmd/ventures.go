package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/spf13/cobra"
)

var (
	venturesActive   bool
	venturesPipeline bool
	venturesJSON     bool
)

var venturesCmd = &cobra.Command{
	Use:   "ventures",
	Short: "List ventures with their styles",
	Long:  "Lists the joined venture registry. Default order is active before pipeline, names collated within each group.",
	RunE:  runVentures,
}

func init() {
	venturesCmd.Flags().BoolVar(&venturesActive, "active", false, "Only active ventures")
	venturesCmd.Flags().BoolVar(&venturesPipeline, "pipeline", false, "Only pipeline ventures")
	venturesCmd.Flags().BoolVar(&venturesJSON, "json", false, "Output as JSON")
}

func runVentures(cmd *cobra.Command, args []string) error {
	if venturesActive && venturesPipeline {
		return fmt.Errorf("--active and --pipeline are mutually exclusive")
	}

	var list []registry.Branded
	switch {
	case venturesActive:
		list = registry.Active()
	case venturesPipeline:
		list = registry.Pipeline()
	default:
		list = registry.All()
	}

	if venturesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	fmt.Print(formatVentureRows(list))
	return nil
}
