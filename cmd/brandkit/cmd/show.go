package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/holdco/brandkit/internal/domain/ventures"
	"github.com/spf13/cobra"
)

var (
	showDomain string
	showJSON   bool
)

var showCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show one venture joined to its style",
	Long:  "Shows the full brand record for a venture, looked up by key or (with --domain) by exact domain match.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDomain, "domain", "", "Look up by exact domain instead of key")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	var b registry.Branded

	switch {
	case showDomain != "":
		if len(args) > 0 {
			return fmt.Errorf("pass a key or --domain, not both")
		}
		var ok bool
		b, ok = registry.ByDomain(showDomain)
		if !ok {
			return fmt.Errorf("no venture serves domain %q", showDomain)
		}
	case len(args) == 1:
		if !ventures.IsValidKey(args[0]) {
			return fmt.Errorf("unknown venture key %q (see: brandkit ventures)", args[0])
		}
		var err error
		b, err = registry.Resolve(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("venture key or --domain required")
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}

	fmt.Print(formatVentureCard(b))
	return nil
}
