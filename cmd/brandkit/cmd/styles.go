package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/spf13/cobra"
)

var (
	stylesPrimary   bool
	stylesSecondary bool
	stylesUsage     string
	stylesJSON      bool
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the shared style table",
	Long:  "Lists style records in table order. Filter by category or search the usage text.",
	RunE:  runStyles,
}

func init() {
	stylesCmd.Flags().BoolVar(&stylesPrimary, "primary", false, "Only primary-category styles")
	stylesCmd.Flags().BoolVar(&stylesSecondary, "secondary", false, "Only secondary-category styles")
	stylesCmd.Flags().StringVar(&stylesUsage, "usage", "", "First style whose usage text contains this substring")
	stylesCmd.Flags().BoolVar(&stylesJSON, "json", false, "Output as JSON")
}

func runStyles(cmd *cobra.Command, args []string) error {
	if stylesPrimary && stylesSecondary {
		return fmt.Errorf("--primary and --secondary are mutually exclusive")
	}

	if stylesUsage != "" {
		s, ok := styles.ByUsage(stylesUsage)
		if !ok {
			return fmt.Errorf("no style usage matches %q", stylesUsage)
		}
		return printStyles([]styles.Keyed{s})
	}

	var list []styles.Keyed
	switch {
	case stylesPrimary:
		list = styles.Primary()
	case stylesSecondary:
		list = styles.Secondary()
	default:
		for _, key := range styles.Keys() {
			s, _ := styles.Get(key)
			list = append(list, styles.Keyed{Key: key, Style: s})
		}
	}
	return printStyles(list)
}

func printStyles(list []styles.Keyed) error {
	if stylesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	fmt.Print(formatStyleRows(list))
	return nil
}
