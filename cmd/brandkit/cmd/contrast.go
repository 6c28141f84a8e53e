package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/spf13/cobra"
)

var (
	contrastStyle bool
	contrastJSON  bool
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <key>",
	Short: "Show stored contrast data",
	Long:  "Shows the stored WCAG contrast projection for a venture (default) or, with --style, for a style key directly.",
	Args:  cobra.ExactArgs(1),
	RunE:  runContrast,
}

func init() {
	contrastCmd.Flags().BoolVar(&contrastStyle, "style", false, "Treat the key as a style key")
	contrastCmd.Flags().BoolVar(&contrastJSON, "json", false, "Output as JSON")
}

func runContrast(cmd *cobra.Command, args []string) error {
	key := args[0]

	if contrastStyle {
		info, err := styles.ContrastFor(key)
		if err != nil {
			return err
		}
		if contrastJSON {
			return printJSON(info)
		}
		fmt.Printf("%s\n", headerStyle.Render(info.StyleName))
		fmt.Printf("  Ratio:     %s (%s)\n", info.Ratio, info.Standard)
		fmt.Printf("  Text:      %s\n", swatch(info.TextColor))
		return nil
	}

	info, err := registry.ContrastFor(key)
	if err != nil {
		return err
	}
	if contrastJSON {
		return printJSON(info)
	}
	fmt.Printf("%s\n", headerStyle.Render(info.StyleName))
	fmt.Printf("  Ratio:       %s (%s)\n", info.Ratio, info.Standard)
	fmt.Printf("  Foreground:  %s\n", swatch(info.Foreground))
	fmt.Printf("  Background:  %s\n", swatch(info.Background))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
