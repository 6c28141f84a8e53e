package cmd

import (
	"fmt"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/holdco/brandkit/internal/domain/ventures"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify table integrity",
	Long:  "Verifies that every venture's style reference resolves and that all status and category tags are well-formed.",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := registry.Verify(); err != nil {
		return fmt.Errorf("registry check failed:\n%w", err)
	}
	fmt.Printf("✓ %d ventures, %d styles, all references resolve\n",
		len(ventures.Keys()), len(styles.Keys()))
	return nil
}
