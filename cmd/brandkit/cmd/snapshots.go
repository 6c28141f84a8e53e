package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [id]",
	Short: "List or print archived exports",
	Long:  "Without arguments, lists archived registry exports newest first. With a snapshot ID, prints the stored document.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshots,
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(snapshotDBPath); err != nil {
		return fmt.Errorf("no snapshot store at %s (run: brandkit export --save)", snapshotDBPath)
	}

	store, err := openSnapshotStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		doc, err := store.Load(args[0])
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(doc)
		return err
	}

	infos, err := store.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no snapshots")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-6s %8d B  %s\n", info.Format, info.Size, info.ID)
	}
	return nil
}
