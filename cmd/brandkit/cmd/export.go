package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/holdco/brandkit/internal/adapters/bbolt"
	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportSave   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the joined registry",
	Long:  "Serializes the status-sorted venture+style registry as json, csv, or md. --save archives the document in the snapshot store.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json, csv, or md")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "Archive the export in the snapshot store")
}

func runExport(cmd *cobra.Command, args []string) error {
	doc, err := registry.Export(registry.Format(exportFormat))
	if err != nil {
		return err
	}

	if exportSave {
		store, err := openSnapshotStore()
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Save(exportFormat, []byte(doc))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved snapshot %s\n", id)
	}

	if exportOut != "" {
		return os.WriteFile(exportOut, []byte(doc), 0644)
	}
	fmt.Print(doc)
	return nil
}

// snapshotDBPath is shared by export --save and the snapshots command.
var snapshotDBPath string

// openSnapshotStore opens the bbolt store at --db, creating the parent
// directory on first use.
func openSnapshotStore() (*bbolt.Store, error) {
	if err := os.MkdirAll(filepath.Dir(snapshotDBPath), 0755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return bbolt.NewStore(snapshotDBPath)
}

func init() {
	for _, c := range []*cobra.Command{exportCmd, snapshotsCmd} {
		c.Flags().StringVar(&snapshotDBPath, "db", filepath.Join(".brandkit", "snapshots.db"), "Snapshot store path")
	}
}
