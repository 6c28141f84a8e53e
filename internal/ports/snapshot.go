// Package ports defines the interfaces (contracts) that adapters must
// implement. Domain logic and the CLI depend only on these interfaces,
// never on concrete implementations.
package ports

import "time"

// SnapshotInfo describes one archived registry export.
type SnapshotInfo struct {
	ID     string    `json:"id"`
	Format string    `json:"format"`
	Taken  time.Time `json:"taken"`
	Size   int       `json:"size"`
}

// SnapshotStore archives exported registry documents so build tooling can
// diff what the generator consumed across releases.
//
// Saves must be transactional: a crash mid-write must not corrupt
// previously committed snapshots.
type SnapshotStore interface {
	// Save archives one exported document and returns its snapshot ID.
	Save(format string, doc []byte) (string, error)

	// List returns metadata for every snapshot, newest first.
	List() ([]SnapshotInfo, error)

	// Load retrieves the document for a snapshot ID.
	// Unknown IDs are an error.
	Load(id string) ([]byte, error)

	// Close releases the underlying store.
	Close() error
}
