// Package bbolt implements ports.SnapshotStore using bbolt (embedded
// B+ tree). A single "snapshots" bucket holds one entry per archived
// export; writes are transactional, so a crash mid-write cannot corrupt
// previously committed snapshots.
package bbolt

import (
	"fmt"
	"strings"
	"time"

	"github.com/holdco/brandkit/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketSnapshots = []byte("snapshots")

// snapshotKeyFormat is RFC 3339 with fixed-width nanoseconds. RFC3339Nano
// trims trailing fractional zeros, which would break the lexicographic
// key ordering List's reverse cursor walk depends on (".5Z" would sort
// after ".52Z").
const snapshotKeyFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB

	// now is swapped in tests to pin snapshot IDs.
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// snapshotID encodes taken-time and format into the bucket key. The
// fixed-width timestamp makes keys sort lexicographically in
// chronological order, so bbolt cursors return them ascending and List
// walks them backwards for newest-first.
func snapshotID(taken time.Time, format string) string {
	return taken.UTC().Format(snapshotKeyFormat) + ":" + format
}

// parseID splits a bucket key back into taken-time and format.
func parseID(id string) (time.Time, string, error) {
	i := strings.LastIndex(id, ":")
	if i < 0 {
		return time.Time{}, "", fmt.Errorf("malformed snapshot id %q", id)
	}
	taken, err := time.Parse(time.RFC3339Nano, id[:i])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("malformed snapshot id %q: %w", id, err)
	}
	return taken, id[i+1:], nil
}

// Save archives one exported document and returns its snapshot ID.
func (s *Store) Save(format string, doc []byte) (string, error) {
	id := snapshotID(s.now(), format)
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), doc)
	})
	if err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return id, nil
}

// List returns metadata for every snapshot, newest first.
func (s *Store) List() ([]ports.SnapshotInfo, error) {
	var out []ports.SnapshotInfo
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			taken, format, err := parseID(string(k))
			if err != nil {
				return err
			}
			out = append(out, ports.SnapshotInfo{
				ID:     string(k),
				Format: format,
				Taken:  taken,
				Size:   len(v),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return out, nil
}

// Load retrieves the document for a snapshot ID.
func (s *Store) Load(id string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return fmt.Errorf("no snapshots")
		}
		v := b.Get([]byte(id))
		if v == nil {
			return fmt.Errorf("snapshot %q not found", id)
		}
		doc = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
