package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	doc := []byte(`{"registry":"demo"}`)
	id, err := store.Save("json", doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLoad_UnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("csv", []byte("Key\tName\n"))
	require.NoError(t, err)

	_, err = store.Load("2020-01-01T00:00:00Z:json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("anything")
	require.Error(t, err)
}

func TestList_NewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	_, err := store.Save("json", []byte("first"))
	require.NoError(t, err)
	_, err = store.Save("csv", []byte("second"))
	require.NoError(t, err)
	_, err = store.Save("md", []byte("third"))
	require.NoError(t, err)

	infos, err := store.List()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, "md", infos[0].Format)
	assert.Equal(t, "csv", infos[1].Format)
	assert.Equal(t, "json", infos[2].Format)
	assert.True(t, infos[0].Taken.After(infos[1].Taken))
	assert.Equal(t, len("second"), infos[1].Size)
}

func TestList_SubsecondSnapshotsKeepNewestFirst(t *testing.T) {
	store := newTestStore(t)

	// Fractional seconds of different magnitudes must still order
	// chronologically: .5 is older than .52 even though "5Z" sorts
	// after "52" byte-wise in a trimmed encoding.
	times := []time.Time{
		time.Date(2026, 8, 27, 12, 0, 0, 500000000, time.UTC),
		time.Date(2026, 8, 27, 12, 0, 0, 520000000, time.UTC),
	}
	i := 0
	store.now = func() time.Time {
		tt := times[i]
		i++
		return tt
	}

	_, err := store.Save("json", []byte("older"))
	require.NoError(t, err)
	_, err = store.Save("csv", []byte("newer"))
	require.NoError(t, err)

	infos, err := store.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "csv", infos[0].Format)
	assert.Equal(t, "json", infos[1].Format)
	assert.True(t, infos[0].Taken.After(infos[1].Taken))
}

func TestList_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	infos, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSnapshotID_RoundTrip(t *testing.T) {
	taken := time.Date(2026, 8, 27, 9, 30, 0, 123456789, time.UTC)
	id := snapshotID(taken, "json")

	gotTime, gotFormat, err := parseID(id)
	require.NoError(t, err)
	assert.True(t, taken.Equal(gotTime))
	assert.Equal(t, "json", gotFormat)
}

func TestParseID_Malformed(t *testing.T) {
	_, _, err := parseID("garbage")
	require.Error(t, err)
}
