package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollectionMissingFileReturnsSeed(t *testing.T) {
	snap, err := New(t.TempDir())
	require.NoError(t, err)

	got := LoadCollection(snap, KeyStudents, SeedStudents())
	assert.Equal(t, SeedStudents(), got)
}

func TestLoadCollectionCorruptFileReturnsSeed(t *testing.T) {
	dir := t.TempDir()
	snap, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyEvents+".json"), []byte("{not json"), 0o644))

	got := LoadCollection(snap, KeyEvents, SeedEvents())
	assert.Equal(t, SeedEvents(), got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	snap, err := New(t.TempDir())
	require.NoError(t, err)

	events := []models.Event{
		{ID: 7, Name: "Badminton Open", Type: "sports", Fee: 200, Status: "active"},
	}
	snap.Save(KeyEvents, events)

	got := LoadCollection(snap, KeyEvents, []models.Event{})
	assert.Equal(t, events, got)
}

func TestLoadCollectionNullSnapshotYieldsEmptySlice(t *testing.T) {
	dir := t.TempDir()
	snap, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyBookings+".json"), []byte("null"), 0o644))

	got := LoadCollection(snap, KeyBookings, []models.AccommodationBooking{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPurgeRemovesNamedSnapshots(t *testing.T) {
	dir := t.TempDir()
	snap, err := New(dir)
	require.NoError(t, err)

	snap.Save(KeyStudents, SeedStudents())
	snap.Save(KeyDeletedStudents, []string{"gone@example.edu"})

	snap.Purge(KeyStudents)

	_, err = os.Stat(filepath.Join(dir, KeyStudents+".json"))
	assert.True(t, os.IsNotExist(err))

	// The denylist snapshot was not named, so it survives
	kept := LoadCollection(snap, KeyDeletedStudents, []string{})
	assert.Equal(t, []string{"gone@example.edu"}, kept)
}

func TestPurgeWithoutNamesRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	snap, err := New(dir)
	require.NoError(t, err)

	snap.Save(KeyStudents, SeedStudents())
	snap.Save(KeyEvents, SeedEvents())
	snap.Save(KeyDeletedStudents, []string{"gone@example.edu"})

	snap.Purge()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	snap, err := New(dir)
	require.NoError(t, err)

	snap.Save(KeyAnnouncements, []models.Announcement{{ID: 1, Title: "Welcome"}})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyAnnouncements+".json", entries[0].Name())
}
