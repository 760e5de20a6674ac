// Package storage mirrors the in-memory collections to one JSON snapshot
// file per collection. The store is the system of record; snapshots only
// exist so state survives a restart. Writes are best-effort: failures are
// logged and swallowed, never surfaced to the caller.
package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Collection snapshot names, one file per collection.
const (
	KeyStudents        = "students"
	KeyEvents          = "events"
	KeyAccommodations  = "accommodations"
	KeyRegistrations   = "registrations"
	KeyBookings        = "bookings"
	KeyAnnouncements   = "announcements"
	KeyDeletedStudents = "deleted_students"
)

var allKeys = []string{
	KeyStudents,
	KeyEvents,
	KeyAccommodations,
	KeyRegistrations,
	KeyBookings,
	KeyAnnouncements,
	KeyDeletedStudents,
}

// Snapshots reads and writes collection snapshots under a data directory.
type Snapshots struct {
	dir string
}

// New creates the data directory if needed and returns a snapshot mirror.
func New(dir string) (*Snapshots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Snapshots{dir: dir}, nil
}

// Dir returns the data directory backing the mirror.
func (s *Snapshots) Dir() string {
	return s.dir
}

// Save serializes v and atomically replaces the named snapshot.
// Errors are logged and discarded.
func (s *Snapshots) Save(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to serialize snapshot", "collection", name, "error", err)
		return
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		slog.Error("Failed to create snapshot temp file", "collection", name, "error", err)
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		slog.Error("Failed to write snapshot", "collection", name, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		slog.Error("Failed to close snapshot temp file", "collection", name, "error", err)
		return
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		slog.Error("Failed to replace snapshot", "collection", name, "error", err)
	}
}

// Purge removes the named collection snapshots from the data directory,
// or every snapshot when no names are given.
func (s *Snapshots) Purge(names ...string) {
	if len(names) == 0 {
		names = allKeys
	}
	for _, name := range names {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
			slog.Error("Failed to remove snapshot", "collection", name, "error", err)
		}
	}
}

func (s *Snapshots) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// LoadCollection reads the named snapshot into a slice, falling back to the
// seed when the file is missing or corrupt.
func LoadCollection[T any](s *Snapshots, name string, seed []T) []T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to read snapshot", "collection", name, "error", err)
		}
		return seed
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Error("Corrupt snapshot, using seed data", "collection", name, "error", err)
		return seed
	}
	if out == nil {
		out = []T{}
	}
	return out
}
