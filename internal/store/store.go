// Package store persists the application state as a YAML snapshot and
// manages timestamped backups of it.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"rentfolio/internal/logging"
	"rentfolio/internal/state"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SnapshotStore manages loading and saving of the application state.
type SnapshotStore struct {
	// Dir is the data directory; SnapshotFile is resolved inside it
	// unless absolute.
	Dir          string
	SnapshotFile string
	BackupKeep   int
}

// NewSnapshotStore creates a store rooted at dir. keep bounds how many
// backups Backup retains; values below 1 fall back to 10.
func NewSnapshotStore(dir, snapshotFile string, keep int) *SnapshotStore {
	if keep < 1 {
		keep = 10
	}
	return &SnapshotStore{Dir: dir, SnapshotFile: snapshotFile, BackupKeep: keep}
}

// path resolves the snapshot file location.
func (s *SnapshotStore) path() string {
	if filepath.IsAbs(s.SnapshotFile) {
		return s.SnapshotFile
	}
	return filepath.Join(s.Dir, s.SnapshotFile)
}

// Load reads the snapshot. A missing file yields an empty state, not an
// error, so a fresh installation starts clean.
func (s *SnapshotStore) Load() (*state.AppState, error) {
	filePath := s.path()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Snapshot file not found, starting empty",
				logging.Field{Key: logging.FieldFile, Value: filePath})
			return &state.AppState{}, nil
		}
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var st state.AppState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("error parsing snapshot file: %w", err)
	}

	log.Debug("Loaded snapshot",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(st.Transactions)})
	return &st, nil
}

// Save writes the snapshot, creating the data directory as needed.
func (s *SnapshotStore) Save(st *state.AppState) error {
	filePath := s.path()

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing snapshot file: %w", err)
	}

	log.Debug("Saved snapshot",
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil
}

// Backup copies the current snapshot into the backups directory under a
// timestamped name and prunes old backups beyond BackupKeep.
func (s *SnapshotStore) Backup() (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("nothing to back up: %s", s.path())
		}
		return "", fmt.Errorf("error reading snapshot for backup: %w", err)
	}

	backupDir := filepath.Join(s.Dir, "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("error creating backup directory: %w", err)
	}

	name := fmt.Sprintf("snapshot-%s.yaml", time.Now().Format("20060102-150405"))
	backupPath := filepath.Join(backupDir, name)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("error writing backup: %w", err)
	}

	if err := s.pruneBackups(backupDir); err != nil {
		log.WithError(err).Warn("Failed to prune old backups")
	}

	log.Info("Backup written",
		logging.Field{Key: logging.FieldFile, Value: backupPath})
	return backupPath, nil
}

// pruneBackups removes the oldest backups beyond BackupKeep. Names embed
// a sortable timestamp, so lexical order is chronological order.
func (s *SnapshotStore) pruneBackups(backupDir string) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return fmt.Errorf("error listing backups: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".yaml" {
			names = append(names, e.Name())
		}
	}
	if len(names) <= s.BackupKeep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.BackupKeep] {
		if err := os.Remove(filepath.Join(backupDir, name)); err != nil {
			return fmt.Errorf("error removing old backup %s: %w", name, err)
		}
	}
	return nil
}
