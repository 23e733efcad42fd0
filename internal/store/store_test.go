package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rentfolio/internal/models"
	"rentfolio/internal/state"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), "snapshot.yaml", 10)

	st, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Empty(t, st.Transactions)
	assert.Empty(t, st.Categories)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), "snapshot.yaml", 10)

	original := &state.AppState{
		Contacts: []models.Contact{
			{ID: "c1", Name: "Alice", Type: models.ContactOwner},
		},
		Properties: []models.Property{
			{ID: "p1", Name: "Unit 1", OwnerID: "c1"},
		},
		Transactions: []models.Transaction{
			{
				ID:     "t1",
				Date:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				Type:   models.TypeExpense,
				Amount: decimal.RequireFromString("123.45"),
			},
		},
	}
	require.NoError(t, s.Save(original))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "t1", loaded.Transactions[0].ID)
	assert.True(t, loaded.Transactions[0].Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "Alice", loaded.Contacts[0].Name)
	assert.Equal(t, "c1", loaded.Properties[0].OwnerID)
}

func TestSave_CreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewSnapshotStore(dir, "snapshot.yaml", 10)

	require.NoError(t, s.Save(&state.AppState{}))
	_, err := os.Stat(filepath.Join(dir, "snapshot.yaml"))
	assert.NoError(t, err)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot.yaml"), []byte("{not yaml: ["), 0644))

	s := NewSnapshotStore(dir, "snapshot.yaml", 10)
	_, err := s.Load()
	assert.Error(t, err)
}

func TestBackup_WritesTimestampedCopy(t *testing.T) {
	dir := t.TempDir()
	s := NewSnapshotStore(dir, "snapshot.yaml", 10)
	require.NoError(t, s.Save(&state.AppState{}))

	path, err := s.Backup()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(dir, "backups"))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestBackup_NothingToBackUp(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), "snapshot.yaml", 10)
	_, err := s.Backup()
	assert.Error(t, err)
}

func TestBackup_PrunesOldBackups(t *testing.T) {
	dir := t.TempDir()
	s := NewSnapshotStore(dir, "snapshot.yaml", 3)
	require.NoError(t, s.Save(&state.AppState{}))

	// Seed more backups than BackupKeep allows; names sort by timestamp.
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.MkdirAll(backupDir, 0755))
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("snapshot-20250101-00000%d.yaml", i)
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, name), []byte("{}"), 0644))
	}

	_, err := s.Backup()
	require.NoError(t, err)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// The newest of the seeded backups survives along with the fresh one.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "snapshot-20250101-000005.yaml")
	assert.NotContains(t, names, "snapshot-20250101-000001.yaml")
}

func TestNewSnapshotStore_KeepFloor(t *testing.T) {
	s := NewSnapshotStore(t.TempDir(), "snapshot.yaml", 0)
	assert.Equal(t, 10, s.BackupKeep)
}

func TestSeedChartOfAccounts(t *testing.T) {
	st := &state.AppState{}
	SeedChartOfAccounts(st)
	require.NotEmpty(t, st.Categories)

	// Role-tagged system categories are present from the start.
	roles := make(map[models.SystemRole]bool)
	for _, c := range st.Categories {
		roles[c.Role] = true
	}
	assert.True(t, roles[models.RolePMCost])
	assert.True(t, roles[models.RoleBrokerFee])
	assert.True(t, roles[models.RoleOwnerPayout])
	assert.True(t, roles[models.RoleSecurityDeposit])

	// Seeding an already-populated state is a no-op.
	custom := &state.AppState{Categories: []models.Category{{ID: "mine", Name: "Mine"}}}
	SeedChartOfAccounts(custom)
	assert.Len(t, custom.Categories, 1)
}
