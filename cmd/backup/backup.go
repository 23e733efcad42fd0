// Package backup contains the snapshot backup command.
package backup

import (
	"fmt"

	"rentfolio/cmd/root"
	"rentfolio/internal/store"

	"github.com/spf13/cobra"
)

// Cmd is the backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a timestamped backup of the state snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapStore := store.NewSnapshotStore(root.Cfg.Data.Directory, root.Cfg.Data.SnapshotFile, root.Cfg.Data.BackupKeep)
		path, err := snapStore.Backup()
		if err != nil {
			return err
		}
		fmt.Printf("Backup written to %s\n", path)
		return nil
	},
}
