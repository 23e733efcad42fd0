// Package root contains the root command for the application
package root

import (
	"rentfolio/internal/config"
	"rentfolio/internal/export"
	"rentfolio/internal/logging"
	"rentfolio/internal/state"
	"rentfolio/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "rentfolio",
		Short: "Property and project accounting reports from a local snapshot.",
		Long: `rentfolio computes ledger reports (owner payouts, tenant and vendor
ledgers, broker fees, security deposits, agreement expiry, PM fees) over a
YAML state snapshot and exports them as CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to rentfolio!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(Log)
			export.SetDelimiter([]rune(cfg.Export.Delimiter)[0])
			return nil
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}

// OpenStore loads the snapshot and wraps it in a dispatching store.
func OpenStore() (*state.Store, *store.SnapshotStore, error) {
	snapStore := store.NewSnapshotStore(Cfg.Data.Directory, Cfg.Data.SnapshotFile, Cfg.Data.BackupKeep)
	st, err := snapStore.Load()
	if err != nil {
		return nil, nil, err
	}
	store.SeedChartOfAccounts(st)
	return state.NewStore(st, Log), snapStore, nil
}
