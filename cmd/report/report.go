// Package report contains the report subcommands: each one runs a ledger
// computation over the current snapshot and writes the rows as CSV.
package report

import (
	"fmt"
	"time"

	"rentfolio/cmd/root"
	"rentfolio/internal/dateutils"
	"rentfolio/internal/export"
	"rentfolio/internal/ledger"
	"rentfolio/internal/logging"
	"rentfolio/internal/pmfee"
	"rentfolio/internal/reports"
	"rentfolio/internal/state"

	"github.com/spf13/cobra"
)

var (
	fromFlag   string
	toFlag     string
	asOfFlag   string
	searchFlag string
	tenantFlag string
)

// Cmd is the report command group.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate ledger reports from the current snapshot",
}

func init() {
	Cmd.PersistentFlags().StringVar(&fromFlag, "from", "", "Period start date (inclusive)")
	Cmd.PersistentFlags().StringVar(&toFlag, "to", "", "Period end date (inclusive, any time of day)")
	Cmd.PersistentFlags().StringVar(&asOfFlag, "as-of", "", "As-of date for point-in-time reports")
	Cmd.PersistentFlags().StringVar(&searchFlag, "search", "", "Free-text filter applied after balance computation")

	ownerCmd := &cobra.Command{
		Use:   "owner",
		Short: "Owner payout ledger, grouped per owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerReport("owner", func(s *state.AppState, opts reports.Options) []ledger.Row {
				return reports.OwnerPayouts(s, opts)
			})
		},
	}

	tenantCmd := &cobra.Command{
		Use:   "tenant",
		Short: "Receivable ledger for one tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tenantFlag == "" {
				return fmt.Errorf("--tenant is required")
			}
			return runLedgerReport("tenant", func(s *state.AppState, opts reports.Options) []ledger.Row {
				return reports.TenantLedger(s, tenantFlag, opts)
			})
		},
	}
	tenantCmd.Flags().StringVar(&tenantFlag, "tenant", "", "Tenant contact id")

	vendorCmd := &cobra.Command{
		Use:   "vendor",
		Short: "Payable ledger, grouped per vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerReport("vendor", reports.VendorLedger)
		},
	}

	brokerCmd := &cobra.Command{
		Use:   "broker",
		Short: "Broker commission ledger, grouped per broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerReport("broker", reports.BrokerFees)
		},
	}

	depositsCmd := &cobra.Command{
		Use:   "deposits",
		Short: "Security deposit ledger, grouped per tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerReport("deposits", reports.SecurityDeposits)
		},
	}

	expiryCmd := &cobra.Command{
		Use:   "expiry",
		Short: "Active agreements classified by time to expiry",
		RunE:  runExpiry,
	}

	pmfeeCmd := &cobra.Command{
		Use:   "pmfee",
		Short: "Project management fee positions per project",
		RunE:  runPMFee,
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Income/expense summary for a period",
		RunE:  runDashboard,
	}

	Cmd.AddCommand(ownerCmd, tenantCmd, vendorCmd, brokerCmd, depositsCmd, expiryCmd, pmfeeCmd, dashboardCmd)
}

// parseFlagDate parses an optional date flag; empty means unbounded.
func parseFlagDate(value, flag string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dateutils.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return t, nil
}

// reportOptions builds report options from the shared period flags.
func reportOptions() (reports.Options, error) {
	start, err := parseFlagDate(fromFlag, "from")
	if err != nil {
		return reports.Options{}, err
	}
	end, err := parseFlagDate(toFlag, "to")
	if err != nil {
		return reports.Options{}, err
	}
	return reports.Options{Start: start, End: end, Search: searchFlag}, nil
}

// runLedgerReport runs a row-producing report and writes it out.
func runLedgerReport(name string, build func(*state.AppState, reports.Options) []ledger.Row) error {
	opts, err := reportOptions()
	if err != nil {
		return err
	}
	st, _, err := root.OpenStore()
	if err != nil {
		return err
	}

	rows := build(st.Snapshot(), opts)
	root.Log.Info("Report computed",
		logging.Field{Key: logging.FieldReport, Value: name},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	if root.SharedFlags.Output == "" {
		return printRows(rows)
	}
	return export.WriteLedgerRows(rows, root.SharedFlags.Output)
}

// printRows renders rows to stdout when no output file is requested.
func printRows(rows []ledger.Row) error {
	for _, r := range rows {
		fmt.Printf("%s  %-20s %-24s D:%10s C:%10s B:%12s\n",
			r.Date.Format("2006-01-02"), r.GroupKey, r.Label,
			r.Debit.StringFixed(2), r.Credit.StringFixed(2), r.Balance.StringFixed(2))
	}
	return nil
}

func runExpiry(cmd *cobra.Command, args []string) error {
	asOf, err := parseFlagDate(asOfFlag, "as-of")
	if err != nil {
		return err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	st, _, err := root.OpenStore()
	if err != nil {
		return err
	}

	rows := reports.AgreementExpiry(st.Snapshot(), asOf, root.Cfg.Reports.ExpiryBuckets)
	if root.SharedFlags.Output != "" {
		return export.WriteExpiryRows(rows, root.SharedFlags.Output)
	}
	for _, r := range rows {
		fmt.Printf("%-10s %-20s %-20s ends %s (%d days) %s\n",
			r.AgreementNumber, r.Property, r.Tenant,
			r.EndDate.Format("2006-01-02"), r.DaysLeft, r.Bucket)
	}
	return nil
}

func runPMFee(cmd *cobra.Command, args []string) error {
	asOf, err := parseFlagDate(asOfFlag, "as-of")
	if err != nil {
		return err
	}
	st, _, err := root.OpenStore()
	if err != nil {
		return err
	}

	positions, err := reports.PMFeeReport(st.Snapshot(), asOf)
	if err != nil {
		return err
	}
	if root.SharedFlags.Output != "" {
		fins := make([]pmfee.Financials, 0, len(positions))
		for _, p := range positions {
			fins = append(fins, p.Financials)
		}
		return export.WriteFeePositions(fins, root.SharedFlags.Output)
	}
	for _, p := range positions {
		f := p.Financials
		fmt.Printf("%-24s base:%10s accrued:%10s paid:%10s balance:%10s\n",
			f.ProjectName, f.NetBase.StringFixed(2), f.Accrued.StringFixed(2),
			f.Paid.StringFixed(2), f.Balance.StringFixed(2))
	}
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	opts, err := reportOptions()
	if err != nil {
		return err
	}
	st, _, err := root.OpenStore()
	if err != nil {
		return err
	}

	summary := reports.Dashboard(st.Snapshot(), opts)
	fmt.Printf("Income:  %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Printf("Expense: %s\n", summary.TotalExpense.StringFixed(2))
	fmt.Printf("Net:     %s\n", summary.Net.StringFixed(2))
	fmt.Printf("Active agreements: %d\n", summary.ActiveAgreements)
	for _, c := range summary.TopExpenses {
		fmt.Printf("  %-24s %s\n", c.Category, c.Total.StringFixed(2))
	}
	return nil
}
