package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rentfolio/internal/ledger"
	"rentfolio/internal/pmfee"
	"rentfolio/internal/reports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []ledger.Row {
	return []ledger.Row{
		{
			Entry: ledger.Entry{
				ID:       "t1",
				Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				Debit:    decimal.RequireFromString("1200.5"),
				GroupKey: "Alice",
				Label:    "Unit A",
				Detail:   "March rent",
			},
			Balance: decimal.RequireFromString("1200.5"),
		},
		{
			Entry: ledger.Entry{
				ID:       "t2",
				Date:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
				Credit:   decimal.RequireFromString("400"),
				GroupKey: "Alice",
				Label:    "Owner payout",
			},
			Balance: decimal.RequireFromString("800.5"),
		},
	}
}

func TestWriteLedgerRows(t *testing.T) {
	SetDelimiter(',')
	out := filepath.Join(t.TempDir(), "ledger.csv")

	require.NoError(t, WriteLedgerRows(sampleRows(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Group,Label,Detail,Reference,Category,Property,Debit,Credit,Balance", lines[0])
	// Amounts are fixed to two decimals at the export boundary.
	assert.Contains(t, lines[1], "2025-03-01,Alice,Unit A,March rent")
	assert.Contains(t, lines[1], "1200.50")
	assert.Contains(t, lines[2], "800.50")
}

func TestWriteLedgerRows_CustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')
	out := filepath.Join(t.TempDir(), "ledger.csv")

	require.NoError(t, WriteLedgerRows(sampleRows(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Contains(t, header, "Date;Group;Label")
}

func TestWriteLedgerRows_CreatesDirectory(t *testing.T) {
	SetDelimiter(',')
	out := filepath.Join(t.TempDir(), "reports", "owner", "ledger.csv")

	require.NoError(t, WriteLedgerRows(nil, out))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestWriteFeePositions(t *testing.T) {
	SetDelimiter(',')
	out := filepath.Join(t.TempDir(), "fees.csv")

	positions := []pmfee.Financials{{
		ProjectID:    "p1",
		ProjectName:  "Tower A",
		TotalExpense: decimal.RequireFromString("1000"),
		ExcludedCost: decimal.RequireFromString("200"),
		NetBase:      decimal.RequireFromString("800"),
		Accrued:      decimal.RequireFromString("80"),
		Paid:         decimal.RequireFromString("50"),
		Balance:      decimal.RequireFromString("30"),
	}}
	require.NoError(t, WriteFeePositions(positions, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tower A,1000.00,200.00,800.00,80.00,50.00,30.00")
}

func TestWriteExpiryRows(t *testing.T) {
	SetDelimiter(',')
	out := filepath.Join(t.TempDir(), "expiry.csv")

	rows := []reports.ExpiryRow{{
		AgreementNumber: "AGR-0001",
		Property:        "Unit A",
		Tenant:          "Tina",
		Owner:           "Alice",
		EndDate:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		DaysLeft:        21,
		Bucket:          reports.ExpiryBucket("WITHIN_30"),
	}}
	require.NoError(t, WriteExpiryRows(rows, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AGR-0001,Unit A,Tina,Alice,2025-06-30,21,WITHIN_30")
}
