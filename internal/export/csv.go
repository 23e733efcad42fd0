// Package export writes report output as CSV. Consumers of report rows
// (spreadsheets, print services) receive flat key-value records; no other
// file format knowledge lives in this module.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"rentfolio/internal/ledger"
	"rentfolio/internal/logging"
	"rentfolio/internal/models"
	"rentfolio/internal/pmfee"
	"rentfolio/internal/reports"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via config.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ledgerRowRecord is the flat CSV shape of one ledger row.
type ledgerRowRecord struct {
	Date      string `csv:"Date"`
	Group     string `csv:"Group"`
	Label     string `csv:"Label"`
	Detail    string `csv:"Detail"`
	Reference string `csv:"Reference"`
	Category  string `csv:"Category"`
	Property  string `csv:"Property"`
	Debit     string `csv:"Debit"`
	Credit    string `csv:"Credit"`
	Balance   string `csv:"Balance"`
}

// feePositionRecord is the flat CSV shape of one project fee position.
type feePositionRecord struct {
	Project      string `csv:"Project"`
	TotalExpense string `csv:"Total Expense"`
	ExcludedCost string `csv:"Excluded Cost"`
	NetBase      string `csv:"Net Base"`
	Accrued      string `csv:"Accrued"`
	Paid         string `csv:"Paid"`
	Balance      string `csv:"Balance"`
}

// expiryRecord is the flat CSV shape of one expiry classification row.
type expiryRecord struct {
	Agreement string `csv:"Agreement"`
	Property  string `csv:"Property"`
	Tenant    string `csv:"Tenant"`
	Owner     string `csv:"Owner"`
	EndDate   string `csv:"End Date"`
	DaysLeft  int    `csv:"Days Left"`
	Bucket    string `csv:"Bucket"`
}

// WriteLedgerRows writes ledger rows to a CSV file. Amounts are rounded
// to two decimal places at this boundary only.
func WriteLedgerRows(rows []ledger.Row, csvFile string) error {
	records := make([]ledgerRowRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, ledgerRowRecord{
			Date:      r.Date.Format("2006-01-02"),
			Group:     r.GroupKey,
			Label:     r.Label,
			Detail:    r.Detail,
			Reference: r.Reference,
			Category:  r.Category,
			Property:  r.Property,
			Debit:     models.FormatAmount(r.Debit),
			Credit:    models.FormatAmount(r.Credit),
			Balance:   models.FormatAmount(r.Balance),
		})
	}
	return writeRecords(records, csvFile)
}

// WriteFeePositions writes project fee positions to a CSV file.
func WriteFeePositions(positions []pmfee.Financials, csvFile string) error {
	records := make([]feePositionRecord, 0, len(positions))
	for _, f := range positions {
		records = append(records, feePositionRecord{
			Project:      f.ProjectName,
			TotalExpense: models.FormatAmount(f.TotalExpense),
			ExcludedCost: models.FormatAmount(f.ExcludedCost),
			NetBase:      models.FormatAmount(f.NetBase),
			Accrued:      models.FormatAmount(f.Accrued),
			Paid:         models.FormatAmount(f.Paid),
			Balance:      models.FormatAmount(f.Balance),
		})
	}
	return writeRecords(records, csvFile)
}

// WriteExpiryRows writes agreement expiry rows to a CSV file.
func WriteExpiryRows(rows []reports.ExpiryRow, csvFile string) error {
	records := make([]expiryRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, expiryRecord{
			Agreement: r.AgreementNumber,
			Property:  r.Property,
			Tenant:    r.Tenant,
			Owner:     r.Owner,
			EndDate:   r.EndDate.Format("2006-01-02"),
			DaysLeft:  r.DaysLeft,
			Bucket:    string(r.Bucket),
		})
	}
	return writeRecords(records, csvFile)
}

// writeRecords marshals any record slice through gocsv with the
// configured delimiter.
func writeRecords[T any](records []T, csvFile string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
