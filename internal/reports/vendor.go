package reports

import (
	"rentfolio/internal/ledger"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// VendorLedger builds the payable ledger across all vendors: bills raise
// the balance owed to a vendor, expense payments against them settle it.
// Rows are grouped per vendor and the balance resets at each boundary.
func VendorLedger(s *state.AppState, opts Options) []ledger.Row {
	res := resolver.New(s)

	var entries []ledger.Entry
	for _, b := range s.Bills {
		if b.VendorID == "" {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        b.ID,
			Date:      b.IssueDate,
			Debit:     b.Amount,
			GroupKey:  res.ContactName(b.VendorID),
			Label:     "Bill",
			Detail:    b.Description,
			Reference: b.Number,
			Property:  res.PropertyName(b.PropertyID),
		})
	}
	for _, t := range s.Transactions {
		if !t.IsExpense() || t.VendorID == "" {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        t.ID,
			Date:      t.Date,
			Credit:    t.Amount,
			GroupKey:  res.ContactName(t.VendorID),
			Label:     "Payment",
			Detail:    t.Description,
			Reference: t.BillID,
			Category:  res.CategoryName(t.CategoryID),
			Property:  res.PropertyName(t.PropertyID),
		})
	}

	return aggregateGrouped(entries, opts)
}
