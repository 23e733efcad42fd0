package reports

import (
	"rentfolio/internal/ledger"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// TenantLedger builds the receivable ledger for one tenant: invoices
// raise the balance owed, income posted against the tenant settles it.
func TenantLedger(s *state.AppState, tenantID string, opts Options) []ledger.Row {
	res := resolver.New(s)

	var entries []ledger.Entry
	for _, inv := range s.Invoices {
		if inv.ContactID != tenantID {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        inv.ID,
			Date:      inv.IssueDate,
			Debit:     inv.Amount,
			Label:     res.ContactName(inv.ContactID),
			Detail:    inv.Description,
			Reference: inv.Number,
			Property:  res.PropertyName(inv.PropertyID),
		})
	}
	for _, t := range s.Transactions {
		if !t.IsIncome() || t.ContactID != tenantID {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        t.ID,
			Date:      t.Date,
			Credit:    t.Amount,
			Label:     res.ContactName(t.ContactID),
			Detail:    t.Description,
			Reference: t.InvoiceID,
			Category:  res.CategoryName(t.CategoryID),
			Property:  res.PropertyName(t.PropertyID),
		})
	}

	return aggregateFlat(entries, opts)
}
