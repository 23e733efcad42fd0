package reports

import (
	"rentfolio/internal/ledger"
	"rentfolio/internal/models"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// SecurityDeposits builds the deposit ledger: deposits collected under an
// agreement raise the liability held, refunds posted against the deposit
// category release it. Rows are grouped per tenant.
func SecurityDeposits(s *state.AppState, opts Options) []ledger.Row {
	res := resolver.New(s)
	depCat, hasDepCat := categoryByRole(s.Categories, models.RoleSecurityDeposit, "Security Deposit")

	var entries []ledger.Entry
	for _, a := range s.RentalAgreements {
		if !a.SecurityDeposit.IsPositive() {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        a.ID,
			Date:      a.StartDate,
			Debit:     a.SecurityDeposit,
			GroupKey:  res.ContactName(a.TenantID),
			Label:     "Deposit held",
			Detail:    "Agreement " + a.AgreementNumber,
			Reference: a.AgreementNumber,
			Property:  res.PropertyName(a.PropertyID),
		})
	}
	for _, t := range s.Transactions {
		if !t.IsExpense() || !hasDepCat || t.CategoryID != depCat.ID || t.ContactID == "" {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:       t.ID,
			Date:     t.Date,
			Credit:   t.Amount,
			GroupKey: res.ContactName(t.ContactID),
			Label:    "Refund",
			Detail:   t.Description,
			Category: res.CategoryName(t.CategoryID),
			Property: res.PropertyName(t.PropertyID),
		})
	}

	return aggregateGrouped(entries, opts)
}
