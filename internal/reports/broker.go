package reports

import (
	"rentfolio/internal/ledger"
	"rentfolio/internal/models"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// BrokerFees builds the commission ledger: each agreement with a broker
// accrues its fee on the agreement start date, and broker-fee payments
// settle it. Rows are grouped per broker with a balance reset at each
// boundary, so the closing balance per group is what that broker is
// still owed.
func BrokerFees(s *state.AppState, opts Options) []ledger.Row {
	res := resolver.New(s)
	feeCat, hasFeeCat := categoryByRole(s.Categories, models.RoleBrokerFee, "Broker Fee")

	var entries []ledger.Entry
	for _, a := range s.RentalAgreements {
		if a.BrokerID == "" || !a.BrokerFee.IsPositive() {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:        a.ID,
			Date:      a.StartDate,
			Debit:     a.BrokerFee,
			GroupKey:  res.ContactName(a.BrokerID),
			Label:     "Commission",
			Detail:    "Agreement " + a.AgreementNumber,
			Reference: a.AgreementNumber,
			Property:  res.PropertyName(a.PropertyID),
		})
	}
	for _, t := range s.Transactions {
		if !t.IsExpense() || !hasFeeCat || t.CategoryID != feeCat.ID || t.ContactID == "" {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:       t.ID,
			Date:     t.Date,
			Credit:   t.Amount,
			GroupKey: res.ContactName(t.ContactID),
			Label:    "Payment",
			Detail:   t.Description,
			Category: res.CategoryName(t.CategoryID),
			Property: res.PropertyName(t.PropertyID),
		})
	}

	return aggregateGrouped(entries, opts)
}
