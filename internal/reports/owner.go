package reports

import (
	"rentfolio/internal/dateutils"
	"rentfolio/internal/ledger"
	"rentfolio/internal/models"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// OwnerPayouts builds the per-owner ledger: income attributable to an
// owner's properties raises the balance owed to them, payout
// disbursements reduce it. Rows are grouped per owner and the running
// balance resets at each owner boundary.
func OwnerPayouts(s *state.AppState, opts Options) []ledger.Row {
	res := resolver.New(s)
	payoutCat, hasPayoutCat := categoryByRole(s.Categories, models.RoleOwnerPayout, "Owner Payout")

	var entries []ledger.Entry
	for _, t := range s.Transactions {
		switch {
		case t.IsIncome() && t.PropertyID != "":
			ownerName, ok := incomeOwnerName(s, res, t)
			if !ok {
				continue
			}
			entries = append(entries, ledger.Entry{
				ID:       t.ID,
				Date:     t.Date,
				Debit:    t.Amount,
				GroupKey: ownerName,
				Label:    res.PropertyName(t.PropertyID),
				Detail:   t.Description,
				Category: res.CategoryName(t.CategoryID),
				Property: res.BuildingNameForTransaction(t),
			})
		case t.IsExpense() && hasPayoutCat && t.CategoryID == payoutCat.ID:
			if t.ContactID == "" {
				continue
			}
			entries = append(entries, ledger.Entry{
				ID:       t.ID,
				Date:     t.Date,
				Credit:   t.Amount,
				GroupKey: res.ContactName(t.ContactID),
				Label:    "Owner payout",
				Detail:   t.Description,
				Category: res.CategoryName(t.CategoryID),
				Property: res.PropertyName(t.PropertyID),
			})
		}
	}

	return aggregateGrouped(entries, opts)
}

// incomeOwnerName attributes an income transaction to the owner who held
// the property when it was earned. The agreement covering the transaction
// date decides: its stamped historical owner wins over the property
// record, so income from before an ownership transfer stays with the
// previous owner. Income outside any dated agreement falls back to the
// property's current owner.
func incomeOwnerName(s *state.AppState, res *resolver.Resolver, t models.Transaction) (string, bool) {
	var covering models.RentalAgreement
	found := false
	for _, a := range s.RentalAgreements {
		if a.PropertyID != t.PropertyID {
			continue
		}
		if a.StartDate.IsZero() && a.EndDate.IsZero() {
			continue
		}
		if !dateutils.InRange(t.Date, a.StartDate, a.EndDate) {
			continue
		}
		if a.OwnerID != "" {
			return res.OwnerNameForAgreement(a), true
		}
		if !found {
			covering = a
			found = true
		}
	}
	if found {
		return res.OwnerNameForAgreement(covering), true
	}

	p, ok := s.PropertyByID(t.PropertyID)
	if !ok || p.OwnerID == "" {
		return "", false
	}
	return res.ContactName(p.OwnerID), true
}
