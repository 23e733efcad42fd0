package reports

import (
	"time"

	"rentfolio/internal/classifier"
	"rentfolio/internal/ledger"
	"rentfolio/internal/pmfee"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"
)

// PMFeePosition pairs a project's fee financials with the payment ledger
// that settles them.
type PMFeePosition struct {
	Financials pmfee.Financials
	Payments   []ledger.Row
}

// PMFeeReport computes the fee position of every project that has a fee
// configuration, as of the given date. Projects without PMConfig are
// skipped: without a rate there is nothing to accrue.
func PMFeeReport(s *state.AppState, asOf time.Time) ([]PMFeePosition, error) {
	res := resolver.New(s)
	pmCat, hasPMCat := classifier.PMCostCategory(s.Categories)

	var positions []PMFeePosition
	for _, p := range s.Projects {
		if p.PMConfig == nil {
			continue
		}
		fin, err := pmfee.ComputeFinancials(s, p.ID, asOf)
		if err != nil {
			return nil, err
		}

		var entries []ledger.Entry
		for _, t := range s.Transactions {
			if t.ProjectID != p.ID {
				continue
			}
			isCatPayment := t.IsExpense() && hasPMCat && t.CategoryID == pmCat.ID
			isTransferPayment := t.IsTransfer() && pmfee.IsPMFeePayment(t.Description)
			if !isCatPayment && !isTransferPayment {
				continue
			}
			entries = append(entries, ledger.Entry{
				ID:       t.ID,
				Date:     t.Date,
				Credit:   t.Amount,
				Label:    res.ContactName(t.ContactID),
				Detail:   t.Description,
				Category: res.CategoryName(t.CategoryID),
			})
		}

		positions = append(positions, PMFeePosition{
			Financials: fin,
			Payments:   ledger.Aggregate(entries, ledger.Options{End: asOf, SortKey: ledger.SortByDate}),
		})
	}
	return positions, nil
}
