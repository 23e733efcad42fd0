// Package reports builds the ledger reports of the application: owner
// payouts, tenant and vendor ledgers, broker fees, security deposits,
// agreement expiry, PM fee positions and the dashboard summary. Every
// report is a pure read over a state snapshot, assembled from the
// resolver, classifier and ledger packages.
package reports

import (
	"time"

	"rentfolio/internal/classifier"
	"rentfolio/internal/ledger"
	"rentfolio/internal/models"
)

// Options narrows a report to a period and an optional search string.
// Zero dates leave the period unbounded on that side.
type Options struct {
	Start  time.Time
	End    time.Time
	Search string
}

// FeePaymentCategories returns the ids of categories whose transactions
// are fee settlements (PM cost, broker fee). General expense totals must
// leave these out or fee payments would be counted twice: once in the
// fee report and once as an ordinary expense.
func FeePaymentCategories(categories []models.Category) classifier.Set {
	set := make(classifier.Set)
	for _, c := range categories {
		if c.Role == models.RolePMCost || c.Role == models.RoleBrokerFee {
			set.Add(c.ID)
		}
	}
	// Name fallback for data saved before system roles existed.
	if pm, ok := classifier.PMCostCategory(categories); ok {
		set.Add(pm.ID)
	}
	for _, c := range categories {
		if c.Name == "Broker Fee" {
			set.Add(c.ID)
		}
	}
	return set
}

// categoryByRole finds the first category carrying a role, with an exact
// name fallback for legacy data.
func categoryByRole(categories []models.Category, role models.SystemRole, legacyName string) (models.Category, bool) {
	for _, c := range categories {
		if c.Role == role {
			return c, true
		}
	}
	for _, c := range categories {
		if c.Name == legacyName {
			return c, true
		}
	}
	return models.Category{}, false
}

// aggregate applies the report options to entries with grouping enabled.
func aggregateGrouped(entries []ledger.Entry, opts Options) []ledger.Row {
	return ledger.Aggregate(entries, ledger.Options{
		Start:   opts.Start,
		End:     opts.End,
		GroupBy: true,
		Search:  opts.Search,
	})
}

// aggregateFlat applies the report options to entries ordered by date.
func aggregateFlat(entries []ledger.Entry, opts Options) []ledger.Row {
	return ledger.Aggregate(entries, ledger.Options{
		Start:   opts.Start,
		End:     opts.End,
		SortKey: ledger.SortByDate,
		Search:  opts.Search,
	})
}
