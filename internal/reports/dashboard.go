package reports

import (
	"sort"

	"rentfolio/internal/dateutils"
	"rentfolio/internal/models"
	"rentfolio/internal/resolver"
	"rentfolio/internal/state"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one category's share of the period's expenses.
type CategoryTotal struct {
	CategoryID string
	Category   string
	Total      decimal.Decimal
}

// DashboardSummary is the headline position for a period. Fee settlement
// categories (PM cost, broker fee) are excluded from TotalExpense so the
// same money is not counted both here and in the fee reports.
type DashboardSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	Net              decimal.Decimal
	ActiveAgreements int
	TopExpenses      []CategoryTotal
}

// Dashboard computes the summary for the period in opts.
func Dashboard(s *state.AppState, opts Options) DashboardSummary {
	res := resolver.New(s)
	feeCats := FeePaymentCategories(s.Categories)

	summary := DashboardSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	byCategory := make(map[string]decimal.Decimal)

	for _, t := range s.Transactions {
		if !dateutils.InRange(t.Date, opts.Start, opts.End) {
			continue
		}
		switch {
		case t.IsIncome():
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case t.IsExpense():
			if feeCats.Has(t.CategoryID) {
				continue
			}
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
			byCategory[t.CategoryID] = byCategory[t.CategoryID].Add(t.Amount)
		}
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	for _, a := range s.RentalAgreements {
		if a.Status == models.AgreementActive {
			summary.ActiveAgreements++
		}
	}

	for id, total := range byCategory {
		summary.TopExpenses = append(summary.TopExpenses, CategoryTotal{
			CategoryID: id,
			Category:   res.CategoryName(id),
			Total:      total,
		})
	}
	sort.SliceStable(summary.TopExpenses, func(i, j int) bool {
		return summary.TopExpenses[i].Total.GreaterThan(summary.TopExpenses[j].Total)
	})
	if len(summary.TopExpenses) > 5 {
		summary.TopExpenses = summary.TopExpenses[:5]
	}

	return summary
}
