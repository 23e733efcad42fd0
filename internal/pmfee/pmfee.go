// Package pmfee computes project-management fee accruals. The figures
// are derived on every call from the current snapshot; nothing is cached.
package pmfee

import (
	"fmt"
	"strings"
	"time"

	"rentfolio/internal/classifier"
	"rentfolio/internal/dateutils"
	"rentfolio/internal/models"
	"rentfolio/internal/state"

	"github.com/shopspring/decimal"
)

// Financials is the fee position of one project.
type Financials struct {
	ProjectID    string
	ProjectName  string
	TotalExpense decimal.Decimal
	ExcludedCost decimal.Decimal
	NetBase      decimal.Decimal
	Accrued      decimal.Decimal
	Paid         decimal.Decimal
	Balance      decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// IsPMFeePayment reports whether a transfer's description marks it as a
// PM fee settlement. The case-insensitive substring match is the only
// signal existing data carries; it must not be tightened without
// migrating that data.
func IsPMFeePayment(description string) bool {
	d := strings.ToLower(description)
	return strings.Contains(d, "pm fee") || strings.Contains(d, "pm payout")
}

// ComputeFinancials derives the fee position of a project as of the given
// date. A zero asOf considers all transactions.
//
//	netBase = totalExpense − excludedCost
//	accrued = netBase × rate / 100
//	balance = accrued − paid
//
// Expenses against the PM-cost category are fee payments, not fee base:
// they count toward paid and are kept out of totalExpense entirely.
func ComputeFinancials(s *state.AppState, projectID string, asOf time.Time) (Financials, error) {
	project, ok := s.ProjectByID(projectID)
	if !ok {
		return Financials{}, fmt.Errorf("project not found: %s", projectID)
	}

	excluded := classifier.ExcludedCategories(project, s.Categories)
	pmCat, hasPMCat := classifier.PMCostCategory(s.Categories)

	f := Financials{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		TotalExpense: decimal.Zero,
		ExcludedCost: decimal.Zero,
		Paid:         decimal.Zero,
	}

	for _, t := range s.Transactions {
		if t.ProjectID != projectID {
			continue
		}
		if !asOf.IsZero() && t.Date.After(dateutils.EndOfDay(asOf)) {
			continue
		}

		switch t.Type {
		case models.TypeExpense:
			if hasPMCat && t.CategoryID == pmCat.ID {
				f.Paid = f.Paid.Add(t.Amount)
				continue
			}
			f.TotalExpense = f.TotalExpense.Add(t.Amount)
			if excluded.Has(t.CategoryID) {
				f.ExcludedCost = f.ExcludedCost.Add(t.Amount)
			}
		case models.TypeTransfer:
			if IsPMFeePayment(t.Description) {
				f.Paid = f.Paid.Add(t.Amount)
			}
		}
	}

	f.NetBase = f.TotalExpense.Sub(f.ExcludedCost)
	f.Accrued = f.NetBase.Mul(project.FeeRate()).Div(hundred)
	f.Balance = f.Accrued.Sub(f.Paid)
	return f, nil
}
