package store

import (
	"rentfolio/internal/logging"
	"rentfolio/internal/models"
	"rentfolio/internal/state"
)

// DefaultChartOfAccounts returns the category template a fresh
// installation is seeded with. System categories carry their role tags
// from the start, so name matching is only ever needed for imported
// legacy data.
func DefaultChartOfAccounts() []models.Category {
	return []models.Category{
		{ID: "cat-rent", Name: "Rent Income", Kind: models.TypeIncome},
		{ID: "cat-other-income", Name: "Other Income", Kind: models.TypeIncome},
		{ID: "cat-maintenance", Name: "Maintenance", Kind: models.TypeExpense},
		{ID: "cat-utilities", Name: "Utilities", Kind: models.TypeExpense},
		{ID: "cat-insurance", Name: "Insurance", Kind: models.TypeExpense},
		{ID: "cat-broker-fee", Name: "Broker Fee", Kind: models.TypeExpense, Role: models.RoleBrokerFee},
		{ID: "cat-owner-payout", Name: "Owner Payout", Kind: models.TypeExpense, Role: models.RoleOwnerPayout},
		{ID: "cat-pm-cost", Name: models.PMCostCategoryName, Kind: models.TypeExpense, Role: models.RolePMCost},
		{ID: "cat-security-deposit", Name: "Security Deposit", Kind: models.TypeExpense, Role: models.RoleSecurityDeposit},
	}
}

// SeedChartOfAccounts installs the default chart into an empty state.
// States that already carry categories are left untouched.
func SeedChartOfAccounts(st *state.AppState) {
	if len(st.Categories) > 0 {
		return
	}
	st.Categories = DefaultChartOfAccounts()
	log.Info("Seeded default chart of accounts",
		logging.Field{Key: logging.FieldCount, Value: len(st.Categories)})
}
