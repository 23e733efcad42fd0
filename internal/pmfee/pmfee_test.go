package pmfee

import (
	"testing"
	"time"

	"rentfolio/internal/models"
	"rentfolio/internal/state"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func feeState() *state.AppState {
	return &state.AppState{
		Projects: []models.Project{
			{
				ID:   "proj",
				Name: "Tower A",
				PMConfig: &models.PMConfig{
					Rate:                dec("10"),
					Frequency:           "Monthly",
					ExcludedCategoryIDs: []string{"catBroker"},
				},
			},
		},
		Categories: []models.Category{
			{ID: "catOther", Name: "Other", Kind: models.TypeExpense},
			{ID: "catBroker", Name: "Broker Fee", Kind: models.TypeExpense, Role: models.RoleBrokerFee},
			{ID: "catPM", Name: models.PMCostCategoryName, Kind: models.TypeExpense, Role: models.RolePMCost},
		},
		Transactions: []models.Transaction{
			{ID: "t1", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Type: models.TypeExpense, Amount: dec("1000"), CategoryID: "catOther", ProjectID: "proj"},
			{ID: "t2", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Type: models.TypeExpense, Amount: dec("200"), CategoryID: "catBroker", ProjectID: "proj"},
			{ID: "t3", Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Type: models.TypeExpense, Amount: dec("50"), CategoryID: "catPM", ProjectID: "proj"},
		},
	}
}

func TestComputeFinancials_WorkedExample(t *testing.T) {
	f, err := ComputeFinancials(feeState(), "proj", time.Time{})
	require.NoError(t, err)

	// PM-cost payments are excluded from the expense total; the broker
	// expense counts in the total AND in the excluded cost.
	assert.True(t, f.TotalExpense.Equal(dec("1000")), "totalExpense=%s", f.TotalExpense)
	assert.True(t, f.ExcludedCost.Equal(dec("200")), "excludedCost=%s", f.ExcludedCost)
	assert.True(t, f.NetBase.Equal(dec("800")))
	assert.True(t, f.Accrued.Equal(dec("80")))
	assert.True(t, f.Paid.Equal(dec("50")))
	assert.True(t, f.Balance.Equal(dec("30")))
}

func TestComputeFinancials_TransferHeuristicCountsAsPaid(t *testing.T) {
	s := feeState()
	s.Transactions = append(s.Transactions,
		models.Transaction{ID: "t4", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Type: models.TypeTransfer, Amount: dec("20"), ProjectID: "proj", Description: "Monthly PM Fee settlement"},
		models.Transaction{ID: "t5", Date: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC), Type: models.TypeTransfer, Amount: dec("5"), ProjectID: "proj", Description: "PM PAYOUT January"},
		models.Transaction{ID: "t6", Date: time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC), Type: models.TypeTransfer, Amount: dec("999"), ProjectID: "proj", Description: "inter-account move"},
	)

	f, err := ComputeFinancials(s, "proj", time.Time{})
	require.NoError(t, err)
	assert.True(t, f.Paid.Equal(dec("75")), "paid=%s", f.Paid)
}

func TestComputeFinancials_AsOfBoundsInclusive(t *testing.T) {
	s := feeState()
	// Late-evening expense on the as-of date must count.
	s.Transactions = append(s.Transactions, models.Transaction{
		ID: "t7", Date: time.Date(2025, 1, 31, 23, 50, 0, 0, time.UTC),
		Type: models.TypeExpense, Amount: dec("100"), CategoryID: "catOther", ProjectID: "proj",
	})
	s.Transactions = append(s.Transactions, models.Transaction{
		ID: "t8", Date: time.Date(2025, 2, 1, 0, 10, 0, 0, time.UTC),
		Type: models.TypeExpense, Amount: dec("7777"), CategoryID: "catOther", ProjectID: "proj",
	})

	f, err := ComputeFinancials(s, "proj", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, f.TotalExpense.Equal(dec("1100")), "totalExpense=%s", f.TotalExpense)
}

func TestComputeFinancials_NoConfigMeansZeroRate(t *testing.T) {
	s := feeState()
	s.Projects[0].PMConfig = nil

	f, err := ComputeFinancials(s, "proj", time.Time{})
	require.NoError(t, err)
	assert.True(t, f.Accrued.IsZero())
	// With the legacy fallback, the broker expense is still excluded.
	assert.True(t, f.ExcludedCost.Equal(dec("200")))
}

func TestComputeFinancials_UnknownProject(t *testing.T) {
	_, err := ComputeFinancials(feeState(), "nope", time.Time{})
	assert.Error(t, err)
}

func TestIsPMFeePayment(t *testing.T) {
	assert.True(t, IsPMFeePayment("Quarterly PM fee"))
	assert.True(t, IsPMFeePayment("PM PAYOUT for March"))
	assert.True(t, IsPMFeePayment("pm fee"))
	assert.False(t, IsPMFeePayment("performance bonus"))
	assert.False(t, IsPMFeePayment(""))
}
