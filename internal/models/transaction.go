package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of a posted transaction.
type TransactionType string

const (
	// TypeIncome is money received (rent, fees, deposits collected).
	TypeIncome TransactionType = "INCOME"
	// TypeExpense is money paid out (maintenance, payouts, fee payments).
	TypeExpense TransactionType = "EXPENSE"
	// TypeTransfer moves money between accounts without changing net worth.
	TypeTransfer TransactionType = "TRANSFER"
)

// Transaction is a single posted ledger movement. Amounts are stored as
// positive magnitudes; direction is carried by Type.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        time.Time       `json:"date" yaml:"date"`
	Type        TransactionType `json:"type" yaml:"type"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	CategoryID  string          `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	ContactID   string          `json:"contact_id,omitempty" yaml:"contact_id,omitempty"`
	VendorID    string          `json:"vendor_id,omitempty" yaml:"vendor_id,omitempty"`
	ProjectID   string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	PropertyID  string          `json:"property_id,omitempty" yaml:"property_id,omitempty"`
	BuildingID  string          `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	BillID      string          `json:"bill_id,omitempty" yaml:"bill_id,omitempty"`
	InvoiceID   string          `json:"invoice_id,omitempty" yaml:"invoice_id,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	IsSystem    bool            `json:"is_system,omitempty" yaml:"is_system,omitempty"`
}

// IsExpense returns true for EXPENSE transactions.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome returns true for INCOME transactions.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsTransfer returns true for TRANSFER transactions.
func (t Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}
