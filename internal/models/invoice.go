package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a receivable raised against a tenant or client. Payment
// transactions reference it via Transaction.InvoiceID.
type Invoice struct {
	ID          string          `json:"id" yaml:"id"`
	Number      string          `json:"number" yaml:"number"`
	IssueDate   time.Time       `json:"issue_date" yaml:"issue_date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	ContactID   string          `json:"contact_id" yaml:"contact_id"`
	ProjectID   string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	PropertyID  string          `json:"property_id,omitempty" yaml:"property_id,omitempty"`
	BuildingID  string          `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// Bill is a payable owed to a vendor. Payment transactions reference it
// via Transaction.BillID.
type Bill struct {
	ID          string          `json:"id" yaml:"id"`
	Number      string          `json:"number" yaml:"number"`
	IssueDate   time.Time       `json:"issue_date" yaml:"issue_date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	VendorID    string          `json:"vendor_id" yaml:"vendor_id"`
	ProjectID   string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	PropertyID  string          `json:"property_id,omitempty" yaml:"property_id,omitempty"`
	BuildingID  string          `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}
