package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgreementStatus defines the lifecycle state of a rental agreement.
type AgreementStatus string

const (
	// AgreementActive is a live agreement generating rent.
	AgreementActive AgreementStatus = "ACTIVE"
	// AgreementRenewed is an agreement superseded by a successor.
	AgreementRenewed AgreementStatus = "RENEWED"
	// AgreementExpired is an agreement past its end date.
	AgreementExpired AgreementStatus = "EXPIRED"
	// AgreementTerminated is an agreement ended before its end date.
	AgreementTerminated AgreementStatus = "TERMINATED"
)

// RentalAgreement ties a tenant to a property for a period at a monthly
// rent. OwnerID is back-filled onto historical agreements when a property
// changes hands so that reports attribute income to the owner who held
// the property while the agreement was active.
type RentalAgreement struct {
	ID              string          `json:"id" yaml:"id"`
	AgreementNumber string          `json:"agreement_number" yaml:"agreement_number"`
	PropertyID      string          `json:"property_id" yaml:"property_id"`
	TenantID        string          `json:"tenant_id" yaml:"tenant_id"`
	Status          AgreementStatus `json:"status" yaml:"status"`
	StartDate       time.Time       `json:"start_date" yaml:"start_date"`
	EndDate         time.Time       `json:"end_date" yaml:"end_date"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent" yaml:"monthly_rent"`
	BrokerID        string          `json:"broker_id,omitempty" yaml:"broker_id,omitempty"`
	BrokerFee       decimal.Decimal `json:"broker_fee,omitempty" yaml:"broker_fee,omitempty"`
	SecurityDeposit decimal.Decimal `json:"security_deposit,omitempty" yaml:"security_deposit,omitempty"`
	OwnerID         string          `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsTerminal returns true once an agreement has left the ACTIVE state.
func (a RentalAgreement) IsTerminal() bool {
	return a.Status == AgreementRenewed || a.Status == AgreementExpired || a.Status == AgreementTerminated
}

// RecurringTemplate is a schedule for generating invoices from an
// agreement. Templates are deactivated, never deleted, when the
// agreement they belong to is renewed.
type RecurringTemplate struct {
	ID          string          `json:"id" yaml:"id"`
	AgreementID string          `json:"agreement_id" yaml:"agreement_id"`
	Frequency   string          `json:"frequency" yaml:"frequency"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Active      bool            `json:"active" yaml:"active"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}
