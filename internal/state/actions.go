package state

import (
	"errors"
	"fmt"

	"rentfolio/internal/models"
)

// ErrConfirmationRequired is returned when an action needs an explicit
// user confirmation before it may proceed. It is a prompt, not a failure.
var ErrConfirmationRequired = errors.New("confirmation required")

// Action is one element of the closed set of state mutations. Every
// variant validates its input and applies itself to the state; there are
// no string-typed action names.
type Action interface {
	apply(s *AppState) error
}

// AddTransaction posts a new transaction.
type AddTransaction struct {
	Transaction models.Transaction
}

func (a AddTransaction) apply(s *AppState) error {
	t := a.Transaction
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	switch t.Type {
	case models.TypeIncome, models.TypeExpense, models.TypeTransfer:
	default:
		return fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative: %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	s.Transactions = append(s.Transactions, t)
	return nil
}

// UpdateTransaction replaces an existing transaction by id.
type UpdateTransaction struct {
	Transaction models.Transaction
}

func (a UpdateTransaction) apply(s *AppState) error {
	for i, t := range s.Transactions {
		if t.ID == a.Transaction.ID {
			if a.Transaction.Amount.IsNegative() {
				return fmt.Errorf("transaction amount must not be negative: %s", a.Transaction.Amount)
			}
			s.Transactions[i] = a.Transaction
			return nil
		}
	}
	return fmt.Errorf("transaction not found: %s", a.Transaction.ID)
}

// DeleteTransaction removes a transaction by id.
type DeleteTransaction struct {
	ID string
}

func (a DeleteTransaction) apply(s *AppState) error {
	for i, t := range s.Transactions {
		if t.ID == a.ID {
			s.Transactions = append(s.Transactions[:i], s.Transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction not found: %s", a.ID)
}

// UpdateProperty replaces an existing property by id.
type UpdateProperty struct {
	Property models.Property
}

func (a UpdateProperty) apply(s *AppState) error {
	for i, p := range s.Properties {
		if p.ID == a.Property.ID {
			s.Properties[i] = a.Property
			return nil
		}
	}
	return fmt.Errorf("property not found: %s", a.Property.ID)
}

// AddRentalAgreement records a new rental agreement.
type AddRentalAgreement struct {
	Agreement models.RentalAgreement
}

func (a AddRentalAgreement) apply(s *AppState) error {
	ag := a.Agreement
	if ag.ID == "" {
		return fmt.Errorf("agreement id is required")
	}
	if ag.PropertyID == "" || ag.TenantID == "" {
		return fmt.Errorf("agreement requires property and tenant")
	}
	if ag.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent must not be negative: %s", ag.MonthlyRent)
	}
	s.RentalAgreements = append(s.RentalAgreements, ag)
	return nil
}

// UpdateRentalAgreement replaces an existing agreement by id.
type UpdateRentalAgreement struct {
	Agreement models.RentalAgreement
}

func (a UpdateRentalAgreement) apply(s *AppState) error {
	for i, ag := range s.RentalAgreements {
		if ag.ID == a.Agreement.ID {
			s.RentalAgreements[i] = a.Agreement
			return nil
		}
	}
	return fmt.Errorf("agreement not found: %s", a.Agreement.ID)
}

// UpdateRecurringTemplate replaces an existing recurring template by id.
type UpdateRecurringTemplate struct {
	Template models.RecurringTemplate
}

func (a UpdateRecurringTemplate) apply(s *AppState) error {
	for i, t := range s.RecurringTemplates {
		if t.ID == a.Template.ID {
			s.RecurringTemplates[i] = a.Template
			return nil
		}
	}
	return fmt.Errorf("recurring template not found: %s", a.Template.ID)
}

// SetProjectPMConfig installs or replaces a project's fee configuration.
// Replacing a configuration on a project that already has posted expenses
// changes historical accrual figures, so the caller must set Confirmed;
// without it the dispatcher returns ErrConfirmationRequired and leaves
// the state untouched.
type SetProjectPMConfig struct {
	ProjectID string
	Config    *models.PMConfig
	Confirmed bool
}

func (a SetProjectPMConfig) apply(s *AppState) error {
	if a.Config != nil && a.Config.Rate.IsNegative() {
		return fmt.Errorf("pm fee rate must not be negative: %s", a.Config.Rate)
	}
	for i, p := range s.Projects {
		if p.ID != a.ProjectID {
			continue
		}
		if p.PMConfig != nil && !a.Confirmed && len(s.TransactionsForProject(a.ProjectID)) > 0 {
			return fmt.Errorf("project %s has accrual history: %w", a.ProjectID, ErrConfirmationRequired)
		}
		s.Projects[i].PMConfig = a.Config
		return nil
	}
	return fmt.Errorf("project not found: %s", a.ProjectID)
}

// AddInvoice records a new receivable.
type AddInvoice struct {
	Invoice models.Invoice
}

func (a AddInvoice) apply(s *AppState) error {
	if a.Invoice.ID == "" {
		return fmt.Errorf("invoice id is required")
	}
	if a.Invoice.Amount.IsNegative() {
		return fmt.Errorf("invoice amount must not be negative: %s", a.Invoice.Amount)
	}
	s.Invoices = append(s.Invoices, a.Invoice)
	return nil
}

// AddBill records a new payable.
type AddBill struct {
	Bill models.Bill
}

func (a AddBill) apply(s *AppState) error {
	if a.Bill.ID == "" {
		return fmt.Errorf("bill id is required")
	}
	if a.Bill.Amount.IsNegative() {
		return fmt.Errorf("bill amount must not be negative: %s", a.Bill.Amount)
	}
	s.Bills = append(s.Bills, a.Bill)
	return nil
}

// AddContact records a new party.
type AddContact struct {
	Contact models.Contact
}

func (a AddContact) apply(s *AppState) error {
	if a.Contact.ID == "" || a.Contact.Name == "" {
		return fmt.Errorf("contact requires id and name")
	}
	s.Contacts = append(s.Contacts, a.Contact)
	return nil
}

// AddCategory adds a node to the chart of accounts.
type AddCategory struct {
	Category models.Category
}

func (a AddCategory) apply(s *AppState) error {
	if a.Category.ID == "" || a.Category.Name == "" {
		return fmt.Errorf("category requires id and name")
	}
	s.Categories = append(s.Categories, a.Category)
	return nil
}
