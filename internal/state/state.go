// Package state holds the in-memory application state and the dispatcher
// that serializes every mutation. Report code reads snapshots and never
// mutates; the closed set of Action variants in actions.go is the only
// write path.
package state

import (
	"fmt"

	"rentfolio/internal/models"

	"github.com/google/uuid"
)

// AppState is a snapshot of every collection the application works with.
// It is owned by a Store; readers obtain it via Store.Snapshot.
type AppState struct {
	Transactions       []models.Transaction       `yaml:"transactions"`
	Invoices           []models.Invoice           `yaml:"invoices"`
	Bills              []models.Bill              `yaml:"bills"`
	RentalAgreements   []models.RentalAgreement   `yaml:"rental_agreements"`
	RecurringTemplates []models.RecurringTemplate `yaml:"recurring_templates"`
	Projects           []models.Project           `yaml:"projects"`
	Categories         []models.Category          `yaml:"categories"`
	Contacts           []models.Contact           `yaml:"contacts"`
	Properties         []models.Property          `yaml:"properties"`
	Buildings          []models.Building          `yaml:"buildings"`
}

// NewID allocates an identifier for a newly created entity.
func NewID() string {
	return uuid.NewString()
}

// ProjectByID returns the project with the given id.
func (s *AppState) ProjectByID(id string) (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// PropertyByID returns the property with the given id.
func (s *AppState) PropertyByID(id string) (models.Property, bool) {
	for _, p := range s.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

// CategoryByID returns the category with the given id.
func (s *AppState) CategoryByID(id string) (models.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ContactByID returns the contact with the given id.
func (s *AppState) ContactByID(id string) (models.Contact, bool) {
	for _, c := range s.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// AgreementByID returns the rental agreement with the given id.
func (s *AppState) AgreementByID(id string) (models.RentalAgreement, bool) {
	for _, a := range s.RentalAgreements {
		if a.ID == id {
			return a, true
		}
	}
	return models.RentalAgreement{}, false
}

// AgreementsForProperty returns every agreement on the property, in
// stored order.
func (s *AppState) AgreementsForProperty(propertyID string) []models.RentalAgreement {
	var out []models.RentalAgreement
	for _, a := range s.RentalAgreements {
		if a.PropertyID == propertyID {
			out = append(out, a)
		}
	}
	return out
}

// TemplatesForAgreement returns the recurring templates linked to the
// agreement.
func (s *AppState) TemplatesForAgreement(agreementID string) []models.RecurringTemplate {
	var out []models.RecurringTemplate
	for _, t := range s.RecurringTemplates {
		if t.AgreementID == agreementID {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsForProject returns every transaction posted against the
// project.
func (s *AppState) TransactionsForProject(projectID string) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.Transactions {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// NextAgreementNumber allocates the next sequential agreement number in
// the "AGR-NNNN" series. The sequence is derived from the stored
// agreements so it survives snapshot reload.
func (s *AppState) NextAgreementNumber() string {
	max := 0
	for _, a := range s.RentalAgreements {
		var n int
		if _, err := fmt.Sscanf(a.AgreementNumber, "AGR-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("AGR-%04d", max+1)
}
