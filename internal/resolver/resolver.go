// Package resolver resolves entity id references from a state snapshot
// into display names and secondary attributes. Resolution is soft-delete
// tolerant: a dangling id degrades to a sentinel label and never fails a
// report.
package resolver

import (
	"fmt"

	"rentfolio/internal/models"
	"rentfolio/internal/state"
)

// Unknown is the label used when a referenced entity cannot be found and
// no id is available to show.
const Unknown = "Unknown"

// Resolver answers name lookups against one snapshot. The index maps are
// built once per snapshot; the legacy implementation re-scanned the
// collections on every lookup.
type Resolver struct {
	contacts   map[string]models.Contact
	properties map[string]models.Property
	buildings  map[string]models.Building
	projects   map[string]models.Project
	categories map[string]models.Category
}

// New builds a Resolver over the given snapshot.
func New(s *state.AppState) *Resolver {
	r := &Resolver{
		contacts:   make(map[string]models.Contact, len(s.Contacts)),
		properties: make(map[string]models.Property, len(s.Properties)),
		buildings:  make(map[string]models.Building, len(s.Buildings)),
		projects:   make(map[string]models.Project, len(s.Projects)),
		categories: make(map[string]models.Category, len(s.Categories)),
	}
	for _, c := range s.Contacts {
		r.contacts[c.ID] = c
	}
	for _, p := range s.Properties {
		r.properties[p.ID] = p
	}
	for _, b := range s.Buildings {
		r.buildings[b.ID] = b
	}
	for _, p := range s.Projects {
		r.projects[p.ID] = p
	}
	for _, c := range s.Categories {
		r.categories[c.ID] = c
	}
	return r
}

// deletedLabel formats the sentinel for an id that no longer resolves.
func deletedLabel(kind, id string) string {
	return fmt.Sprintf("Unknown/Deleted %s %s", kind, id)
}

// ContactName resolves a contact id to its display name.
func (r *Resolver) ContactName(id string) string {
	if id == "" {
		return Unknown
	}
	if c, ok := r.contacts[id]; ok {
		return c.Name
	}
	return deletedLabel("Contact", id)
}

// PropertyName resolves a property id to its display name.
func (r *Resolver) PropertyName(id string) string {
	if id == "" {
		return Unknown
	}
	if p, ok := r.properties[id]; ok {
		return p.Name
	}
	return deletedLabel("Property", id)
}

// BuildingName resolves a building id to its display name.
func (r *Resolver) BuildingName(id string) string {
	if id == "" {
		return Unknown
	}
	if b, ok := r.buildings[id]; ok {
		return b.Name
	}
	return deletedLabel("Building", id)
}

// ProjectName resolves a project id to its display name.
func (r *Resolver) ProjectName(id string) string {
	if id == "" {
		return Unknown
	}
	if p, ok := r.projects[id]; ok {
		return p.Name
	}
	return deletedLabel("Project", id)
}

// CategoryName resolves a category id to its display name.
func (r *Resolver) CategoryName(id string) string {
	if id == "" {
		return Unknown
	}
	if c, ok := r.categories[id]; ok {
		return c.Name
	}
	return deletedLabel("Category", id)
}

// BuildingNameForTransaction resolves the building label for a
// transaction: an explicit building id wins, otherwise the chain
// transaction.PropertyID -> property.BuildingID -> building.Name.
func (r *Resolver) BuildingNameForTransaction(t models.Transaction) string {
	if t.BuildingID != "" {
		return r.BuildingName(t.BuildingID)
	}
	if t.PropertyID == "" {
		return Unknown
	}
	p, ok := r.properties[t.PropertyID]
	if !ok || p.BuildingID == "" {
		return Unknown
	}
	return r.BuildingName(p.BuildingID)
}

// OwnerForAgreement resolves the owner a report should attribute the
// agreement to: the stamped historical owner if present, otherwise the
// property's current owner.
func (r *Resolver) OwnerForAgreement(a models.RentalAgreement) (models.Contact, bool) {
	if a.OwnerID != "" {
		if c, ok := r.contacts[a.OwnerID]; ok {
			return c, true
		}
		return models.Contact{}, false
	}
	p, ok := r.properties[a.PropertyID]
	if !ok || p.OwnerID == "" {
		return models.Contact{}, false
	}
	c, ok := r.contacts[p.OwnerID]
	return c, ok
}

// OwnerNameForAgreement is OwnerForAgreement degraded to a label.
func (r *Resolver) OwnerNameForAgreement(a models.RentalAgreement) string {
	if c, ok := r.OwnerForAgreement(a); ok {
		return c.Name
	}
	if a.OwnerID != "" {
		return deletedLabel("Contact", a.OwnerID)
	}
	return Unknown
}

// Category returns the category record for an id, if present.
func (r *Resolver) Category(id string) (models.Category, bool) {
	c, ok := r.categories[id]
	return c, ok
}
