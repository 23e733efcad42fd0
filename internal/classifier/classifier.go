// Package classifier builds the category exclusion sets used for fee-base
// computation. A project's explicit configuration wins; projects saved
// before fee configuration existed fall back to a fixed list of legacy
// category names, and the PM-cost category is excluded from its own fee
// base in every case.
package classifier

import (
	"rentfolio/internal/models"
)

// LegacyExcludedCategoryNames is the exact name list the legacy data
// model excluded from fee bases before per-project configuration existed.
// Matching is by exact display name and must stay that way for saved data
// that predates system roles.
var LegacyExcludedCategoryNames = []string{
	"Broker Fee",
	"Rebate Amount",
	"Owner Payout",
	"Project Management Cost",
	"Customer Discount",
	"Floor Discount",
	"Lump Sum Discount",
	"Misc Discount",
}

// Set is a set of category ids.
type Set map[string]struct{}

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts an id.
func (s Set) Add(id string) {
	s[id] = struct{}{}
}

// PMCostCategory finds the category that records PM fee payments. The
// system role tag is authoritative; the legacy display name is the
// migration fallback for data saved before roles existed.
func PMCostCategory(categories []models.Category) (models.Category, bool) {
	for _, c := range categories {
		if c.Role == models.RolePMCost {
			return c, true
		}
	}
	for _, c := range categories {
		if c.Name == models.PMCostCategoryName {
			return c, true
		}
	}
	return models.Category{}, false
}

// ExcludedCategories produces the set of category ids excluded from the
// project's fee base:
//
//  1. a non-empty pmConfig.ExcludedCategoryIDs is used verbatim,
//  2. otherwise the legacy name list selects categories by exact name,
//  3. and the PM-cost category is always added on top, so a fee can never
//     accrue on its own payments.
func ExcludedCategories(project models.Project, categories []models.Category) Set {
	set := make(Set)

	if project.PMConfig != nil && len(project.PMConfig.ExcludedCategoryIDs) > 0 {
		for _, id := range project.PMConfig.ExcludedCategoryIDs {
			set.Add(id)
		}
	} else {
		legacy := make(map[string]struct{}, len(LegacyExcludedCategoryNames))
		for _, name := range LegacyExcludedCategoryNames {
			legacy[name] = struct{}{}
		}
		for _, c := range categories {
			if _, ok := legacy[c.Name]; ok {
				set.Add(c.ID)
			}
		}
	}

	if pm, ok := PMCostCategory(categories); ok {
		set.Add(pm.ID)
	}

	return set
}
