package models

import "github.com/shopspring/decimal"

// PMConfig governs project-management fee accrual for a project.
// An empty ExcludedCategoryIDs list falls back to the legacy
// name-matched exclusion set (see internal/classifier).
type PMConfig struct {
	Rate                decimal.Decimal `json:"rate" yaml:"rate"`
	Frequency           string          `json:"frequency" yaml:"frequency"`
	ExcludedCategoryIDs []string        `json:"excluded_category_ids,omitempty" yaml:"excluded_category_ids,omitempty"`
	VendorID            string          `json:"vendor_id,omitempty" yaml:"vendor_id,omitempty"`
}

// Project groups transactions, invoices and bills for fee accrual and
// reporting. PMConfig is nil when no fee arrangement has been configured.
type Project struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	PMConfig *PMConfig `json:"pm_config,omitempty" yaml:"pm_config,omitempty"`
}

// FeeRate returns the configured PM fee rate, or zero when the project
// has no fee configuration.
func (p Project) FeeRate() decimal.Decimal {
	if p.PMConfig == nil {
		return decimal.Zero
	}
	return p.PMConfig.Rate
}
