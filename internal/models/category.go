package models

// SystemRole tags categories that the application itself depends on.
// Roles are resolved once at data-load time so that classification never
// needs to compare display names at query time. Name matching survives
// only as a migration fallback for data saved before roles existed.
type SystemRole string

const (
	// RoleNone marks an ordinary user-defined category.
	RoleNone SystemRole = ""
	// RolePMCost marks the category that records project-management fee
	// payments. It is always excluded from its own fee base.
	RolePMCost SystemRole = "PM_COST"
	// RoleBrokerFee marks the broker commission category.
	RoleBrokerFee SystemRole = "BROKER_FEE"
	// RoleOwnerPayout marks the owner disbursement category.
	RoleOwnerPayout SystemRole = "OWNER_PAYOUT"
	// RoleSecurityDeposit marks the deposit holding category.
	RoleSecurityDeposit SystemRole = "SECURITY_DEPOSIT"
)

// PMCostCategoryName is the display name the legacy data model used to
// identify the PM cost category before SystemRole existed.
const PMCostCategoryName = "Project Management Cost"

// Category is a node in the chart of accounts. Balances are derived by
// summing matching transactions and are never stored on the node.
type Category struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	ParentID string          `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Kind     TransactionType `json:"kind" yaml:"kind"`
	Role     SystemRole      `json:"role,omitempty" yaml:"role,omitempty"`
}

// IsSystem returns true when the category carries a system role.
func (c Category) IsSystem() bool {
	return c.Role != RoleNone
}
