package models

// ContactType is the variant tag of a Contact. The role-specific fields
// on Contact are only meaningful for the matching type; call sites should
// go through the predicate methods rather than comparing tags directly.
type ContactType string

const (
	ContactOwner        ContactType = "OWNER"
	ContactTenant       ContactType = "TENANT"
	ContactVendor       ContactType = "VENDOR"
	ContactBroker       ContactType = "BROKER"
	ContactDealer       ContactType = "DEALER"
	ContactClient       ContactType = "CLIENT"
	ContactFriendFamily ContactType = "FRIEND_FAMILY"
)

// Contact is a party record tagged by Type. One collection serves every
// logical role (owners, tenants, vendors, brokers); the tag plus the
// predicates below replace the scattered type checks of the legacy model.
type Contact struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Type  ContactType `json:"type" yaml:"type"`
	Phone string      `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email string      `json:"email,omitempty" yaml:"email,omitempty"`

	// Owner/client variant fields.
	PayoutAccount string `json:"payout_account,omitempty" yaml:"payout_account,omitempty"`
	// Vendor variant fields.
	TaxID string `json:"tax_id,omitempty" yaml:"tax_id,omitempty"`
	// Broker variant fields.
	Agency string `json:"agency,omitempty" yaml:"agency,omitempty"`
}

// IsOwnerLike reports whether the contact can hold property and receive
// payouts. Clients are treated as owners throughout the application.
func (c Contact) IsOwnerLike() bool {
	return c.Type == ContactOwner || c.Type == ContactClient
}

// IsTenant reports whether the contact can be party to a rental agreement.
func (c Contact) IsTenant() bool {
	return c.Type == ContactTenant
}

// IsVendor reports whether the contact can be billed against.
func (c Contact) IsVendor() bool {
	return c.Type == ContactVendor || c.Type == ContactDealer
}

// IsBroker reports whether the contact can earn agreement commissions.
func (c Contact) IsBroker() bool {
	return c.Type == ContactBroker
}
