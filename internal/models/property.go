package models

// Building groups properties under one address.
type Building struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Property is a rentable unit. OwnerID points at the current owner; the
// ownership history lives on the agreements (RentalAgreement.OwnerID).
type Property struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	BuildingID string `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	ProjectID  string `json:"project_id,omitempty" yaml:"project_id,omitempty"`
}
