package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent and filterable across packages.
const (
	FieldError     = "error"
	FieldCount     = "count"
	FieldFile      = "file_path"
	FieldOperation = "operation"
	FieldProject   = "project_id"
	FieldProperty  = "property_id"
	FieldOwner     = "owner_id"
	FieldContact   = "contact_id"
	FieldAgreement = "agreement_id"
	FieldCategory  = "category_id"
	FieldReport    = "report"
	FieldAction    = "action"
)
