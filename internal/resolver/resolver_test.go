package resolver

import (
	"testing"

	"rentfolio/internal/models"
	"rentfolio/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *state.AppState {
	return &state.AppState{
		Contacts: []models.Contact{
			{ID: "c-owner", Name: "Ada Property Holdings", Type: models.ContactOwner},
			{ID: "c-tenant", Name: "Grace H.", Type: models.ContactTenant},
		},
		Buildings: []models.Building{
			{ID: "b1", Name: "Riverside Block"},
		},
		Properties: []models.Property{
			{ID: "p1", Name: "Unit 4B", BuildingID: "b1", OwnerID: "c-owner"},
			{ID: "p2", Name: "Unit 7A"},
		},
		Projects: []models.Project{
			{ID: "proj", Name: "Riverside Refurb"},
		},
		Categories: []models.Category{
			{ID: "cat1", Name: "Maintenance"},
		},
	}
}

func TestResolver_KnownIDs(t *testing.T) {
	r := New(testState())
	assert.Equal(t, "Ada Property Holdings", r.ContactName("c-owner"))
	assert.Equal(t, "Unit 4B", r.PropertyName("p1"))
	assert.Equal(t, "Riverside Block", r.BuildingName("b1"))
	assert.Equal(t, "Riverside Refurb", r.ProjectName("proj"))
	assert.Equal(t, "Maintenance", r.CategoryName("cat1"))
}

func TestResolver_DanglingIDDegradesToSentinel(t *testing.T) {
	r := New(testState())
	// Deleted entities must not crash a report, only degrade the label.
	assert.Equal(t, "Unknown/Deleted Contact ghost", r.ContactName("ghost"))
	assert.Equal(t, "Unknown/Deleted Property ghost", r.PropertyName("ghost"))
	assert.Equal(t, "Unknown/Deleted Category ghost", r.CategoryName("ghost"))
}

func TestResolver_EmptyIDIsUnknown(t *testing.T) {
	r := New(testState())
	assert.Equal(t, Unknown, r.ContactName(""))
	assert.Equal(t, Unknown, r.BuildingName(""))
}

func TestResolver_BuildingChain(t *testing.T) {
	r := New(testState())

	viaProperty := models.Transaction{ID: "t1", PropertyID: "p1"}
	assert.Equal(t, "Riverside Block", r.BuildingNameForTransaction(viaProperty))

	explicit := models.Transaction{ID: "t2", BuildingID: "b1", PropertyID: "p2"}
	assert.Equal(t, "Riverside Block", r.BuildingNameForTransaction(explicit))

	noBuilding := models.Transaction{ID: "t3", PropertyID: "p2"}
	assert.Equal(t, Unknown, r.BuildingNameForTransaction(noBuilding))
}

func TestResolver_OwnerForAgreement(t *testing.T) {
	s := testState()
	s.Contacts = append(s.Contacts, models.Contact{ID: "c-old", Name: "Previous Owner", Type: models.ContactOwner})
	r := New(s)

	// A stamped historical owner wins over the property's current owner.
	stamped := models.RentalAgreement{ID: "a1", PropertyID: "p1", OwnerID: "c-old"}
	owner, ok := r.OwnerForAgreement(stamped)
	require.True(t, ok)
	assert.Equal(t, "Previous Owner", owner.Name)

	// Without a stamp, attribution follows the property record.
	unstamped := models.RentalAgreement{ID: "a2", PropertyID: "p1"}
	owner, ok = r.OwnerForAgreement(unstamped)
	require.True(t, ok)
	assert.Equal(t, "Ada Property Holdings", owner.Name)

	// Stamped with a deleted contact: degraded label, no crash.
	ghost := models.RentalAgreement{ID: "a3", PropertyID: "p1", OwnerID: "ghost"}
	_, ok = r.OwnerForAgreement(ghost)
	assert.False(t, ok)
	assert.Equal(t, "Unknown/Deleted Contact ghost", r.OwnerNameForAgreement(ghost))
}
