// Package transfer implements the property ownership transfer workflow:
// a fixed sequence of dispatched actions that re-homes a property with a
// new owner while preserving historical owner attribution on its rental
// agreements.
package transfer

import (
	"fmt"

	"rentfolio/internal/logging"
	"rentfolio/internal/models"
	"rentfolio/internal/state"

	"github.com/shopspring/decimal"
)

// Result describes what a transfer changed and what remains for the user
// to do by hand.
type Result struct {
	PropertyID             string
	OldOwnerID             string
	NewOwnerID             string
	RenewedAgreementIDs    []string
	NewAgreementIDs        []string
	BackfilledAgreementIDs []string
	DeactivatedTemplateIDs []string

	// DepositFollowUpNeeded flags that security deposits are held under
	// the old owner. Moving deposit funds between owners is a deliberate
	// manual step; the system never moves money on its own.
	DepositFollowUpNeeded bool
	DepositTotal          decimal.Decimal
}

// TransferOwnership moves a property to a new owner. With renewAgreements
// set, every ACTIVE agreement is closed as RENEWED (stamped with the old
// owner) and replaced by a fresh ACTIVE agreement under the new owner;
// recurring invoice templates on the closed agreements are deactivated.
// Every agreement without an explicit owner is back-filled with the old
// owner id exactly once, so repeating a transfer never rewrites history.
//
// The ordering is load-bearing: the old owner id is captured before the
// property record is mutated, and agreements are stamped afterwards.
func TransferOwnership(store *state.Store, propertyID, newOwnerID string, renewAgreements bool, logger logging.Logger) (Result, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	snapshot := store.Snapshot()

	property, ok := snapshot.PropertyByID(propertyID)
	if !ok {
		return Result{}, fmt.Errorf("property not found: %s", propertyID)
	}
	if _, ok := snapshot.ContactByID(newOwnerID); !ok {
		return Result{}, fmt.Errorf("new owner not found: %s", newOwnerID)
	}

	// Step 1: capture the old owner before anything is mutated.
	oldOwnerID := property.OwnerID
	result := Result{
		PropertyID:   propertyID,
		OldOwnerID:   oldOwnerID,
		NewOwnerID:   newOwnerID,
		DepositTotal: decimal.Zero,
	}
	agreements := snapshot.AgreementsForProperty(propertyID)

	// Step 2: mutate the property record.
	property.OwnerID = newOwnerID
	if err := store.Dispatch(state.UpdateProperty{Property: property}); err != nil {
		return Result{}, fmt.Errorf("updating property owner: %w", err)
	}

	// Step 3: stamp and renew agreements.
	for _, a := range agreements {
		switch {
		case a.Status == models.AgreementActive && renewAgreements:
			if err := renewAgreement(store, a, oldOwnerID, newOwnerID, &result, logger); err != nil {
				return result, err
			}
		case a.OwnerID == "":
			// Backfill, applied only when unset. Active agreements keep
			// running under the old owner's stamp when renewal is off.
			a.OwnerID = oldOwnerID
			if err := store.Dispatch(state.UpdateRentalAgreement{Agreement: a}); err != nil {
				return result, fmt.Errorf("backfilling agreement %s: %w", a.ID, err)
			}
			result.BackfilledAgreementIDs = append(result.BackfilledAgreementIDs, a.ID)
		}
	}

	if result.DepositFollowUpNeeded {
		logger.Warn("Security deposits held under previous owner require manual transfer",
			logging.Field{Key: logging.FieldProperty, Value: propertyID},
			logging.Field{Key: "deposit_total", Value: result.DepositTotal.String()})
	}

	logger.Info("Ownership transfer complete",
		logging.Field{Key: logging.FieldProperty, Value: propertyID},
		logging.Field{Key: logging.FieldOwner, Value: newOwnerID},
		logging.Field{Key: "renewed", Value: len(result.RenewedAgreementIDs)},
		logging.Field{Key: "backfilled", Value: len(result.BackfilledAgreementIDs)})

	return result, nil
}

// renewAgreement closes one active agreement under the old owner and
// opens its successor under the new owner.
func renewAgreement(store *state.Store, a models.RentalAgreement, oldOwnerID, newOwnerID string, result *Result, logger logging.Logger) error {
	closed := a
	closed.Status = models.AgreementRenewed
	if closed.OwnerID == "" {
		closed.OwnerID = oldOwnerID
	}
	if err := store.Dispatch(state.UpdateRentalAgreement{Agreement: closed}); err != nil {
		return fmt.Errorf("renewing agreement %s: %w", a.ID, err)
	}
	result.RenewedAgreementIDs = append(result.RenewedAgreementIDs, a.ID)

	for _, tmpl := range store.Snapshot().TemplatesForAgreement(a.ID) {
		if !tmpl.Active {
			continue
		}
		tmpl.Active = false
		if err := store.Dispatch(state.UpdateRecurringTemplate{Template: tmpl}); err != nil {
			return fmt.Errorf("deactivating template %s: %w", tmpl.ID, err)
		}
		result.DeactivatedTemplateIDs = append(result.DeactivatedTemplateIDs, tmpl.ID)
	}

	successor := models.RentalAgreement{
		ID:              state.NewID(),
		AgreementNumber: store.Snapshot().NextAgreementNumber(),
		PropertyID:      a.PropertyID,
		TenantID:        a.TenantID,
		Status:          models.AgreementActive,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		MonthlyRent:     a.MonthlyRent,
		BrokerID:        a.BrokerID,
		BrokerFee:       a.BrokerFee,
		SecurityDeposit: a.SecurityDeposit,
		OwnerID:         newOwnerID,
		Description:     fmt.Sprintf("Renewal of %s on ownership transfer", a.AgreementNumber),
	}
	if err := store.Dispatch(state.AddRentalAgreement{Agreement: successor}); err != nil {
		return fmt.Errorf("creating successor for agreement %s: %w", a.ID, err)
	}
	result.NewAgreementIDs = append(result.NewAgreementIDs, successor.ID)

	if a.SecurityDeposit.IsPositive() {
		result.DepositFollowUpNeeded = true
		result.DepositTotal = result.DepositTotal.Add(a.SecurityDeposit)
	}

	logger.Debug("Agreement renewed under new owner",
		logging.Field{Key: logging.FieldAgreement, Value: a.ID},
		logging.Field{Key: "successor", Value: successor.ID})
	return nil
}
