package state

import (
	"sync"

	"rentfolio/internal/logging"
)

// Store owns the application state and serializes mutations through
// Dispatch. There is no concurrent writer model in the application, but
// the mutex keeps the dispatcher safe if a second goroutine ever appears.
type Store struct {
	mu     sync.Mutex
	state  *AppState
	logger logging.Logger
}

// NewStore creates a Store around an initial state. A nil state starts
// empty.
func NewStore(initial *AppState, logger logging.Logger) *Store {
	if initial == nil {
		initial = &AppState{}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{state: initial, logger: logger}
}

// Snapshot returns a copy of the current state for reading. The copy
// shares backing slices with the live state, so appends made to a
// snapshot never reach the store; all writes go through Dispatch.
func (st *Store) Snapshot() *AppState {
	st.mu.Lock()
	defer st.mu.Unlock()
	snap := *st.state
	return &snap
}

// Dispatch validates and applies a single action. Failed actions leave
// the state unchanged and are logged at warn level.
func (st *Store) Dispatch(action Action) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := action.apply(st.state); err != nil {
		st.logger.WithError(err).Warn("Action rejected",
			logging.Field{Key: logging.FieldAction, Value: actionName(action)})
		return err
	}
	st.logger.Debug("Action applied",
		logging.Field{Key: logging.FieldAction, Value: actionName(action)})
	return nil
}

// actionName returns a short label for logging.
func actionName(a Action) string {
	switch a.(type) {
	case AddTransaction:
		return "add_transaction"
	case UpdateTransaction:
		return "update_transaction"
	case DeleteTransaction:
		return "delete_transaction"
	case UpdateProperty:
		return "update_property"
	case AddRentalAgreement:
		return "add_rental_agreement"
	case UpdateRentalAgreement:
		return "update_rental_agreement"
	case UpdateRecurringTemplate:
		return "update_recurring_template"
	case SetProjectPMConfig:
		return "set_project_pm_config"
	case AddInvoice:
		return "add_invoice"
	case AddBill:
		return "add_bill"
	case AddContact:
		return "add_contact"
	case AddCategory:
		return "add_category"
	default:
		return "unknown"
	}
}
