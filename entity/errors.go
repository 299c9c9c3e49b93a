package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coalaip/go-coalaip/ledger"
)

// ErrNotPersisted is returned when an operation requires a persist id that
// the entity does not have yet.
var ErrNotPersisted = errors.New("entity not yet persisted")

// ErrTransferOnly is returned by RightsAssignment.Create: assignments only
// come into existence as the byproduct of a right transfer.
var ErrTransferOnly = errors.New("rights assignments can only be persisted through transfer")

// AlreadyPersistedError reports a duplicate Create on an entity, carrying
// the persist id from the first creation.
type AlreadyPersistedError struct {
	PersistID string
}

func (e *AlreadyPersistedError) Error() string {
	return fmt.Sprintf("entity already persisted as %q", e.PersistID)
}

// IncompatibleLedgerError reports entities constructed against different
// ledger instances being used together.
type IncompatibleLedgerError struct {
	Ledgers []ledger.Ledger
}

func (e *IncompatibleLedgerError) Error() string {
	names := make([]string, len(e.Ledgers))
	for i, l := range e.Ledgers {
		names[i] = l.Type()
	}
	return fmt.Sprintf("entities use incompatible ledgers: %s", strings.Join(names, ", "))
}
