package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a persist id is unknown to the ledger.
var ErrNotFound = errors.New("entity not found on ledger")

// CreationError wraps the ledger error that caused an entity creation to
// fail. The original error is preserved unmodified for errors.Is/As.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("entity creation failed: %v", e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// TransferError wraps the ledger error that caused an entity transfer to
// fail.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("entity transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
