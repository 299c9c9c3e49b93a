package entity

import (
	"context"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/ledger"
)

// Transferable is the capability of entity kinds whose ownership can move
// between users. Only Right and Copyright implement it; calling Transfer on
// any other kind is a compile error, not a runtime check.
type Transferable interface {
	Transfer(ctx context.Context, assignmentData map[string]any, fromUser, toUser any, format dataformat.Format) (*RightsAssignment, error)
	PersistID() string
	Ledger() ledger.Ledger
	CurrentOwner(ctx context.Context) (any, error)
}

var (
	_ Transferable = (*Right)(nil)
	_ Transferable = (*Copyright)(nil)
)

// Transfer moves this right from fromUser to toUser on the ledger. The
// resulting RightsAssignment is built from assignmentData (the empty
// mapping when nil), serialized in the given format (empty defaults to
// jsonld), and recorded as the transfer payload; its persist id is the
// ledger's transfer id.
//
// Fails with ErrNotPersisted when the right has no persist id, and with a
// *ledger.TransferError wrapping the ledger's error on failure.
func (r *Right) Transfer(ctx context.Context, assignmentData map[string]any, fromUser, toUser any, format dataformat.Format) (*RightsAssignment, error) {
	if r.persistID == "" {
		return nil, ErrNotPersisted
	}
	if assignmentData == nil {
		assignmentData = map[string]any{}
	}

	assignment, err := RightsAssignmentFromData(r.ledger, assignmentData, "")
	if err != nil {
		return nil, err
	}
	payload, err := assignment.toFormat(ctx, format)
	if err != nil {
		return nil, err
	}

	transferID, err := r.ledger.Transfer(ctx, r.persistID, payload, fromUser, toUser)
	if err != nil {
		return nil, &ledger.TransferError{Err: err}
	}
	assignment.persistID = transferID
	return assignment, nil
}
