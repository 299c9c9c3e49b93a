// Package ledger defines the persistence collaborator contract that the
// COALA IP entity core depends on but does not implement. A Ledger is
// injected into entities and the orchestrator; every call is a single
// blocking pass-through with no caching or retries.
package ledger

import "context"

// OwnershipEvent is one entry in an entity's ownership history.
type OwnershipEvent struct {
	// User is the owner at this point in the history, in whatever shape the
	// ledger implementation uses for users.
	User any `json:"user"`

	// EventID references the ledger event (e.g. a transfer) that produced
	// this entry.
	EventID string `json:"event_id"`
}

// Ledger is the injected persistence backend. Implementations decide what a
// user looks like, what a status is, and how payloads are stored; this core
// treats all of those as opaque.
//
// Implementations must be safe for concurrent use if callers share one
// Ledger between entities.
type Ledger interface {
	// Type names the ledger implementation (e.g. "bigchaindb", "memory").
	Type() string

	// GenerateUser creates a new user on the ledger. The argument list is
	// implementation-specific.
	GenerateUser(ctx context.Context, args ...any) (any, error)

	// IsSameUser reports whether two user representations denote the same
	// user.
	IsSameUser(a, b any) bool

	// GetHistory returns the ownership history of a persisted entity,
	// oldest first. Fails with ErrNotFound for an unknown id.
	GetHistory(ctx context.Context, persistID string) ([]OwnershipEvent, error)

	// GetStatus returns the opaque status of a persisted entity. Fails with
	// ErrNotFound for an unknown id.
	GetStatus(ctx context.Context, persistID string) (any, error)

	// Save persists an entity payload under the given user and returns the
	// new persist id.
	Save(ctx context.Context, payload map[string]any, user any) (string, error)

	// Load returns the stored payload of a persisted entity. Fails with
	// ErrNotFound for an unknown id.
	Load(ctx context.Context, persistID string) (map[string]any, error)

	// Transfer moves a persisted entity from one user to another, recording
	// the given payload, and returns the id of the transfer action.
	Transfer(ctx context.Context, persistID string, payload map[string]any, fromUser, toUser any) (string, error)
}
