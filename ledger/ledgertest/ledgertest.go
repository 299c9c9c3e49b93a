// Package ledgertest provides an in-memory Ledger for tests: ids are
// scriptable, failures injectable, and every save and transfer call is
// recorded for inspection.
package ledgertest

import (
	"context"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/coalaip/go-coalaip/ledger"
)

// SaveCall records one Save invocation.
type SaveCall struct {
	Payload map[string]any
	User    any
}

// TransferCall records one Transfer invocation.
type TransferCall struct {
	PersistID string
	Payload   map[string]any
	From      any
	To        any
}

// Ledger is an in-memory ledger.Ledger. The zero value is not usable; use
// New. Exported fields may be set before use to script ids and inject
// failures.
type Ledger struct {
	mu      sync.Mutex
	records map[string]map[string]any
	history map[string][]ledger.OwnershipEvent
	status  map[string]any

	// SaveIDs and TransferIDs are consumed in order by Save and Transfer;
	// once exhausted, random uuids are issued.
	SaveIDs     []string
	TransferIDs []string

	// SaveErr, LoadErr, and TransferErr, when set, fail the corresponding
	// operation with exactly that error. FailSavesAfter delays SaveErr
	// until that many saves have succeeded.
	SaveErr        error
	FailSavesAfter int
	LoadErr        error
	TransferErr    error

	// SameUser overrides the IsSameUser comparison; nil compares with
	// reflect.DeepEqual.
	SameUser func(a, b any) bool

	// SaveCalls and TransferCalls record every invocation, in order.
	SaveCalls     []SaveCall
	TransferCalls []TransferCall
}

// New returns an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{
		records: map[string]map[string]any{},
		history: map[string][]ledger.OwnershipEvent{},
		status:  map[string]any{},
	}
}

var _ ledger.Ledger = (*Ledger)(nil)

func (l *Ledger) Type() string { return "memory" }

// GenerateUser returns a fresh opaque user record.
func (l *Ledger) GenerateUser(ctx context.Context, args ...any) (any, error) {
	return map[string]any{"id": uuid.NewString()}, nil
}

func (l *Ledger) IsSameUser(a, b any) bool {
	if l.SameUser != nil {
		return l.SameUser(a, b)
	}
	return reflect.DeepEqual(a, b)
}

func (l *Ledger) Save(ctx context.Context, payload map[string]any, user any) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.SaveCalls = append(l.SaveCalls, SaveCall{Payload: maps.Clone(payload), User: user})
	if l.SaveErr != nil && len(l.SaveCalls) > l.FailSavesAfter {
		return "", l.SaveErr
	}

	id := uuid.NewString()
	if len(l.SaveIDs) > 0 {
		id, l.SaveIDs = l.SaveIDs[0], l.SaveIDs[1:]
	}
	l.records[id] = maps.Clone(payload)
	l.history[id] = []ledger.OwnershipEvent{{User: user, EventID: "create:" + id}}
	l.status[id] = "valid"
	return id, nil
}

func (l *Ledger) Load(ctx context.Context, persistID string) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.LoadErr != nil {
		return nil, l.LoadErr
	}
	record, ok := l.records[persistID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return maps.Clone(record), nil
}

func (l *Ledger) Transfer(ctx context.Context, persistID string, payload map[string]any, fromUser, toUser any) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.TransferCalls = append(l.TransferCalls, TransferCall{
		PersistID: persistID,
		Payload:   maps.Clone(payload),
		From:      fromUser,
		To:        toUser,
	})
	if l.TransferErr != nil {
		return "", l.TransferErr
	}
	if _, ok := l.records[persistID]; !ok {
		return "", ledger.ErrNotFound
	}

	id := uuid.NewString()
	if len(l.TransferIDs) > 0 {
		id, l.TransferIDs = l.TransferIDs[0], l.TransferIDs[1:]
	}
	l.history[persistID] = append(l.history[persistID], ledger.OwnershipEvent{User: toUser, EventID: id})
	return id, nil
}

func (l *Ledger) GetHistory(ctx context.Context, persistID string) ([]ledger.OwnershipEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	history, ok := l.history[persistID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return slices.Clone(history), nil
}

func (l *Ledger) GetStatus(ctx context.Context, persistID string) (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	status, ok := l.status[persistID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return status, nil
}

// Put seeds a record (and a creation history entry for owner) directly,
// bypassing Save, so lazy-load paths can be exercised.
func (l *Ledger) Put(persistID string, payload map[string]any, owner any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[persistID] = maps.Clone(payload)
	l.history[persistID] = []ledger.OwnershipEvent{{User: owner, EventID: "create:" + persistID}}
	l.status[persistID] = "valid"
}

// SetHistory replaces the ownership history of a record.
func (l *Ledger) SetHistory(persistID string, events []ledger.OwnershipEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history[persistID] = slices.Clone(events)
}
