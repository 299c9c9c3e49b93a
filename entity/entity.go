// Package entity implements the COALA IP entity hierarchy: Work,
// Manifestation, Right, Copyright, and RightsAssignment. Each entity wraps
// an immutable model, a persist id set at most once, and an injected ledger,
// and serializes to the json, jsonld, and ipld wire formats.
package entity

import (
	"context"
	"errors"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/model"
	"github.com/coalaip/go-coalaip/vocabulary"
)

// modelState is the slice of model.Model and model.Lazy that entities rely
// on. Load is a no-op on a plain model.
type modelState interface {
	Type() string
	Context() []any
	Validator() model.Validator
	Data() (map[string]any, error)
	ID() (string, error)
	Loaded() bool
	Load(ctx context.Context, ld ledger.Ledger, persistID string) error
}

// base carries the state and behaviour shared by every entity kind. The
// persist id is written at most once: either during construction from a
// known id, or by the first successful Create or Transfer. After that write
// no code path mutates it again.
type base struct {
	kind      kind
	state     modelState
	ledger    ledger.Ledger
	persistID string
}

func fromData(k kind, l ledger.Ledger, raw map[string]any, format dataformat.Format) (base, error) {
	if l == nil {
		return base{}, errors.New("entity requires a ledger")
	}
	if format == "" {
		format = dataformat.JSONLD
	}

	extracted, err := dataformat.Extract(raw, format)
	if err != nil {
		return base{}, err
	}

	ldType := k.typeLabel
	if !k.strictType && extracted.Type != "" {
		ldType = extracted.Type
	}
	ldContext := any(k.context())
	if extracted.Context != nil {
		ldContext = extracted.Context
	}

	m, err := model.New(model.Attrs{
		Data:      extracted.Data,
		Type:      ldType,
		Context:   ldContext,
		ID:        extracted.ID,
		Validator: k.validator,
	})
	if err != nil {
		return base{}, err
	}
	return base{kind: k, state: m, ledger: l}, nil
}

func fromPersistID(k kind, l ledger.Ledger, persistID string) (base, error) {
	if l == nil {
		return base{}, errors.New("entity requires a ledger")
	}
	lazy, err := model.NewLazy(model.Attrs{
		Type:      k.typeLabel,
		Context:   k.context(),
		Validator: k.validator,
	})
	if err != nil {
		return base{}, err
	}
	return base{kind: k, state: lazy, ledger: l, persistID: persistID}, nil
}

// PersistID returns the id of the entity on the ledger. Empty means the
// entity has not been persisted.
func (b *base) PersistID() string { return b.persistID }

// Ledger returns the ledger the entity was constructed against.
func (b *base) Ledger() ledger.Ledger { return b.ledger }

// Type returns the @type label of the entity.
func (b *base) Type() string { return b.state.Type() }

// Context returns a copy of the entity's @context sequence.
func (b *base) Context() []any { return b.state.Context() }

// Load fetches the entity's data from the ledger. Fails with
// ErrNotPersisted when the entity has no persist id; a no-op for entities
// built from data and for already-loaded entities.
func (b *base) Load(ctx context.Context) error {
	if b.persistID == "" {
		return ErrNotPersisted
	}
	return b.state.Load(ctx, b.ledger, b.persistID)
}

// Data returns a copy of the entity's plain data, without linked-data
// metadata. The first access on an entity built from a persist id loads the
// data from the ledger.
func (b *base) Data(ctx context.Context) (map[string]any, error) {
	data, err := b.state.Data()
	if errors.Is(err, model.ErrNotLoaded) {
		if err := b.Load(ctx); err != nil {
			return nil, err
		}
		data, err = b.state.Data()
	}
	return data, err
}

// Create persists the entity on the ledger under user and records the
// returned persist id. Fails with an *AlreadyPersistedError (carrying the
// existing id, without touching the ledger) on a second call, and with a
// *ledger.CreationError wrapping the ledger's error on failure. An empty
// format defaults to jsonld.
func (b *base) Create(ctx context.Context, user any, format dataformat.Format) (string, error) {
	if b.persistID != "" {
		return "", &AlreadyPersistedError{PersistID: b.persistID}
	}

	payload, err := b.toFormat(ctx, format)
	if err != nil {
		return "", err
	}
	persistID, err := b.ledger.Save(ctx, payload, user)
	if err != nil {
		return "", &ledger.CreationError{Err: err}
	}
	b.persistID = persistID
	return persistID, nil
}

// Status returns the ledger status of the entity, or nil when the entity is
// not persisted.
func (b *base) Status(ctx context.Context) (any, error) {
	if b.persistID == "" {
		return nil, nil
	}
	return b.ledger.GetStatus(ctx, b.persistID)
}

// History returns the ownership history of the entity, oldest first, or nil
// when the entity is not persisted.
func (b *base) History(ctx context.Context) ([]ledger.OwnershipEvent, error) {
	if b.persistID == "" {
		return nil, nil
	}
	return b.ledger.GetHistory(ctx, b.persistID)
}

// CurrentOwner returns the user of the last ownership event, or nil when
// the history is empty.
func (b *base) CurrentOwner(ctx context.Context) (any, error) {
	history, err := b.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	return history[len(history)-1].User, nil
}

// ToJSON serializes the entity in the plain-object format: its data plus
// the type under "type".
func (b *base) ToJSON(ctx context.Context) (map[string]any, error) {
	data, err := b.Data(ctx)
	if err != nil {
		return nil, err
	}
	data[vocabulary.KeyPlainType] = b.state.Type()
	return data, nil
}

// ToJSONLD serializes the entity in the linked-data format: its data plus
// @context, @type, and @id. An empty @id refers to the current document.
func (b *base) ToJSONLD(ctx context.Context) (map[string]any, error) {
	data, err := b.Data(ctx)
	if err != nil {
		return nil, err
	}
	id, err := b.state.ID()
	if err != nil {
		return nil, err
	}
	data[vocabulary.KeyContext] = b.state.Context()
	data[vocabulary.KeyType] = b.state.Type()
	data[vocabulary.KeyID] = id
	return data, nil
}

// ToIPLD fails with dataformat.ErrNotImplemented; the content-addressed
// format is recognised but unsupported.
func (b *base) ToIPLD(ctx context.Context) (map[string]any, error) {
	return nil, dataformat.ErrNotImplemented
}

func (b *base) toFormat(ctx context.Context, format dataformat.Format) (map[string]any, error) {
	if format == "" {
		format = dataformat.JSONLD
	}
	switch format {
	case dataformat.JSONLD:
		return b.ToJSONLD(ctx)
	case dataformat.JSON:
		return b.ToJSON(ctx)
	case dataformat.IPLD:
		return b.ToIPLD(ctx)
	default:
		return nil, &dataformat.InvalidFormatError{Format: format}
	}
}
