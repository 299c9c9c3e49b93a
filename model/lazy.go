package model

import (
	"context"
	"fmt"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/vocabulary"
)

// Lazy is a model whose data and id are absent until the first successful
// Load from a ledger. It is constructed with the expected type, context, and
// validator; loading verifies the persisted record against them and then
// freezes a backing Model. A second Load is a no-op.
type Lazy struct {
	ldType    string
	ldContext []any
	validator Validator

	loaded *Model
}

// NewLazy constructs a Lazy model with no data. When attrs.Data is non-nil
// the backing Model is built (and validated) immediately, which makes the
// lazy variant usable wherever construction-time data may or may not exist.
// attrs.ID is ignored; the id comes from the loaded record.
func NewLazy(attrs Attrs) (*Lazy, error) {
	ldContext, err := normalizeContext(attrs.Context)
	if err != nil {
		return nil, err
	}

	l := &Lazy{
		ldType:    attrs.Type,
		ldContext: ldContext,
		validator: attrs.Validator,
	}
	if attrs.Data != nil {
		loaded, err := New(Attrs{
			Data:      attrs.Data,
			Type:      attrs.Type,
			Context:   ldContext,
			Validator: attrs.Validator,
		})
		if err != nil {
			return nil, err
		}
		l.loaded = loaded
	}
	return l, nil
}

// Load populates the backing Model from the ledger record at persistID.
// A no-op once loaded. The loaded record's @type and @context must agree
// with the ones the Lazy was constructed with; the frozen Model keeps the
// constructed type and context, together with the loaded data and id.
func (l *Lazy) Load(ctx context.Context, ld ledger.Ledger, persistID string) error {
	if l.loaded != nil {
		return nil
	}

	payload, err := ld.Load(ctx, persistID)
	if err != nil {
		return err
	}

	extracted, err := dataformat.Extract(payload, "")
	if err != nil {
		return err
	}

	if extracted.Type != "" && extracted.Type != l.ldType {
		return &DataError{
			Field:  vocabulary.KeyType,
			Reason: fmt.Sprintf("loaded as %q, expected %q", extracted.Type, l.ldType),
		}
	}
	if extracted.Context != nil {
		loadedContext, err := normalizeContext(extracted.Context)
		if err != nil {
			return err
		}
		if !contextsEqual(loadedContext, l.ldContext) {
			return &DataError{
				Field:  vocabulary.KeyContext,
				Reason: fmt.Sprintf("loaded as %v, expected %v", loadedContext, l.ldContext),
			}
		}
	}

	loaded, err := New(Attrs{
		Data:      extracted.Data,
		Type:      l.ldType,
		Context:   l.ldContext,
		ID:        extracted.ID,
		Validator: l.validator,
	})
	if err != nil {
		return err
	}
	l.loaded = loaded
	return nil
}

// Data returns a copy of the loaded model data, or ErrNotLoaded before the
// first successful Load.
func (l *Lazy) Data() (map[string]any, error) {
	if l.loaded == nil {
		return nil, ErrNotLoaded
	}
	return l.loaded.Data()
}

// ID returns the loaded @id, or ErrNotLoaded before the first successful
// Load.
func (l *Lazy) ID() (string, error) {
	if l.loaded == nil {
		return "", ErrNotLoaded
	}
	return l.loaded.ID()
}

// Type returns the @type label the Lazy was constructed with.
func (l *Lazy) Type() string { return l.ldType }

// Context returns a copy of the @context sequence the Lazy was constructed
// with.
func (l *Lazy) Context() []any { return cloneContext(l.ldContext) }

// Validator returns the validator the Lazy was constructed with.
func (l *Lazy) Validator() Validator { return l.validator }

// Loaded reports whether the backing Model has been populated.
func (l *Lazy) Loaded() bool { return l.loaded != nil }

// Load on a plain Model is a no-op; the data was supplied at construction.
func (m *Model) Load(ctx context.Context, ld ledger.Ledger, persistID string) error {
	return nil
}
