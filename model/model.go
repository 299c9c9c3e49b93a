// Package model provides the immutable data models backing COALA IP
// entities: the plain Model, its lazily loaded variant, and the structural
// validators for the built-in entity kinds.
package model

import "maps"

// Validator is a predicate over candidate model data. It returns a
// *DataError describing the violation, or nil when the data is acceptable.
type Validator func(data map[string]any) error

// Attrs collects the fields of a model under construction.
type Attrs struct {
	// Data is the plain model data, without linked-data metadata keys.
	Data map[string]any

	// Type is the @type label of the entity.
	Type string

	// Context is the @context value: a string URL, a sequence of strings or
	// mappings, or a single mapping. Nil selects the default context.
	Context any

	// ID is the @id of the entity. Empty refers to the current document.
	ID string

	// Validator checks Data during construction. Nil accepts anything.
	Validator Validator
}

// Model is the immutable (data, type, context, id, validator) tuple backing
// an entity. The data is copied on construction and on every read, so no
// caller can mutate the stored record through a shared reference.
type Model struct {
	data      map[string]any
	ldType    string
	ldContext []any
	ldID      string
	validator Validator
}

// New constructs a Model from attrs. Construction fails with the
// validator's *DataError when attrs.Data does not validate, and with a
// *DataError on an unusable @context value.
func New(attrs Attrs) (*Model, error) {
	ldContext, err := normalizeContext(attrs.Context)
	if err != nil {
		return nil, err
	}

	data := maps.Clone(attrs.Data)
	if data == nil {
		data = map[string]any{}
	}
	if attrs.Validator != nil {
		if err := attrs.Validator(data); err != nil {
			return nil, err
		}
	}

	return &Model{
		data:      data,
		ldType:    attrs.Type,
		ldContext: ldContext,
		ldID:      attrs.ID,
		validator: attrs.Validator,
	}, nil
}

// Data returns a copy of the model data. The error is always nil on a plain
// Model; the signature matches the lazy variant so entities can hold either.
func (m *Model) Data() (map[string]any, error) {
	return maps.Clone(m.data), nil
}

// ID returns the @id of the entity. The error is always nil on a plain
// Model.
func (m *Model) ID() (string, error) { return m.ldID, nil }

// Type returns the @type label of the entity.
func (m *Model) Type() string { return m.ldType }

// Context returns a copy of the @context sequence.
func (m *Model) Context() []any { return cloneContext(m.ldContext) }

// Validator returns the validator the model was constructed with.
func (m *Model) Validator() Validator { return m.validator }

// Loaded always reports true on a plain Model.
func (m *Model) Loaded() bool { return true }
