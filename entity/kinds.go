package entity

import (
	"context"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/model"
	"github.com/coalaip/go-coalaip/vocabulary"
)

// kind is the static configuration of an entity variant: its type label,
// whether that label is fixed (a supplied @type is ignored) or only a
// default, its context, and its validator. The variant set is closed.
type kind struct {
	name       string
	typeLabel  string
	strictType bool
	context    func() []any
	validator  model.Validator
}

var (
	workKind = kind{
		name:       "Work",
		typeLabel:  vocabulary.TypeWork,
		strictType: true,
		context:    vocabulary.DomainContext,
		validator:  model.IsWork,
	}
	manifestationKind = kind{
		name:      "Manifestation",
		typeLabel: vocabulary.TypeManifestation,
		context:   vocabulary.DefaultContext,
		validator: model.IsManifestation,
	}
	rightKind = kind{
		name:      "Right",
		typeLabel: vocabulary.TypeRight,
		context:   vocabulary.DomainContext,
		validator: model.IsRight,
	}
	copyrightKind = kind{
		name:       "Copyright",
		typeLabel:  vocabulary.TypeCopyright,
		strictType: true,
		context:    vocabulary.DomainContext,
		validator:  model.IsCopyright,
	}
	rightsAssignmentKind = kind{
		name:       "RightsAssignment",
		typeLabel:  vocabulary.TypeRightsAssignment,
		strictType: true,
		context:    vocabulary.DomainContext,
	}
)

// Work is a distinct, abstract creation whose existence is revealed through
// one or more Manifestations. Always of @type "AbstractWork".
type Work struct {
	base
}

// WorkFromData builds an unpersisted Work from raw data in the given wire
// format (empty defaults to jsonld).
func WorkFromData(l ledger.Ledger, raw map[string]any, format dataformat.Format) (*Work, error) {
	b, err := fromData(workKind, l, raw, format)
	if err != nil {
		return nil, err
	}
	return &Work{b}, nil
}

// WorkFromPersistID builds a Work marked persisted at the given id, with
// lazily loaded data. With forceLoad the data is fetched immediately.
func WorkFromPersistID(ctx context.Context, l ledger.Ledger, persistID string, forceLoad bool) (*Work, error) {
	b, err := fromPersistID(workKind, l, persistID)
	if err != nil {
		return nil, err
	}
	w := &Work{b}
	if forceLoad {
		if err := w.Load(ctx); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Manifestation is a perceivable manifestation of a Work. By default of
// @type "CreativeWork"; the supplied @type wins when given.
type Manifestation struct {
	base
}

// ManifestationFromData builds an unpersisted Manifestation from raw data
// in the given wire format (empty defaults to jsonld).
func ManifestationFromData(l ledger.Ledger, raw map[string]any, format dataformat.Format) (*Manifestation, error) {
	b, err := fromData(manifestationKind, l, raw, format)
	if err != nil {
		return nil, err
	}
	return &Manifestation{b}, nil
}

// ManifestationFromPersistID builds a Manifestation marked persisted at the
// given id, with lazily loaded data.
func ManifestationFromPersistID(ctx context.Context, l ledger.Ledger, persistID string, forceLoad bool) (*Manifestation, error) {
	b, err := fromPersistID(manifestationKind, l, persistID)
	if err != nil {
		return nil, err
	}
	m := &Manifestation{b}
	if forceLoad {
		if err := m.Load(ctx); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Right is a statement of entitlement to do something in relation to a Work
// or Manifestation. Transferable. By default of @type "Right"; more
// specific right types may override it.
type Right struct {
	base
}

// RightFromData builds an unpersisted Right from raw data in the given wire
// format (empty defaults to jsonld).
func RightFromData(l ledger.Ledger, raw map[string]any, format dataformat.Format) (*Right, error) {
	b, err := fromData(rightKind, l, raw, format)
	if err != nil {
		return nil, err
	}
	return &Right{b}, nil
}

// RightFromPersistID builds a Right marked persisted at the given id, with
// lazily loaded data.
func RightFromPersistID(ctx context.Context, l ledger.Ledger, persistID string, forceLoad bool) (*Right, error) {
	b, err := fromPersistID(rightKind, l, persistID)
	if err != nil {
		return nil, err
	}
	r := &Right{b}
	if forceLoad {
		if err := r.Load(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Copyright is the full entitlement of copyright to a Work or
// Manifestation. Transferable. Always of @type "Copyright".
type Copyright struct {
	Right
}

// CopyrightFromData builds an unpersisted Copyright from raw data in the
// given wire format (empty defaults to jsonld).
func CopyrightFromData(l ledger.Ledger, raw map[string]any, format dataformat.Format) (*Copyright, error) {
	b, err := fromData(copyrightKind, l, raw, format)
	if err != nil {
		return nil, err
	}
	return &Copyright{Right{b}}, nil
}

// CopyrightFromPersistID builds a Copyright marked persisted at the given
// id, with lazily loaded data.
func CopyrightFromPersistID(ctx context.Context, l ledger.Ledger, persistID string, forceLoad bool) (*Copyright, error) {
	b, err := fromPersistID(copyrightKind, l, persistID)
	if err != nil {
		return nil, err
	}
	c := &Copyright{Right{b}}
	if forceLoad {
		if err := c.Load(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RightsAssignment records the assignment of a Right to someone. Always of
// @type "RightsTransferAction". Assignments are never created directly;
// they are only produced by Right.Transfer.
type RightsAssignment struct {
	base
}

// RightsAssignmentFromData builds an unpersisted RightsAssignment from raw
// data in the given wire format (empty defaults to jsonld).
func RightsAssignmentFromData(l ledger.Ledger, raw map[string]any, format dataformat.Format) (*RightsAssignment, error) {
	b, err := fromData(rightsAssignmentKind, l, raw, format)
	if err != nil {
		return nil, err
	}
	return &RightsAssignment{b}, nil
}

// RightsAssignmentFromPersistID builds a RightsAssignment marked persisted
// at the given id, with lazily loaded data.
func RightsAssignmentFromPersistID(ctx context.Context, l ledger.Ledger, persistID string, forceLoad bool) (*RightsAssignment, error) {
	b, err := fromPersistID(rightsAssignmentKind, l, persistID)
	if err != nil {
		return nil, err
	}
	ra := &RightsAssignment{b}
	if forceLoad {
		if err := ra.Load(ctx); err != nil {
			return nil, err
		}
	}
	return ra, nil
}

// Create on a RightsAssignment always fails with ErrTransferOnly; the only
// legitimate origin of a persisted assignment is Right.Transfer.
func (ra *RightsAssignment) Create(ctx context.Context, user any, format dataformat.Format) (string, error) {
	return "", ErrTransferOnly
}
