// Package coalaip exposes the high-level, ledger-bound COALA IP operations:
// registering a manifestation with its work and copyright, deriving rights,
// and transferring rights. Each operation sequences several entity calls
// against one injected ledger; partial failures are not rolled back, the
// first error aborts the remaining steps.
package coalaip

import (
	"context"
	"log/slog"
	"maps"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/entity"
	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/model"
	"github.com/coalaip/go-coalaip/vocabulary"
)

// Right is the slice of a transferable right entity the service needs.
// *entity.Right and *entity.Copyright implement it, as do custom right
// kinds built on them.
type Right interface {
	Create(ctx context.Context, user any, format dataformat.Format) (string, error)
	Transfer(ctx context.Context, assignmentData map[string]any, fromUser, toUser any, format dataformat.Format) (*entity.RightsAssignment, error)
	PersistID() string
	Ledger() ledger.Ledger
	CurrentOwner(ctx context.Context) (any, error)
}

// RightFactory builds the entity for a newly derived right, allowing custom
// right kinds in DeriveRight. The default builds an *entity.Right.
type RightFactory func(l ledger.Ledger, data map[string]any, format dataformat.Format) (Right, error)

func defaultRightFactory(l ledger.Ledger, data map[string]any, format dataformat.Format) (Right, error) {
	right, err := entity.RightFromData(l, data, format)
	if err != nil {
		return nil, err
	}
	return right, nil
}

// Service is the orchestrator, bound to a single ledger.
type Service struct {
	ledger ledger.Ledger
	logger *slog.Logger
}

// New creates a Service bound to the given ledger. A nil logger falls back
// to slog.Default().
func New(l ledger.Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: l, logger: logger}
}

// GenerateUser passes through to the ledger's user generation.
func (s *Service) GenerateUser(ctx context.Context, args ...any) (any, error) {
	return s.ledger.GenerateUser(ctx, args...)
}

// RegistrationResult holds the three entities produced by
// RegisterManifestation. Work is nil when the manifestation data already
// referenced a work.
type RegistrationResult struct {
	Copyright     *entity.Copyright
	Manifestation *entity.Manifestation
	Work          *entity.Work
}

// RegisterManifestationRequest parameterizes RegisterManifestation.
type RegisterManifestationRequest struct {
	// Manifestation is the model data for the manifestation. When the
	// "manifestationOfWork" key is present, no work is registered and the
	// ExistingWork and Work fields are ignored; a malformed value fails
	// validation.
	Manifestation map[string]any

	// CopyrightHolder is the user to hold the manifestation's copyright.
	CopyrightHolder any

	// ExistingWork, when set, is an already persisted work to register the
	// manifestation against instead of creating a new one.
	ExistingWork *entity.Work

	// Work is the model data for the automatically created work. Defaults
	// to the manifestation's name.
	Work map[string]any

	// Format is the wire format used when persisting each entity (empty
	// defaults to jsonld).
	Format dataformat.Format
}

// RegisterManifestation registers a manifestation and assigns its copyright
// to the given holder, creating a backing work first unless the data or
// request already names one.
//
// There is no compensation on partial failure: entities created before the
// failing step stay persisted, and the error of the failing step is
// returned unmodified.
func (s *Service) RegisterManifestation(ctx context.Context, req RegisterManifestationRequest) (*RegistrationResult, error) {
	manifestationData := maps.Clone(req.Manifestation)
	if manifestationData == nil {
		manifestationData = map[string]any{}
	}

	// The presence of the key alone skips the work step; a malformed value
	// is then rejected by the manifestation validator, never overwritten.
	var work *entity.Work
	if _, linked := manifestationData[vocabulary.KeyManifestationOfWork]; !linked {
		work = req.ExistingWork
		if work == nil {
			workData := req.Work
			if workData == nil {
				workData = map[string]any{vocabulary.KeyName: manifestationData[vocabulary.KeyName]}
			}
			created, err := entity.WorkFromData(s.ledger, workData, "")
			if err != nil {
				return nil, err
			}
			if _, err := created.Create(ctx, req.CopyrightHolder, req.Format); err != nil {
				return nil, err
			}
			work = created
			s.logger.Debug("registered work", slog.String("persist_id", work.PersistID()))
		} else {
			if work.PersistID() == "" {
				return nil, entity.ErrNotPersisted
			}
			if work.Ledger() != s.ledger {
				return nil, &entity.IncompatibleLedgerError{Ledgers: []ledger.Ledger{s.ledger, work.Ledger()}}
			}
		}
		manifestationData[vocabulary.KeyManifestationOfWork] = work.PersistID()
	}

	manifestation, err := entity.ManifestationFromData(s.ledger, manifestationData, "")
	if err != nil {
		return nil, err
	}
	if _, err := manifestation.Create(ctx, req.CopyrightHolder, req.Format); err != nil {
		return nil, err
	}
	s.logger.Debug("registered manifestation", slog.String("persist_id", manifestation.PersistID()))

	copyrightData := map[string]any{vocabulary.KeyRightsOf: manifestation.PersistID()}
	manifestationCopyright, err := entity.CopyrightFromData(s.ledger, copyrightData, "")
	if err != nil {
		return nil, err
	}
	if _, err := manifestationCopyright.Create(ctx, req.CopyrightHolder, req.Format); err != nil {
		return nil, err
	}
	s.logger.Debug("registered copyright", slog.String("persist_id", manifestationCopyright.PersistID()))

	return &RegistrationResult{
		Copyright:     manifestationCopyright,
		Manifestation: manifestation,
		Work:          work,
	}, nil
}

// DeriveRightRequest parameterizes DeriveRight.
type DeriveRightRequest struct {
	// Right is the model data for the new right. When the "allowedBy" key
	// is present, the SourceRight field is not needed to name the source;
	// a malformed value fails validation.
	Right map[string]any

	// CurrentHolder is the holder of the source right, who will also hold
	// the derived right.
	CurrentHolder any

	// SourceRight is the already persisted right the new right derives
	// from. Optional when "allowedBy" is given in the data; the source is
	// then reconstructed from that persist id for the ownership check.
	SourceRight entity.Transferable

	// NewRight builds the derived right entity; nil uses *entity.Right.
	NewRight RightFactory

	// Format is the wire format used when persisting the right (empty
	// defaults to jsonld).
	Format dataformat.Format
}

// DeriveRight derives a new right from a source right for the source's
// current holder. The ledger is asked to confirm that the caller actually
// holds the source right; a mismatch fails with ErrNotCurrentHolder and
// nothing is persisted.
func (s *Service) DeriveRight(ctx context.Context, req DeriveRightRequest) (Right, error) {
	rightData := maps.Clone(req.Right)
	if rightData == nil {
		rightData = map[string]any{}
	}

	// The presence of the key alone decides whether a source entity is
	// required; a malformed value is rejected by the right validator below,
	// never overwritten with the source's id.
	source := req.SourceRight
	if _, linked := rightData[vocabulary.KeyAllowedBy]; !linked {
		if source == nil {
			return nil, ErrMissingSource
		}
		if source.PersistID() == "" {
			return nil, entity.ErrNotPersisted
		}
		if source.Ledger() != s.ledger {
			return nil, &entity.IncompatibleLedgerError{Ledgers: []ledger.Ledger{s.ledger, source.Ledger()}}
		}
		rightData[vocabulary.KeyAllowedBy] = source.PersistID()
	}

	// The right is built first so malformed data fails validation before
	// any ledger call.
	factory := req.NewRight
	if factory == nil {
		factory = defaultRightFactory
	}
	right, err := factory(s.ledger, rightData, "")
	if err != nil {
		return nil, err
	}

	allowedBy, ok := rightData[vocabulary.KeyAllowedBy].(string)
	if !ok || allowedBy == "" {
		return nil, &model.DataError{Field: vocabulary.KeyAllowedBy, Reason: "must be a non-empty string"}
	}
	if source == nil {
		reconstructed, err := entity.RightFromPersistID(ctx, s.ledger, allowedBy, false)
		if err != nil {
			return nil, err
		}
		source = reconstructed
	}

	owner, err := source.CurrentOwner(ctx)
	if err != nil {
		return nil, err
	}
	if !s.ledger.IsSameUser(owner, req.CurrentHolder) {
		return nil, ErrNotCurrentHolder
	}

	if _, err := right.Create(ctx, req.CurrentHolder, req.Format); err != nil {
		return nil, err
	}
	s.logger.Debug("derived right",
		slog.String("persist_id", right.PersistID()),
		slog.String("allowed_by", allowedBy))
	return right, nil
}

// TransferRightRequest parameterizes TransferRight.
type TransferRightRequest struct {
	// Right is the persisted right to transfer.
	Right Right

	// Assignment is the model data for the resulting RightsAssignment; nil
	// means the empty mapping.
	Assignment map[string]any

	// CurrentHolder is the current owner of the right.
	CurrentHolder any

	// To is the new owner.
	To any

	// Format is the wire format of the recorded assignment payload (empty
	// defaults to jsonld).
	Format dataformat.Format
}

// TransferRight transfers a right to another user and returns the
// RightsAssignment produced by the transfer.
func (s *Service) TransferRight(ctx context.Context, req TransferRightRequest) (*entity.RightsAssignment, error) {
	if req.Right == nil {
		return nil, ErrMissingRight
	}
	if req.Right.PersistID() == "" {
		return nil, entity.ErrNotPersisted
	}
	if req.Right.Ledger() != s.ledger {
		return nil, &entity.IncompatibleLedgerError{Ledgers: []ledger.Ledger{s.ledger, req.Right.Ledger()}}
	}

	assignment, err := req.Right.Transfer(ctx, req.Assignment, req.CurrentHolder, req.To, req.Format)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("transferred right",
		slog.String("right", req.Right.PersistID()),
		slog.String("assignment", assignment.PersistID()))
	return assignment, nil
}
