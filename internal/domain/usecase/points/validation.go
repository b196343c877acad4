package points

import (
	"fmt"
	"unicode/utf8"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

// Bounds holds the configured validation rules for point awards
type Bounds struct {
	MinPoints     int64
	MaxPoints     int64
	NoteMaxLength int
}

// DefaultBounds returns the rules used when nothing is configured
func DefaultBounds() Bounds {
	return Bounds{
		MinPoints:     1,
		MaxPoints:     1000,
		NoteMaxLength: 200,
	}
}

// AwardValidator validates award requests against the configured bounds
type AwardValidator struct {
	bounds Bounds
}

// NewAwardValidator creates a new AwardValidator
func NewAwardValidator(bounds Bounds) *AwardValidator {
	if bounds.MinPoints <= 0 {
		bounds.MinPoints = 1
	}
	if bounds.MaxPoints < bounds.MinPoints {
		bounds.MaxPoints = DefaultBounds().MaxPoints
	}
	if bounds.NoteMaxLength <= 0 {
		bounds.NoteMaxLength = DefaultBounds().NoteMaxLength
	}
	return &AwardValidator{bounds: bounds}
}

// Bounds returns the active rules
func (v *AwardValidator) Bounds() Bounds {
	return v.bounds
}

// ValidateAward validates all award fields. Runs before any persisted state is
// touched; a failing request must leave no trace anywhere.
func (v *AwardValidator) ValidateAward(req usecase.AwardRequest) error {
	if req.ActorID == 0 {
		return errs.ErrInvalidActorID
	}

	if req.QRToken == "" && req.TableID == 0 {
		return fmt.Errorf("%w: either qrCode or tableId is required", errs.ErrInvalidRequest)
	}

	if !entity.IsValidKind(string(req.Kind)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidKind, req.Kind)
	}

	if err := v.validatePoints(req.Kind, req.Points); err != nil {
		return err
	}

	if utf8.RuneCountInString(req.Note) > v.bounds.NoteMaxLength {
		return errs.ErrNoteTooLong
	}

	return nil
}

// validatePoints checks the point amount against the configured inclusive range.
// EARNED and REDEEMED take positive amounts; ADJUSTMENT carries its own sign
// and is checked on its magnitude.
func (v *AwardValidator) validatePoints(kind entity.EntryKind, points int64) error {
	magnitude := points
	switch kind {
	case entity.KindAdjustment:
		if magnitude < 0 {
			magnitude = -magnitude
		}
	default:
		if points <= 0 {
			return fmt.Errorf("%w: points must be positive", errs.ErrInvalidPoints)
		}
	}

	if magnitude < v.bounds.MinPoints || magnitude > v.bounds.MaxPoints {
		return fmt.Errorf("%w: must be between %d and %d",
			errs.ErrInvalidPoints, v.bounds.MinPoints, v.bounds.MaxPoints)
	}

	return nil
}
