package points

import (
	"strings"
	"testing"

	errs "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	"github.com/stretchr/testify/assert"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
)

func validRequest() usecase.AwardRequest {
	return usecase.AwardRequest{
		QRToken: "TABLE_7",
		ActorID: 2,
		Points:  10,
		Kind:    entity.KindEarned,
	}
}

func TestNewAwardValidator(t *testing.T) {
	t.Run("Zero bounds are sanitized to defaults", func(t *testing.T) {
		v := NewAwardValidator(Bounds{})

		assert.Equal(t, int64(1), v.Bounds().MinPoints)
		assert.Equal(t, int64(1000), v.Bounds().MaxPoints)
		assert.Equal(t, 200, v.Bounds().NoteMaxLength)
	})

	t.Run("Inverted range falls back to default max", func(t *testing.T) {
		v := NewAwardValidator(Bounds{MinPoints: 10, MaxPoints: 5})

		assert.Equal(t, int64(10), v.Bounds().MinPoints)
		assert.Equal(t, int64(1000), v.Bounds().MaxPoints)
	})
}

func TestValidateAward(t *testing.T) {
	v := NewAwardValidator(DefaultBounds())

	t.Run("Valid earn", func(t *testing.T) {
		assert.NoError(t, v.ValidateAward(validRequest()))
	})

	t.Run("Valid redeem", func(t *testing.T) {
		req := validRequest()
		req.Kind = entity.KindRedeemed
		assert.NoError(t, v.ValidateAward(req))
	})

	t.Run("Negative adjustment within range", func(t *testing.T) {
		req := validRequest()
		req.Kind = entity.KindAdjustment
		req.Points = -500
		assert.NoError(t, v.ValidateAward(req))
	})

	t.Run("Missing actor", func(t *testing.T) {
		req := validRequest()
		req.ActorID = 0
		assert.Equal(t, errs.ErrInvalidActorID, v.ValidateAward(req))
	})

	t.Run("Neither token nor ID", func(t *testing.T) {
		req := validRequest()
		req.QRToken = ""
		req.TableID = 0
		assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidRequest)
	})

	t.Run("Table ID alone is enough", func(t *testing.T) {
		req := validRequest()
		req.QRToken = ""
		req.TableID = 7
		assert.NoError(t, v.ValidateAward(req))
	})

	t.Run("Unknown kind", func(t *testing.T) {
		req := validRequest()
		req.Kind = entity.EntryKind("BONUS")
		assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidKind)
	})

	t.Run("Range boundaries are inclusive", func(t *testing.T) {
		req := validRequest()

		req.Points = 1
		assert.NoError(t, v.ValidateAward(req))

		req.Points = 1000
		assert.NoError(t, v.ValidateAward(req))

		req.Points = 1001
		assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidPoints)
	})

	t.Run("Non-positive points for earn and redeem", func(t *testing.T) {
		for _, kind := range []entity.EntryKind{entity.KindEarned, entity.KindRedeemed} {
			req := validRequest()
			req.Kind = kind

			req.Points = 0
			assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidPoints)

			req.Points = -5
			assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidPoints)
		}
	})

	t.Run("Adjustment magnitude outside range", func(t *testing.T) {
		req := validRequest()
		req.Kind = entity.KindAdjustment
		req.Points = -1001
		assert.ErrorIs(t, v.ValidateAward(req), errs.ErrInvalidPoints)
	})

	t.Run("Note too long", func(t *testing.T) {
		req := validRequest()
		req.Note = strings.Repeat("a", 201)
		assert.Equal(t, errs.ErrNoteTooLong, v.ValidateAward(req))
	})
}
