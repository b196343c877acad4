package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("Duplicate key", func(t *testing.T) {
		err := errors.New(`duplicate key value violates unique constraint "idx_tables_number"`)
		assert.True(t, c.IsDuplicateKeyError(err))
		assert.Equal(t, DuplicateKeyError, c.Classify(err))
	})

	t.Run("Lock errors", func(t *testing.T) {
		for _, msg := range []string{
			"deadlock detected",
			"lock wait timeout exceeded",
			"could not serialize access due to concurrent update",
		} {
			assert.True(t, c.IsLockError(errors.New(msg)), msg)
		}
	})

	t.Run("Transient errors", func(t *testing.T) {
		err := errors.New("read tcp: connection reset by peer")
		assert.True(t, c.IsTransientError(err))
		assert.True(t, c.IsConnectionError(err))
	})

	t.Run("Nil error", func(t *testing.T) {
		assert.False(t, c.IsDuplicateKeyError(nil))
		assert.Equal(t, ErrorType(""), c.Classify(nil))
	})

	t.Run("Unclassified error", func(t *testing.T) {
		assert.Equal(t, ErrorType(""), c.Classify(errors.New("syntax error")))
	})
}
