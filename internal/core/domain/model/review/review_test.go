package review_test

import (
	"testing"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/review"
	"library/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	id := kernel.NewUUID()
	authorID := kernel.NewUUID()
	bookID := kernel.NewUUID()

	t.Run("should create valid review", func(t *testing.T) {
		r, err := review.NewReview(id, authorID, bookID, "great read", 5)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 5, r.Grade())
		assert.Equal(t, "great read", r.Text())
		assert.False(t, r.CreatedTime().IsZero())
	})

	t.Run("should allow empty text", func(t *testing.T) {
		r, err := review.NewReview(id, authorID, bookID, "", 3)

		require.NoError(t, err)
		assert.Empty(t, r.Text())
	})

	t.Run("should reject grade outside the scale", func(t *testing.T) {
		for _, grade := range []int{0, -1, 6, 100} {
			_, err := review.NewReview(id, authorID, bookID, "", grade)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "grade %d", grade)
		}
	})

	t.Run("should fail with invalid author", func(t *testing.T) {
		var invalidAuthor kernel.UUID

		_, err := review.NewReview(id, invalidAuthor, bookID, "", 4)

		require.Error(t, err)
	})

	t.Run("zero value review fails validation", func(t *testing.T) {
		var r review.Review

		require.Error(t, r.Validate())
	})
}

func TestRestoreReview(t *testing.T) {
	created := time.Date(2026, time.January, 20, 8, 0, 0, 0, time.UTC)

	r, err := review.RestoreReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ok", 4, created)

	require.NoError(t, err)
	assert.True(t, r.CreatedTime().Equal(created))
}
