package order_test

import (
	"testing"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDueDate(t *testing.T) kernel.DueDate {
	t.Helper()
	due, err := kernel.NewDueDate(time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)
	return due
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	due := validDueDate(t)

	t.Run("should create pending order", func(t *testing.T) {
		o, err := order.NewOrder(id, ownerID, bookID, due, "third shelf, please")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OwnerID().IsEqual(ownerID))
		assert.True(t, o.BookID().IsEqual(bookID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "third shelf, please", o.Comment())
		assert.False(t, o.CreatedTime().IsZero())
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		_, err := order.NewOrder(id, invalidOwner, bookID, due, "")

		require.Error(t, err)
	})

	t.Run("should fail with invalid book", func(t *testing.T) {
		var invalidBook kernel.UUID

		_, err := order.NewOrder(id, ownerID, invalidBook, due, "")

		require.Error(t, err)
	})

	t.Run("should fail with zero due date", func(t *testing.T) {
		var zeroDue kernel.DueDate

		_, err := order.NewOrder(id, ownerID, bookID, zeroDue, "")

		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	ownerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, kernel.NewUUID(), validDueDate(t), "")
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(ownerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validDueDate(t), "")
		require.NoError(t, err)
		return o
	}

	t.Run("pending to processing has no inventory effect", func(t *testing.T) {
		o := newOrder(t)

		effect, err := o.ChangeStatus(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.EffectNone, effect)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("fulfillment reports reserve effect exactly once", func(t *testing.T) {
		o := newOrder(t)

		effect, err := o.ChangeStatus(order.Fulfilled)
		require.NoError(t, err)
		assert.Equal(t, order.EffectReserve, effect)

		// A second fulfillment attempt must not report the effect again.
		_, err = o.ChangeStatus(order.Fulfilled)
		require.ErrorIs(t, err, order.ErrImmutable)
		assert.Equal(t, order.Fulfilled, o.Status())
	})

	t.Run("cancelling a fulfilled order reports release effect", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.Fulfilled)
		require.NoError(t, err)

		effect, err := o.ChangeStatus(order.Cancelled)
		require.NoError(t, err)
		assert.Equal(t, order.EffectRelease, effect)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("terminal order refuses transitions and keeps its status", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.Rejected)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Pending)
		require.ErrorIs(t, err, order.ErrImmutable)
		assert.Equal(t, order.Rejected, o.Status())
	})
}

func TestOrder_Update(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validDueDate(t), "old")
	require.NoError(t, err)

	t.Run("comment is mutable", func(t *testing.T) {
		o.UpdateComment("new comment")

		assert.Equal(t, "new comment", o.Comment())
	})

	t.Run("due time is mutable but must be constructed", func(t *testing.T) {
		due, dueErr := kernel.NewDueDate(time.Now().AddDate(0, 0, 14))
		require.NoError(t, dueErr)

		require.NoError(t, o.UpdateDueTime(due))
		assert.True(t, o.DueTime().IsEqual(due))

		var zeroDue kernel.DueDate
		require.Error(t, o.UpdateDueTime(zeroDue))
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	created := time.Date(2026, time.February, 2, 10, 30, 0, 0, time.UTC)
	due, err := kernel.RestoreDueDate(created.AddDate(0, 1, 0))
	require.NoError(t, err)

	t.Run("should restore stored order", func(t *testing.T) {
		o, restoreErr := order.RestoreOrder(id, ownerID, bookID, order.Fulfilled, "picked up", created, due)

		require.NoError(t, restoreErr)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Fulfilled, o.Status())
		assert.True(t, o.CreatedTime().Equal(created))
	})

	t.Run("should reject corrupt stored status", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(id, ownerID, bookID, order.Status(42), "", created, due)

		require.ErrorIs(t, restoreErr, order.ErrInvalidStatus)
	})

	t.Run("should reject unknown zero status", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(id, ownerID, bookID, order.Unknown, "", created, due)

		require.ErrorIs(t, restoreErr, order.ErrInvalidStatus)
	})
}
