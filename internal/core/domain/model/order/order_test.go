package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newOpenOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts open with pending payment and zero total", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID)
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.True(t, o.Total().IsZero())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("invalid ids are rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		created := time.Now().UTC().Add(-time.Hour)
		updated := time.Now().UTC()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			order.Received, order.PaymentPending,
			mustMoney(t, "18.00"), created, updated,
		)
		require.NoError(t, err)

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, "18.00", o.Total().String())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("open order with non-zero total is rejected", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			order.Open, order.PaymentPending,
			mustMoney(t, "5.00"), now, now,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			order.Unknown, order.PaymentPending,
			kernel.ZeroMoney(), now, now,
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newOpenOrder(t).Validate())
	})
}

func TestOrder_Checkout(t *testing.T) {
	t.Run("records total and moves to received", func(t *testing.T) {
		o := newOpenOrder(t)

		require.NoError(t, o.Checkout(mustMoney(t, "18.00")))

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, "18.00", o.Total().String())
	})

	t.Run("zero item total is allowed", func(t *testing.T) {
		o := newOpenOrder(t)

		require.NoError(t, o.Checkout(kernel.ZeroMoney()))

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("checkout is exactly once", func(t *testing.T) {
		o := newOpenOrder(t)
		require.NoError(t, o.Checkout(mustMoney(t, "18.00")))

		err := o.Checkout(mustMoney(t, "99.00"))
		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
		assert.Equal(t, "18.00", o.Total().String(), "rejected checkout must not move the total")
	})

	t.Run("unconstructed total is rejected", func(t *testing.T) {
		o := newOpenOrder(t)
		require.Error(t, o.Checkout(kernel.Money{}))
		assert.Equal(t, order.Open, o.Status())
	})
}

func TestOrder_WorkflowTransitions(t *testing.T) {
	t.Run("full lifecycle to returned", func(t *testing.T) {
		o := newOpenOrder(t)

		require.NoError(t, o.Checkout(kernel.ZeroMoney()))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.AcknowledgePayment())
		assert.Equal(t, order.PaymentConfirmed, o.PaymentStatus())
		require.NoError(t, o.Finalize(order.Returned))

		assert.Equal(t, order.Returned, o.Status())

		err := o.Confirm()
		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("confirm requires received", func(t *testing.T) {
		o := newOpenOrder(t)
		require.ErrorIs(t, o.Confirm(), order.ErrInvalidStateTransition)
	})

	t.Run("acknowledge payment requires confirmed", func(t *testing.T) {
		o := newOpenOrder(t)
		require.NoError(t, o.Checkout(kernel.ZeroMoney()))
		require.ErrorIs(t, o.AcknowledgePayment(), order.ErrInvalidStateTransition)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("finalize requires paid and an explicit target", func(t *testing.T) {
		o := newOpenOrder(t)
		require.NoError(t, o.Checkout(kernel.ZeroMoney()))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.AcknowledgePayment())

		require.ErrorIs(t, o.Finalize(order.Unknown), order.ErrTerminalStatusRequired)
		assert.Equal(t, order.Paid, o.Status())

		require.NoError(t, o.Finalize(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_EnsureOpen(t *testing.T) {
	t.Run("open order accepts mutations", func(t *testing.T) {
		require.NoError(t, newOpenOrder(t).EnsureOpen("addItem"))
	})

	t.Run("closed order rejects mutations in every later state", func(t *testing.T) {
		o := newOpenOrder(t)
		require.NoError(t, o.Checkout(kernel.ZeroMoney()))

		steps := []func() error{
			func() error { return nil },
			o.Confirm,
			o.AcknowledgePayment,
			func() error { return o.Finalize(order.Failed) },
		}
		for _, step := range steps {
			require.NoError(t, step())
			err := o.EnsureOpen("removeItem")
			require.ErrorIs(t, err, errs.ErrOperationNotSupported, o.Status().String())
		}
	})
}

func TestOrder_Touch(t *testing.T) {
	o := newOpenOrder(t)
	before := o.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	o.Touch()

	assert.True(t, o.UpdatedAt().After(before))
	assert.Equal(t, before, o.CreatedAt(), "creation timestamp is immutable")
}
