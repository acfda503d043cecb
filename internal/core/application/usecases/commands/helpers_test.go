package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newOpenOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func restoreOrderInStatus(t *testing.T, status order.Status, total kernel.Money) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), status, order.PaymentPending, total, now, now,
	)
	require.NoError(t, err)
	return o
}

func newCatalogProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(), "Cheeseburger", "double patty", product.TypeSnack, mustMoney(t, price),
	)
	require.NoError(t, err)
	return p
}

func newOrderItem(t *testing.T, orderID kernel.UUID, price string) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), mustMoney(t, price), "")
	require.NoError(t, err)
	return item
}
