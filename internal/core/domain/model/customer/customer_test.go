package customer_test

import (
	"testing"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		id := kernel.NewUUID()
		c, err := customer.NewCustomer(id, "Jo Silva", "jo@example.com", "420.390.450-15")
		require.NoError(t, err)

		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Jo Silva", c.Name())
		assert.Equal(t, "jo@example.com", c.Email())
		assert.Equal(t, "420.390.450-15", c.Document())
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "jo@example.com", "doc")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = customer.NewCustomer(kernel.NewUUID(), "Jo", "", "doc")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = customer.NewCustomer(kernel.NewUUID(), "Jo", "jo@example.com", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Jo", "not-an-email", "doc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
