package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. A registration with an
// already-known document is rejected.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create-customer command and returns the new customer.
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Document())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	existing, err := customerRepo.GetByDocument(ctx, cmd.Document())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("document",
			fmt.Errorf("customer %s already registered with this document", existing.ID()))
	}

	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCustomer, nil
}
