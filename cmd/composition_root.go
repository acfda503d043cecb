package cmd

import (
	"log/slog"

	"foodorder/internal/adapters/out/kafkaqueue"
	"foodorder/internal/adapters/out/payment"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	queueNotifier  ports.QueueNotifier
	paymentChecker ports.PaymentChecker
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	paymentChecker, err := payment.NewHTTPClient(configs.PaymentServiceURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		queueNotifier:  kafkaqueue.NewNotifier([]string{configs.KafkaHost}, configs.KafkaOrderQueueTopic),
		paymentChecker: paymentChecker,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f)
}

func (c *CompositionRoot) CreateEditItemCommandHandler() commands.EditItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.OrderItemsUoWFactory = FuncOrderItemsUoWFactory(func() commands.OrderItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderItemsUoWFactory = FuncOrderItemsUoWFactory(func() commands.OrderItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	var f commands.OrderItemsUoWFactory = FuncOrderItemsUoWFactory(func() commands.OrderItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutOrderCommandHandler(f, c.queueNotifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcknowledgePaymentCommandHandler() commands.AcknowledgePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcknowledgePaymentCommandHandler(f, c.paymentChecker, c.logger)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwaitingPaymentOrdersQueryHandler() queries.GetAwaitingPaymentOrdersQueryHandler {
	return queries.NewGetAwaitingPaymentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reconciliation := jobs.NewPaymentReconciliationJob(
		c.CreateGetAwaitingPaymentOrdersQueryHandler(),
		c.CreateAcknowledgePaymentCommandHandler(),
		c.paymentChecker,
		c.logger,
	)
	return jobs.NewJobManager(reconciliation)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderItemsUoWFactory func() commands.OrderItemsUoW

func (f FuncOrderItemsUoWFactory) Create() commands.OrderItemsUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
