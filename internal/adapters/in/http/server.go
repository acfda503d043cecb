// Package http exposes the application over a REST surface built on echo.
// Handlers translate JSON payloads into commands and queries; domain errors
// map onto HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createCustomerHandler commands.CreateCustomerCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	addItemHandler        commands.AddItemCommandHandler
	editItemHandler       commands.EditItemCommandHandler
	removeItemHandler     commands.RemoveItemCommandHandler
	removeOrderHandler    commands.RemoveOrderCommandHandler
	checkoutHandler       commands.CheckoutOrderCommandHandler
	confirmHandler        commands.ConfirmOrderCommandHandler
	ackPaymentHandler     commands.AcknowledgePaymentCommandHandler
	finalizeHandler       commands.FinalizeOrderCommandHandler

	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler
	getOrderItemsHandler queries.GetOrderItemsQueryHandler
	getMenuHandler       queries.GetMenuQueryHandler
	getCustomersHandler  queries.GetCustomersQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	editItemHandler commands.EditItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	checkoutHandler commands.CheckoutOrderCommandHandler,
	confirmHandler commands.ConfirmOrderCommandHandler,
	ackPaymentHandler commands.AcknowledgePaymentCommandHandler,
	finalizeHandler commands.FinalizeOrderCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler: createCustomerHandler,
		createProductHandler:  createProductHandler,
		createOrderHandler:    createOrderHandler,
		addItemHandler:        addItemHandler,
		editItemHandler:       editItemHandler,
		removeItemHandler:     removeItemHandler,
		removeOrderHandler:    removeOrderHandler,
		checkoutHandler:       checkoutHandler,
		confirmHandler:        confirmHandler,
		ackPaymentHandler:     ackPaymentHandler,
		finalizeHandler:       finalizeHandler,
		getOpenOrdersHandler:  getOpenOrdersHandler,
		getOrderItemsHandler:  getOrderItemsHandler,
		getMenuHandler:        getMenuHandler,
		getCustomersHandler:   getCustomersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetMenu)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetOpenOrders)
	api.DELETE("/orders/:orderId", s.RemoveOrder)

	api.POST("/orders/:orderId/items", s.AddItem)
	api.GET("/orders/:orderId/items", s.GetOrderItems)
	api.PATCH("/orders/:orderId/items/:itemId", s.EditItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveItem)

	api.POST("/orders/:orderId/checkout", s.CheckoutOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/payment", s.AcknowledgePayment)
	api.POST("/orders/:orderId/finalize", s.FinalizeOrder)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type customerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type customerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ProductType string `json:"product_type"`
	Price       string `json:"price"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProductType string `json:"product_type"`
	Price       string `json:"price"`
}

type createOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

type orderResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Note      string `json:"note"`
}

type editItemRequest struct {
	ProductID *string `json:"product_id,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type itemResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Price     string `json:"price"`
	Note      string `json:"note"`
}

type finalizeRequest struct {
	Status string `json:"status"`
}

// writeError maps domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationNotSupported),
		errors.Is(err, order.ErrInvalidStateTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrTerminalStatusRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:            o.ID().String(),
		CustomerID:    o.CustomerID().String(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		Total:         o.Total().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toItemResponse(item *order.Item) itemResponse {
	return itemResponse{
		ID:        item.ID().String(),
		OrderID:   item.OrderID().String(),
		ProductID: item.ProductID().String(),
		Price:     item.Price().String(),
		Note:      item.Note(),
	}
}

func parseProductType(raw string) (product.Type, bool) {
	switch raw {
	case "Snack":
		return product.TypeSnack, true
	case "Side":
		return product.TypeSide, true
	case "Drink":
		return product.TypeDrink, true
	case "Dessert":
		return product.TypeDessert, true
	}
	return product.TypeUnknown, false
}

func parseTerminalStatus(raw string) (order.Status, bool) {
	switch raw {
	case "Delivered":
		return order.Delivered, true
	case "Returned":
		return order.Returned, true
	case "Failed":
		return order.Failed, true
	}
	return order.Unknown, false
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req customerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Document)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerResponse{
		ID:       created.ID().String(),
		Name:     created.Name(),
		Email:    created.Email(),
		Document: created.Document(),
	})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]customerResponse, len(customers))
	for i, row := range customers {
		response[i] = customerResponse{
			ID:       row.ID.String(),
			Name:     row.Name,
			Email:    row.Email,
			Document: row.Document,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productType, ok := parseProductType(req.ProductType)
	if !ok {
		return writeBadRequest(ctx, "unknown product type: "+req.ProductType)
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Description, productType, price)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponse{
		ID:          created.ID().String(),
		Name:        created.Name(),
		Description: created.Description(),
		ProductType: created.Type().String(),
		Price:       created.Price().String(),
	})
}

// GetMenu handles GET /api/v1/products with an optional type filter.
func (s *Server) GetMenu(ctx echo.Context) error {
	var filter *product.Type
	if raw := ctx.QueryParam("type"); raw != "" {
		productType, ok := parseProductType(raw)
		if !ok {
			return writeBadRequest(ctx, "unknown product type: "+raw)
		}
		filter = &productType
	}

	query, err := queries.NewGetMenuQuery(filter)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]productResponse, len(entries))
	for i, entry := range entries {
		response[i] = productResponse{
			ID:          entry.ID.String(),
			Name:        entry.Name,
			Description: entry.Description,
			ProductType: entry.ProductType.String(),
			Price:       entry.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid customer_id")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOpenOrders handles GET /api/v1/orders/active.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	page := 0
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "invalid page")
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "invalid page_size")
		}
		pageSize = parsed
	}

	query, err := queries.NewGetOpenOrdersQuery(page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type openOrderResponse struct {
		ID         string    `json:"id"`
		CustomerID string    `json:"customer_id"`
		Status     string    `json:"status"`
		Total      string    `json:"total"`
		CreatedAt  time.Time `json:"created_at"`
	}

	response := make([]openOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = openOrderResponse{
			ID:         row.ID.String(),
			CustomerID: row.CustomerID.String(),
			Status:     row.Status.String(),
			Total:      row.Total.String(),
			CreatedAt:  row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RemoveOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeBadRequest(ctx, "invalid product_id")
	}

	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), orderID, productID, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toItemResponse(item))
}

// GetOrderItems handles GET /api/v1/orders/:orderId/items.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type lineResponse struct {
		ID          string `json:"id"`
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Price       string `json:"price"`
		Note        string `json:"note"`
	}

	response := make([]lineResponse, len(items))
	for i, item := range items {
		response[i] = lineResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Price:       item.Price.String(),
			Note:        item.Note,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditItem handles PATCH /api/v1/orders/:orderId/items/:itemId.
func (s *Server) EditItem(ctx echo.Context) error {
	itemID, err := parseID(ctx, "itemId")
	if err != nil {
		return writeBadRequest(ctx, "invalid item id")
	}

	var req editItemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	var newProductID *kernel.UUID
	if req.ProductID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.ProductID)
		if parseErr != nil {
			return writeBadRequest(ctx, "invalid product_id")
		}
		newProductID = &parsed
	}

	cmd, err := commands.NewEditItemCommand(itemID, newProductID, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.editItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toItemResponse(item))
}

// RemoveItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	itemID, err := parseID(ctx, "itemId")
	if err != nil {
		return writeBadRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewRemoveItemCommand(itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutOrder handles POST /api/v1/orders/:orderId/checkout.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCheckoutOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	checked, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(checked))
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	confirmed, err := s.confirmHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(confirmed))
}

// AcknowledgePayment handles POST /api/v1/orders/:orderId/payment.
func (s *Server) AcknowledgePayment(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAcknowledgePaymentCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	paid, err := s.ackPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(paid))
}

// FinalizeOrder handles POST /api/v1/orders/:orderId/finalize.
func (s *Server) FinalizeOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req finalizeRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	target, ok := parseTerminalStatus(req.Status)
	if !ok {
		return writeBadRequest(ctx, "status must be Delivered, Returned, or Failed")
	}

	cmd, err := commands.NewFinalizeOrderCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	finalized, err := s.finalizeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(finalized))
}
