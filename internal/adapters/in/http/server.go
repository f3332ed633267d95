// Package http exposes the order lifecycle and listing moderation over a REST
// API. Handlers translate JSON requests into commands and queries, map the
// error taxonomy onto HTTP status codes, and never contain business rules.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/application/usecases/queries"
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
	"bookmarket/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	confirmOrderHandler         commands.ConfirmOrderCommandHandler
	rejectOrderHandler          commands.RejectOrderCommandHandler
	confirmPaymentHandler       commands.ConfirmPaymentCommandHandler
	confirmMoneyReceivedHandler commands.ConfirmMoneyReceivedCommandHandler
	shipOrderHandler            commands.ShipOrderCommandHandler
	deliverOrderHandler         commands.DeliverOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	approveListingHandler       commands.ApproveListingCommandHandler
	rejectListingHandler        commands.RejectListingCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersForActorHandler queries.GetOrdersForActorQueryHandler

	proofStore ports.ProofStore
	metrics    *Metrics
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	confirmMoneyReceivedHandler commands.ConfirmMoneyReceivedCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	approveListingHandler commands.ApproveListingCommandHandler,
	rejectListingHandler commands.RejectListingCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersForActorHandler queries.GetOrdersForActorQueryHandler,
	proofStore ports.ProofStore,
	metrics *Metrics,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		confirmOrderHandler:         confirmOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		confirmMoneyReceivedHandler: confirmMoneyReceivedHandler,
		shipOrderHandler:            shipOrderHandler,
		deliverOrderHandler:         deliverOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		approveListingHandler:       approveListingHandler,
		rejectListingHandler:        rejectListingHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersForActorHandler:    getOrdersForActorHandler,
		proofStore:                  proofStore,
		metrics:                     metrics,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/confirm", s.ConfirmOrder)
	api.PUT("/orders/:id/reject", s.RejectOrder)
	api.PUT("/orders/:id/confirm-payment", s.ConfirmPayment)
	api.PUT("/orders/:id/confirm-money", s.ConfirmMoneyReceived)
	api.PUT("/orders/:id/ship", s.ShipOrder)
	api.PUT("/orders/:id/deliver", s.DeliverOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)

	api.PUT("/admin/listings/:id/approve", s.ApproveListing)
	api.PUT("/admin/listings/:id/reject", s.RejectListing)
}

// CreateOrder handles POST /api/v1/orders - buyer checkout against a listing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "not authenticated")
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	kind, err := order.PaymentKindFromString(request.PaymentKind)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, request.ListingID, kind, request.ShippingAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.metrics.transitionApplied("create")
	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(placed))
}

// ConfirmOrder handles PUT /api/v1/orders/:id/confirm - seller accepts the order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, actor, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "confirm", updated, err)
}

// RejectOrder handles PUT /api/v1/orders/:id/reject - seller declines with a reason.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ReasonedTransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actor, request.Reason, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "reject", updated, err)
}

// ConfirmPayment handles PUT /api/v1/orders/:id/confirm-payment - buyer uploads
// a payment proof as multipart form data (file field "proof", field "row_version").
// The file is stored before the order mutation and removed best-effort if the
// mutation fails.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	rowVersion, err := kernel.RowVersionFromToken(ctx.FormValue("row_version"))
	if err != nil {
		return writeError(ctx, err)
	}

	fileHeader, err := ctx.FormFile("proof")
	if err != nil {
		return writeError(ctx, errs.NewValueIsRequiredErrorWithCause("proof file", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("proof file", err))
	}
	defer file.Close()

	requestCtx := ctx.Request().Context()

	proofURL, err := s.proofStore.Save(requestCtx, fileHeader.Filename, file)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, actor, proofURL, rowVersion)
	if err != nil {
		_ = s.proofStore.Remove(requestCtx, proofURL)
		return writeError(ctx, err)
	}

	updated, err := s.confirmPaymentHandler.Handle(requestCtx, cmd)
	if err != nil {
		_ = s.proofStore.Remove(requestCtx, proofURL)
	}
	return s.respondOrder(ctx, "confirm-payment", updated, err)
}

// ConfirmMoneyReceived handles PUT /api/v1/orders/:id/confirm-money - seller
// acknowledges the bank transfer.
func (s *Server) ConfirmMoneyReceived(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmMoneyReceivedCommand(orderID, actor, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.confirmMoneyReceivedHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "confirm-money", updated, err)
}

// ShipOrder handles PUT /api/v1/orders/:id/ship - seller hands the order to a carrier.
func (s *Server) ShipOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ShipOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(orderID, actor, request.Provider, request.TrackingNumber, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "ship", updated, err)
}

// DeliverOrder handles PUT /api/v1/orders/:id/deliver - buyer confirms receipt.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "deliver", updated, err)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel - either party backs out
// of a not-yet-shipped order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ReasonedTransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, request.Reason, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, "cancel", updated, err)
}

// ApproveListing handles PUT /api/v1/admin/listings/:id/approve.
func (s *Server) ApproveListing(ctx echo.Context) error {
	actor, listingID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveListingCommand(listingID, actor, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.approveListingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.metrics.transitionApplied("approve-listing")
	return ctx.JSON(http.StatusOK, listingResponseFromAggregate(updated))
}

// RejectListing handles PUT /api/v1/admin/listings/:id/reject.
func (s *Server) RejectListing(ctx echo.Context) error {
	actor, listingID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ReasonedTransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rowVersion, err := kernel.RowVersionFromToken(request.RowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectListingCommand(listingID, actor, request.Reason, rowVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.rejectListingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.metrics.transitionApplied("reject-listing")
	return ctx.JSON(http.StatusOK, listingResponseFromAggregate(updated))
}

// GetOrder handles GET /api/v1/orders/:id - party-scoped single order view.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, orderID, err := s.transitionContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetOrders handles GET /api/v1/orders - all orders the caller participates in.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "not authenticated")
	}

	query, err := queries.NewGetOrdersForActorQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersForActorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// transitionContext extracts the authenticated actor and the :id path parameter.
func (s *Server) transitionContext(ctx echo.Context) (kernel.Actor, int64, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return kernel.Actor{}, 0, errs.NewForbiddenError("not authenticated")
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.Actor{}, 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return actor, id, nil
}

// respondOrder renders a transition result: the updated order on success, the
// mapped error otherwise.
func (s *Server) respondOrder(ctx echo.Context, operation string, updated *order.Order, err error) error {
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.metrics.transitionApplied(operation)
	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	if statusForError(err) == http.StatusConflict {
		s.metrics.conflictDetected()
	}
	return writeError(ctx, err)
}
